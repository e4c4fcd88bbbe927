package shm

import (
	"fmt"

	"github.com/beevik/etree"
)

// Namespace URIs for the v3 deep-integration schema family.
const (
	NsV3Global        = "http://schema.post.be/shm/deepintegration/v3/"
	NsV3Common        = "http://schema.post.be/shm/deepintegration/v3/common"
	NsV3National      = "http://schema.post.be/shm/deepintegration/v3/national"
	NsV3International = "http://schema.post.be/shm/deepintegration/v3/international"

	NsXsi = "http://www.w3.org/2001/XMLSchema-instance"
)

// Prefix tokens used to qualify element names on the wire.
const (
	PrefixTns           = "tns"
	PrefixCommon        = "common"
	PrefixInternational = "international"
)

// Prefixed qualifies a local element name with a namespace prefix token.
// An empty prefix leaves the name unqualified, which binds it to the
// document's default namespace.
func Prefixed(localName, prefix string) string {
	if prefix == "" {
		return localName
	}
	return prefix + ":" + localName
}

// NewDocument creates an XML document with the standard UTF-8 declaration
// and two-space indentation, matching the service's canonical formatting.
func NewDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.Indent(2)
	return doc
}

// DeclareNamespaces adds the full v3 namespace declaration set to a
// document root. The declarations appear exactly once per document, on
// the root element only.
func DeclareNamespaces(root *etree.Element) {
	root.CreateAttr("xmlns", NsV3National)
	root.CreateAttr("xmlns:common", NsV3Common)
	root.CreateAttr("xmlns:tns", NsV3Global)
	root.CreateAttr("xmlns:international", NsV3International)
	root.CreateAttr("xmlns:xsi", NsXsi)
	root.CreateAttr("xsi:schemaLocation", NsV3Global)
}

// UnknownVariantError reports a wire tag name with no mapped concrete
// type. It signals a schema the client version does not understand and is
// fatal to the decode in progress.
type UnknownVariantError struct {
	Family string // variant family being decoded, e.g. "nationalBox"
	Tag    string // the unmapped element tag
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("shm: unrecognized %s variant %q", e.Family, e.Tag)
}
