package label

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// Label is one printable label returned by the service. Labels are
// read-only: they only travel client-bound, so there is no encoder.
// A single label can cover several barcodes when return labels are
// requested together with the outbound one.
type Label struct {
	barcodes []string
	mimeType string
	data     []byte
}

func (l *Label) Barcodes() []string { return l.barcodes }

// Barcode returns the first barcode, or "" for an empty label.
func (l *Label) Barcode() string {
	if len(l.barcodes) == 0 {
		return ""
	}
	return l.barcodes[0]
}

// MimeType reports the payload type, application/pdf or image/png.
func (l *Label) MimeType() string { return l.mimeType }

// Data returns the decoded PDF or image payload.
func (l *Label) Data() []byte { return l.data }

func labelFromXML(el *etree.Element) (*Label, error) {
	l := &Label{}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "barcode":
			l.barcodes = append(l.barcodes, child.Text())
		case "barcodeWithReference":
			for _, sub := range child.ChildElements() {
				if sub.Tag == "barcode" {
					l.barcodes = append(l.barcodes, sub.Text())
				}
			}
		case "mimeType":
			l.mimeType = child.Text()
		case "bytes":
			data, err := base64.StdEncoding.DecodeString(child.Text())
			if err != nil {
				return nil, fmt.Errorf("decoding label bytes: %w", err)
			}
			l.data = data
		}
	}
	return l, nil
}

// FromXMLBytes parses a labels response document into its labels.
func FromXMLBytes(raw []byte) ([]*Label, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("label: empty XML document")
	}

	var labels []*Label
	for _, el := range root.ChildElements() {
		if el.Tag != "label" {
			continue
		}
		l, err := labelFromXML(el)
		if err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, nil
}
