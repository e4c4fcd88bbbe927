package order

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
)

// BasicInsurance covers the parcel up to the service's standard amount.
// On the wire it is an <insured> wrapper holding an empty
// <basicInsurance/> child.
type BasicInsurance struct{}

func (*BasicInsurance) appendOptionTo(options *etree.Element) {
	insured := options.CreateElement(shm.Prefixed("insured", shm.PrefixCommon))
	insured.CreateElement(shm.Prefixed("basicInsurance", shm.PrefixCommon))
}

// AdditionalInsurance covers the parcel for a declared value range. The
// wire shape is <insured><additionalInsurance value="N"/></insured>.
//
// Basic and additional insurance are deliberately separate variants even
// though the service nests both under <insured>; the value-carrying shape
// and the empty shape have nothing in common beyond the wrapper.
type AdditionalInsurance struct {
	value int
}

// NewAdditionalInsurance creates additional insurance for the given
// range step.
func NewAdditionalInsurance(value int) *AdditionalInsurance {
	return &AdditionalInsurance{value: value}
}

// Value returns the declared range step.
func (a *AdditionalInsurance) Value() int { return a.value }

func (a *AdditionalInsurance) appendOptionTo(options *etree.Element) {
	insured := options.CreateElement(shm.Prefixed("insured", shm.PrefixCommon))
	el := insured.CreateElement(shm.Prefixed("additionalInsurance", shm.PrefixCommon))
	if a.value > 0 {
		el.CreateAttr("value", strconv.Itoa(a.value))
	}
}

// decodeInsured dispatches on the child of <insured>: basicInsurance or
// additionalInsurance. A bare <insured/> decodes as basic insurance.
func decodeInsured(el *etree.Element) (Option, error) {
	children := el.ChildElements()
	if len(children) == 0 {
		return &BasicInsurance{}, nil
	}

	child := children[0]
	switch child.Tag {
	case "basicInsurance":
		return &BasicInsurance{}, nil
	case "additionalInsurance":
		value := 0
		if attr := child.SelectAttr("value"); attr != nil {
			n, err := strconv.Atoi(attr.Value)
			if err != nil {
				return nil, &shm.UnknownVariantError{Family: "insured", Tag: child.Tag}
			}
			value = n
		}
		return NewAdditionalInsurance(value), nil
	default:
		return nil, &shm.UnknownVariantError{Family: "insured", Tag: child.Tag}
	}
}
