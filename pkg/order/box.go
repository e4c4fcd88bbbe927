package order

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
	"github.com/beebop1032/bpost-api-library/pkg/validate"
)

// Box statuses reported by the service.
const (
	StatusOpen           = "OPEN"
	StatusPending        = "PENDING"
	StatusPrinted        = "PRINTED"
	StatusCancelled      = "CANCELLED"
	StatusOnHold         = "ON-HOLD"
	StatusAnnounced      = "ANNOUNCED"
	StatusInTransit      = "IN_TRANSIT"
	StatusAwaitingPickup = "AWAITING_PICKUP"
	StatusDelivered      = "DELIVERED"
	StatusBackToSender   = "BACK_TO_SENDER"
)

func boxStatuses() []string {
	return []string{
		StatusOpen,
		StatusPending,
		StatusPrinted,
		StatusCancelled,
		StatusOnHold,
		StatusAnnounced,
		StatusInTransit,
		StatusAwaitingPickup,
		StatusDelivered,
		StatusBackToSender,
	}
}

// CheckStatus validates and uppercase-normalizes a box status.
func CheckStatus(status string) (string, error) {
	return validate.UpperOneOf("status", status, boxStatuses())
}

// Box is one parcel of an order. The shipment slot holds exactly one
// variant, national or international; which one decides the
// serialization branch. Status and barcode are assigned by the service
// and only travel client-bound.
type Box struct {
	sender                      *Sender
	shipment                    Shipment
	remark                      string
	additionalCustomerReference string
	barcode                     string
	status                      string
}

// NewBox returns an empty box.
func NewBox() *Box { return &Box{} }

func (b *Box) SetSender(s *Sender) { b.sender = s }

func (b *Box) Sender() *Sender { return b.sender }

// SetShipment sets the variant slot; a national or international
// descriptor replaces whatever was there.
func (b *Box) SetShipment(s Shipment) { b.shipment = s }

func (b *Box) Shipment() Shipment { return b.shipment }

// NationalBox returns the shipment as a national variant, or nil.
func (b *Box) NationalBox() NationalBox {
	if n, ok := b.shipment.(NationalBox); ok {
		return n
	}
	return nil
}

// InternationalBox returns the shipment as an international variant, or
// nil.
func (b *Box) InternationalBox() InternationalBox {
	if i, ok := b.shipment.(InternationalBox); ok {
		return i
	}
	return nil
}

func (b *Box) SetRemark(v string) { b.remark = v }

func (b *Box) Remark() string { return b.remark }

func (b *Box) SetAdditionalCustomerReference(v string) { b.additionalCustomerReference = v }

func (b *Box) AdditionalCustomerReference() string { return b.additionalCustomerReference }

// SetBarcode stores the barcode uppercased.
func (b *Box) SetBarcode(v string) { b.barcode = strings.ToUpper(v) }

func (b *Box) Barcode() string { return b.barcode }

// SetStatus validates and stores the status uppercased.
func (b *Box) SetStatus(v string) error {
	normalized, err := CheckStatus(v)
	if err != nil {
		return err
	}
	b.status = normalized
	return nil
}

func (b *Box) Status() string { return b.status }

// appendTo emits the box in schema order: sender, shipment, remark,
// additionalCustomerReference, barcode. Status never leaves the client.
func (b *Box) appendTo(parent *etree.Element, prefix string) {
	el := parent.CreateElement(shm.Prefixed("box", prefix))
	if b.sender != nil {
		b.sender.appendTo(el, "sender", prefix)
	}
	if b.shipment != nil {
		b.shipment.appendShipmentTo(el, prefix)
	}
	appendText(el, "remark", prefix, b.remark)
	appendText(el, "additionalCustomerReference", prefix, b.additionalCustomerReference)
	appendText(el, "barcode", prefix, b.barcode)
}

// BoxFromXML rebuilds a box and its shipment variant from a parsed
// <box> element.
func BoxFromXML(el *etree.Element) (*Box, error) {
	b := NewBox()
	if senderEl := findChild(el, "sender"); senderEl != nil {
		s, err := SenderFromXML(senderEl)
		if err != nil {
			return nil, err
		}
		b.sender = s
	}
	if nationalEl := findChild(el, "nationalBox"); nationalEl != nil {
		shipment, err := decodeNationalBox(nationalEl)
		if err != nil {
			return nil, err
		}
		b.shipment = shipment
	}
	if intlEl := findChild(el, "internationalBox"); intlEl != nil {
		shipment, err := decodeInternationalBox(intlEl)
		if err != nil {
			return nil, err
		}
		b.shipment = shipment
	}
	b.remark = childText(el, "remark")
	b.additionalCustomerReference = childText(el, "additionalCustomerReference")
	if v := childText(el, "barcode"); v != "" {
		b.SetBarcode(v)
	}
	if v := childText(el, "status"); v != "" {
		if err := b.SetStatus(v); err != nil {
			return nil, err
		}
	}
	return b, nil
}
