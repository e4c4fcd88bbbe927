package order

import (
	"errors"

	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
	"github.com/beebop1032/bpost-api-library/pkg/validate"
)

const maxReference = 50

// ErrReferenceRequired is returned when serializing an order without a
// reference.
var ErrReferenceRequired = errors.New("order: reference is required")

// Line is one article line of an order.
type Line struct {
	Text      string
	NbOfItems int
}

func (l Line) appendTo(parent *etree.Element, prefix string) {
	el := parent.CreateElement(shm.Prefixed("orderLine", prefix))
	appendText(el, "text", prefix, l.Text)
	appendInt(el, "nbOfItems", prefix, l.NbOfItems)
}

// Order is a shipment order: a customer reference plus article lines
// and parcels. The account id is not part of the model; it is injected
// at serialization time by the owning client.
type Order struct {
	accountID  string
	reference  string
	costCenter string
	lines      []Line
	boxes      []*Box
}

// NewOrder creates an order with the given customer reference.
func NewOrder(reference string) (*Order, error) {
	o := &Order{}
	if err := o.SetReference(reference); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Order) SetReference(v string) error {
	if err := validate.Length("reference", v, maxReference); err != nil {
		return err
	}
	o.reference = v
	return nil
}

func (o *Order) Reference() string { return o.reference }

// AccountID returns the account a fetched order belongs to. It is
// service-assigned and empty on locally built orders.
func (o *Order) AccountID() string { return o.accountID }

func (o *Order) SetCostCenter(v string) { o.costCenter = v }

func (o *Order) CostCenter() string { return o.costCenter }

// AddLine appends an article line.
func (o *Order) AddLine(text string, nbOfItems int) {
	o.lines = append(o.lines, Line{Text: text, NbOfItems: nbOfItems})
}

// SetLines replaces the article lines.
func (o *Order) SetLines(lines []Line) { o.lines = lines }

func (o *Order) Lines() []Line { return o.lines }

// AddBox appends a parcel.
func (o *Order) AddBox(b *Box) { o.boxes = append(o.boxes, b) }

// SetBoxes replaces the parcels.
func (o *Order) SetBoxes(boxes []*Box) { o.boxes = boxes }

func (o *Order) Boxes() []*Box { return o.boxes }

// ToXMLDocument serializes the order for the given account. Children
// follow schema order: accountId, reference, costCenter, orderLine*,
// box*. Namespace declarations appear once, on the root.
func (o *Order) ToXMLDocument(accountID string) (*etree.Document, error) {
	if o.reference == "" {
		return nil, ErrReferenceRequired
	}

	doc := shm.NewDocument()
	root := doc.CreateElement(shm.Prefixed("order", shm.PrefixTns))
	shm.DeclareNamespaces(root)

	appendText(root, "accountId", shm.PrefixTns, accountID)
	appendText(root, "reference", shm.PrefixTns, o.reference)
	appendText(root, "costCenter", shm.PrefixTns, o.costCenter)
	for _, line := range o.lines {
		line.appendTo(root, shm.PrefixTns)
	}
	for _, box := range o.boxes {
		box.appendTo(root, shm.PrefixTns)
	}
	return doc, nil
}

// ToXML renders the serialized order as bytes.
func (o *Order) ToXML(accountID string) ([]byte, error) {
	doc, err := o.ToXMLDocument(accountID)
	if err != nil {
		return nil, err
	}
	return doc.WriteToBytes()
}

// OrderFromXML rebuilds an order from a parsed root element. Fetch
// responses use an orderInfo root; dispatch is by child tag, not root
// name.
func OrderFromXML(root *etree.Element) (*Order, error) {
	o := &Order{}
	o.accountID = childText(root, "accountId")
	if v := childText(root, "reference"); v != "" {
		if err := o.SetReference(v); err != nil {
			return nil, err
		}
	}
	o.costCenter = childText(root, "costCenter")
	for _, child := range root.ChildElements() {
		switch child.Tag {
		case "orderLine":
			o.lines = append(o.lines, Line{
				Text:      childText(child, "text"),
				NbOfItems: childInt(child, "nbOfItems"),
			})
		case "box":
			b, err := BoxFromXML(child)
			if err != nil {
				return nil, err
			}
			o.boxes = append(o.boxes, b)
		}
	}
	return o, nil
}

// OrderFromXMLBytes parses raw XML and rebuilds the order.
func OrderFromXMLBytes(data []byte) (*Order, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("order: empty XML document")
	}
	return OrderFromXML(root)
}
