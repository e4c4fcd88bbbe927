package order

import (
	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
	"github.com/beebop1032/bpost-api-library/pkg/validate"
)

func atHomeProducts() []string {
	return []string{
		ProductBpack24hPro,
		ProductBpack24hBusiness,
		ProductBpackBusiness,
		ProductBpackPallet,
		ProductBpackEasyRetour,
	}
}

// AtHome is a national home or office delivery.
type AtHome struct {
	national
	receiver              *Receiver
	requestedDeliveryDate string
}

// NewAtHome creates a home delivery for the given product.
func NewAtHome(product string) (*AtHome, error) {
	a := &AtHome{}
	if err := a.SetProduct(product); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *AtHome) SetProduct(v string) error {
	if err := validate.OneOf("product", v, atHomeProducts()); err != nil {
		return err
	}
	a.product = v
	return nil
}

func (a *AtHome) SetReceiver(r *Receiver) { a.receiver = r }

func (a *AtHome) Receiver() *Receiver { return a.receiver }

// SetRequestedDeliveryDate sets the desired delivery day, YYYY-MM-DD.
func (a *AtHome) SetRequestedDeliveryDate(v string) { a.requestedDeliveryDate = v }

func (a *AtHome) RequestedDeliveryDate() string { return a.requestedDeliveryDate }

func (a *AtHome) nationalBox() {}

func (a *AtHome) appendShipmentTo(box *etree.Element, prefix string) {
	national := box.CreateElement(shm.Prefixed("nationalBox", prefix))
	el := national.CreateElement("atHome")
	a.appendCommonTo(el)
	if a.receiver != nil {
		a.receiver.appendTo(el, "receiver", "")
	}
	appendText(el, "requestedDeliveryDate", "", a.requestedDeliveryDate)
}

func decodeAtHome(el *etree.Element) (NationalBox, error) {
	a := &AtHome{}
	if err := a.decodeCommon(el, a.SetProduct); err != nil {
		return nil, err
	}
	if recvEl := findChild(el, "receiver"); recvEl != nil {
		r, err := ReceiverFromXML(recvEl)
		if err != nil {
			return nil, err
		}
		a.receiver = r
	}
	a.requestedDeliveryDate = childText(el, "requestedDeliveryDate")
	return a, nil
}
