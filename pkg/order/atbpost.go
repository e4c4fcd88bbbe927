package order

import (
	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
	"github.com/beebop1032/bpost-api-library/pkg/validate"
)

func atBpostProducts() []string {
	return []string{ProductBpackAtBpost}
}

// AtBpost is a national delivery to a pick-up point (post office or
// parcel shop). The receiver is identified by name and company rather
// than a full party, and the destination by its pick-up point id.
type AtBpost struct {
	national
	pugoID                  string
	pugoName                string
	pugoAddress             *PugoAddress
	receiverName            string
	receiverCompany         string
	requestedDeliveryDate   string
	shopHandlingInstruction string
}

// NewAtBpost creates a pick-up point delivery; the product is fixed to
// bpack@bpost.
func NewAtBpost() *AtBpost {
	a := &AtBpost{}
	a.product = ProductBpackAtBpost
	return a
}

func (a *AtBpost) SetProduct(v string) error {
	if err := validate.OneOf("product", v, atBpostProducts()); err != nil {
		return err
	}
	a.product = v
	return nil
}

func (a *AtBpost) SetPugoID(v string) { a.pugoID = v }

func (a *AtBpost) PugoID() string { return a.pugoID }

func (a *AtBpost) SetPugoName(v string) { a.pugoName = v }

func (a *AtBpost) PugoName() string { return a.pugoName }

func (a *AtBpost) SetPugoAddress(addr *PugoAddress) { a.pugoAddress = addr }

func (a *AtBpost) PugoAddress() *PugoAddress { return a.pugoAddress }

func (a *AtBpost) SetReceiverName(v string) error {
	if err := validate.Length("receiverName", v, maxName); err != nil {
		return err
	}
	a.receiverName = v
	return nil
}

func (a *AtBpost) ReceiverName() string { return a.receiverName }

func (a *AtBpost) SetReceiverCompany(v string) error {
	if err := validate.Length("receiverCompany", v, maxCompany); err != nil {
		return err
	}
	a.receiverCompany = v
	return nil
}

func (a *AtBpost) ReceiverCompany() string { return a.receiverCompany }

// SetRequestedDeliveryDate sets the desired delivery day, YYYY-MM-DD.
func (a *AtBpost) SetRequestedDeliveryDate(v string) { a.requestedDeliveryDate = v }

func (a *AtBpost) RequestedDeliveryDate() string { return a.requestedDeliveryDate }

// SetShopHandlingInstruction sets free-text handling instructions shown
// to the shop.
func (a *AtBpost) SetShopHandlingInstruction(v string) { a.shopHandlingInstruction = v }

func (a *AtBpost) ShopHandlingInstruction() string { return a.shopHandlingInstruction }

func (a *AtBpost) nationalBox() {}

func (a *AtBpost) appendShipmentTo(box *etree.Element, prefix string) {
	national := box.CreateElement(shm.Prefixed("nationalBox", prefix))
	el := national.CreateElement("atBpost")
	a.appendCommonTo(el)
	appendText(el, "pugoId", "", a.pugoID)
	appendText(el, "pugoName", "", a.pugoName)
	if a.pugoAddress != nil {
		a.pugoAddress.appendTo(el, "pugoAddress", "")
	}
	appendText(el, "receiverName", "", a.receiverName)
	appendText(el, "receiverCompany", "", a.receiverCompany)
	appendText(el, "requestedDeliveryDate", "", a.requestedDeliveryDate)
	appendText(el, "shopHandlingInstruction", "", a.shopHandlingInstruction)
}

func decodeAtBpost(el *etree.Element) (NationalBox, error) {
	a := NewAtBpost()
	if err := a.decodeCommon(el, a.SetProduct); err != nil {
		return nil, err
	}
	a.pugoID = childText(el, "pugoId")
	a.pugoName = childText(el, "pugoName")
	if addrEl := findChild(el, "pugoAddress"); addrEl != nil {
		addr, err := addressFromXML(addrEl)
		if err != nil {
			return nil, err
		}
		a.pugoAddress = &PugoAddress{Address: *addr}
	}
	if v := childText(el, "receiverName"); v != "" {
		if err := a.SetReceiverName(v); err != nil {
			return nil, err
		}
	}
	if v := childText(el, "receiverCompany"); v != "" {
		if err := a.SetReceiverCompany(v); err != nil {
			return nil, err
		}
	}
	a.requestedDeliveryDate = childText(el, "requestedDeliveryDate")
	a.shopHandlingInstruction = childText(el, "shopHandlingInstruction")
	return a, nil
}
