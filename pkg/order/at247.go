package order

import (
	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
	"github.com/beebop1032/bpost-api-library/pkg/validate"
)

func at247Products() []string {
	return []string{ProductBpack24hPro, ProductBpack247}
}

// At247 is a national delivery to a 24/7 parcel locker. The receiver is
// either a registered locker member (memberId) or an unregistered
// contact carried inline.
type At247 struct {
	national
	parcelsDepotID        string
	parcelsDepotName      string
	parcelsDepotAddress   *ParcelsDepotAddress
	memberID              string
	unregistered          *Unregistered
	receiverName          string
	receiverCompany       string
	requestedDeliveryDate string
}

// NewAt247 creates a parcel-locker delivery for the given product.
func NewAt247(product string) (*At247, error) {
	a := &At247{}
	if err := a.SetProduct(product); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *At247) SetProduct(v string) error {
	if err := validate.OneOf("product", v, at247Products()); err != nil {
		return err
	}
	a.product = v
	return nil
}

func (a *At247) SetParcelsDepotID(v string) { a.parcelsDepotID = v }

func (a *At247) ParcelsDepotID() string { return a.parcelsDepotID }

func (a *At247) SetParcelsDepotName(v string) { a.parcelsDepotName = v }

func (a *At247) ParcelsDepotName() string { return a.parcelsDepotName }

func (a *At247) SetParcelsDepotAddress(addr *ParcelsDepotAddress) { a.parcelsDepotAddress = addr }

func (a *At247) ParcelsDepotAddress() *ParcelsDepotAddress { return a.parcelsDepotAddress }

func (a *At247) SetMemberID(v string) { a.memberID = v }

func (a *At247) MemberID() string { return a.memberID }

func (a *At247) SetUnregistered(u *Unregistered) { a.unregistered = u }

func (a *At247) Unregistered() *Unregistered { return a.unregistered }

func (a *At247) SetReceiverName(v string) error {
	if err := validate.Length("receiverName", v, maxName); err != nil {
		return err
	}
	a.receiverName = v
	return nil
}

func (a *At247) ReceiverName() string { return a.receiverName }

func (a *At247) SetReceiverCompany(v string) error {
	if err := validate.Length("receiverCompany", v, maxCompany); err != nil {
		return err
	}
	a.receiverCompany = v
	return nil
}

func (a *At247) ReceiverCompany() string { return a.receiverCompany }

// SetRequestedDeliveryDate sets the desired delivery day, YYYY-MM-DD.
func (a *At247) SetRequestedDeliveryDate(v string) { a.requestedDeliveryDate = v }

func (a *At247) RequestedDeliveryDate() string { return a.requestedDeliveryDate }

func (a *At247) nationalBox() {}

func (a *At247) appendShipmentTo(box *etree.Element, prefix string) {
	national := box.CreateElement(shm.Prefixed("nationalBox", prefix))
	el := national.CreateElement("at24-7")
	a.appendCommonTo(el)
	appendText(el, "parcelsDepotId", "", a.parcelsDepotID)
	appendText(el, "parcelsDepotName", "", a.parcelsDepotName)
	if a.parcelsDepotAddress != nil {
		a.parcelsDepotAddress.appendTo(el, "parcelsDepotAddress", "")
	}
	appendText(el, "memberId", "", a.memberID)
	if a.unregistered != nil {
		a.unregistered.appendTo(el)
	}
	appendText(el, "receiverName", "", a.receiverName)
	appendText(el, "receiverCompany", "", a.receiverCompany)
	appendText(el, "requestedDeliveryDate", "", a.requestedDeliveryDate)
}

func decodeAt247(el *etree.Element) (NationalBox, error) {
	a := &At247{}
	if err := a.decodeCommon(el, a.SetProduct); err != nil {
		return nil, err
	}
	a.parcelsDepotID = childText(el, "parcelsDepotId")
	a.parcelsDepotName = childText(el, "parcelsDepotName")
	if addrEl := findChild(el, "parcelsDepotAddress"); addrEl != nil {
		addr, err := addressFromXML(addrEl)
		if err != nil {
			return nil, err
		}
		a.parcelsDepotAddress = &ParcelsDepotAddress{Address: *addr}
	}
	a.memberID = childText(el, "memberId")
	if unregEl := findChild(el, "unregistered"); unregEl != nil {
		u, err := decodeUnregistered(unregEl)
		if err != nil {
			return nil, err
		}
		a.unregistered = u
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
	return a, nil
}
