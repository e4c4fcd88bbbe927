package order

import (
	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
	"github.com/beebop1032/bpost-api-library/pkg/validate"
)

func internationalProducts() []string {
	return []string{
		ProductBpackWorldBusiness,
		ProductBpackWorldExpress,
		ProductBpackEuropeBusiness,
	}
}

func atIntlPugoProducts() []string {
	return []string{ProductBpackAtBpostIntl}
}

// InternationalBox is a shipment leaving Belgium. Concrete variants are
// [International] (home delivery) and [AtIntlPugo] (foreign pick-up
// point).
type InternationalBox interface {
	Shipment
	Product() string
	Options() []Option
	internationalBox()
}

var internationalDecoders = map[string]func(*etree.Element) (InternationalBox, error){
	"international": decodeInternational,
	"atIntlPugo":    decodeAtIntlPugo,
}

func decodeInternationalBox(intlEl *etree.Element) (InternationalBox, error) {
	children := intlEl.ChildElements()
	if len(children) == 0 {
		return nil, &shm.UnknownVariantError{Family: "internationalBox", Tag: ""}
	}
	child := children[0]
	decode, ok := internationalDecoders[child.Tag]
	if !ok {
		return nil, &shm.UnknownVariantError{Family: "internationalBox", Tag: child.Tag}
	}
	return decode(child)
}

// international carries the fields both variants share. Inner elements
// are international-qualified; option and receiver children stay
// common.
type international struct {
	product        string
	options        []Option
	receiver       *Receiver
	parcelWeight   int
	customsInfo    *CustomsInfo
	parcelContents []*ParcelContent
}

func (i *international) Product() string { return i.product }

// AddOption appends an option; serialization preserves insertion order.
func (i *international) AddOption(opt Option) { i.options = append(i.options, opt) }

// SetOptions replaces the option list.
func (i *international) SetOptions(opts []Option) { i.options = opts }

func (i *international) Options() []Option { return i.options }

func (i *international) SetReceiver(r *Receiver) { i.receiver = r }

func (i *international) Receiver() *Receiver { return i.receiver }

// SetParcelWeight sets the parcel weight in grams.
func (i *international) SetParcelWeight(grams int) { i.parcelWeight = grams }

func (i *international) ParcelWeight() int { return i.parcelWeight }

func (i *international) SetCustomsInfo(c *CustomsInfo) { i.customsInfo = c }

func (i *international) CustomsInfo() *CustomsInfo { return i.customsInfo }

// AddParcelContent appends a customs line.
func (i *international) AddParcelContent(p *ParcelContent) {
	i.parcelContents = append(i.parcelContents, p)
}

// SetParcelContents replaces the customs lines.
func (i *international) SetParcelContents(ps []*ParcelContent) { i.parcelContents = ps }

func (i *international) ParcelContents() []*ParcelContent { return i.parcelContents }

// appendCommonTo emits the shared fields in schema order: product,
// options, receiver, parcelWeight, customsInfo, parcelContents.
func (i *international) appendCommonTo(el *etree.Element) {
	appendText(el, "product", shm.PrefixInternational, i.product)
	appendOptions(el, shm.PrefixInternational, i.options)
	if i.receiver != nil {
		i.receiver.appendTo(el, "receiver", shm.PrefixInternational)
	}
	appendInt(el, "parcelWeight", shm.PrefixInternational, i.parcelWeight)
	if i.customsInfo != nil {
		i.customsInfo.appendTo(el)
	}
	if len(i.parcelContents) > 0 {
		contents := el.CreateElement(shm.Prefixed("parcelContents", shm.PrefixInternational))
		for _, p := range i.parcelContents {
			p.appendTo(contents)
		}
	}
}

func (i *international) decodeCommon(el *etree.Element, setProduct func(string) error) error {
	if v := childText(el, "product"); v != "" {
		if err := setProduct(v); err != nil {
			return err
		}
	}
	if optionsEl := findChild(el, "options"); optionsEl != nil {
		opts, err := decodeOptions(optionsEl)
		if err != nil {
			return err
		}
		i.options = opts
	}
	if recvEl := findChild(el, "receiver"); recvEl != nil {
		r, err := ReceiverFromXML(recvEl)
		if err != nil {
			return err
		}
		i.receiver = r
	}
	i.parcelWeight = childInt(el, "parcelWeight")
	if customsEl := findChild(el, "customsInfo"); customsEl != nil {
		c, err := decodeCustomsInfo(customsEl)
		if err != nil {
			return err
		}
		i.customsInfo = c
	}
	if contentsEl := findChild(el, "parcelContents"); contentsEl != nil {
		for _, contentEl := range contentsEl.ChildElements() {
			i.parcelContents = append(i.parcelContents, decodeParcelContent(contentEl))
		}
	}
	return nil
}

// International is an international home or office delivery.
type International struct {
	international
}

// NewInternational creates an international delivery for the given
// product.
func NewInternational(product string) (*International, error) {
	i := &International{}
	if err := i.SetProduct(product); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *International) SetProduct(v string) error {
	if err := validate.OneOf("product", v, internationalProducts()); err != nil {
		return err
	}
	i.product = v
	return nil
}

func (i *International) internationalBox() {}

func (i *International) appendShipmentTo(box *etree.Element, prefix string) {
	container := box.CreateElement(shm.Prefixed("internationalBox", prefix))
	el := container.CreateElement(shm.Prefixed("international", shm.PrefixInternational))
	i.appendCommonTo(el)
}

func decodeInternational(el *etree.Element) (InternationalBox, error) {
	i := &International{}
	if err := i.decodeCommon(el, i.SetProduct); err != nil {
		return nil, err
	}
	return i, nil
}

// AtIntlPugo is an international delivery to a pick-up point abroad.
type AtIntlPugo struct {
	international
	pugoID                string
	pugoName              string
	pugoAddress           *PugoAddress
	requestedDeliveryDate string
}

// NewAtIntlPugo creates a foreign pick-up point delivery; the product
// is fixed to bpack@bpost international.
func NewAtIntlPugo() *AtIntlPugo {
	a := &AtIntlPugo{}
	a.product = ProductBpackAtBpostIntl
	return a
}

func (a *AtIntlPugo) SetProduct(v string) error {
	if err := validate.OneOf("product", v, atIntlPugoProducts()); err != nil {
		return err
	}
	a.product = v
	return nil
}

func (a *AtIntlPugo) SetPugoID(v string) { a.pugoID = v }

func (a *AtIntlPugo) PugoID() string { return a.pugoID }

func (a *AtIntlPugo) SetPugoName(v string) { a.pugoName = v }

func (a *AtIntlPugo) PugoName() string { return a.pugoName }

func (a *AtIntlPugo) SetPugoAddress(addr *PugoAddress) { a.pugoAddress = addr }

func (a *AtIntlPugo) PugoAddress() *PugoAddress { return a.pugoAddress }

// SetRequestedDeliveryDate sets the desired delivery day, YYYY-MM-DD.
func (a *AtIntlPugo) SetRequestedDeliveryDate(v string) { a.requestedDeliveryDate = v }

func (a *AtIntlPugo) RequestedDeliveryDate() string { return a.requestedDeliveryDate }

func (a *AtIntlPugo) internationalBox() {}

func (a *AtIntlPugo) appendShipmentTo(box *etree.Element, prefix string) {
	container := box.CreateElement(shm.Prefixed("internationalBox", prefix))
	el := container.CreateElement(shm.Prefixed("atIntlPugo", shm.PrefixInternational))
	a.appendCommonTo(el)
	appendText(el, "pugoId", shm.PrefixInternational, a.pugoID)
	appendText(el, "pugoName", shm.PrefixInternational, a.pugoName)
	if a.pugoAddress != nil {
		a.pugoAddress.appendTo(el, "pugoAddress", shm.PrefixInternational)
	}
	appendText(el, "requestedDeliveryDate", shm.PrefixInternational, a.requestedDeliveryDate)
}

func decodeAtIntlPugo(el *etree.Element) (InternationalBox, error) {
	a := NewAtIntlPugo()
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
	a.requestedDeliveryDate = childText(el, "requestedDeliveryDate")
	return a, nil
}
