package order

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
	"github.com/beebop1032/bpost-api-library/pkg/validate"
)

const maxContentDescription = 50

// Customs shipment types.
const (
	ShipmentTypeSample    = "SAMPLE"
	ShipmentTypeGift      = "GIFT"
	ShipmentTypeGoods     = "GOODS"
	ShipmentTypeDocuments = "DOCUMENTS"
	ShipmentTypeOther     = "OTHER"
)

// Instructions for undeliverable parcels.
const (
	ReturnToAddress = "RTA"
	ReturnToSender  = "RTS"
	Abandoned       = "ABANDONED"
)

// CurrencyEUR is the only currency the service accepts.
const CurrencyEUR = "EUR"

func shipmentTypes() []string {
	return []string{ShipmentTypeSample, ShipmentTypeGift, ShipmentTypeGoods, ShipmentTypeDocuments, ShipmentTypeOther}
}

func parcelReturnInstructions() []string {
	return []string{ReturnToAddress, ReturnToSender, Abandoned}
}

// CustomsInfo is the customs declaration an international shipment
// carries. privateAddress is a tri-state: unset fields stay off the
// wire.
type CustomsInfo struct {
	parcelValue              int
	contentDescription       string
	shipmentType             string
	parcelReturnInstructions string
	privateAddress           *bool
	currency                 string
	amtPostagePaidByAddresse float64
}

// SetParcelValue sets the declared parcel value in euro cents.
func (c *CustomsInfo) SetParcelValue(v int) { c.parcelValue = v }

func (c *CustomsInfo) ParcelValue() int { return c.parcelValue }

func (c *CustomsInfo) SetContentDescription(v string) error {
	if err := validate.Length("contentDescription", v, maxContentDescription); err != nil {
		return err
	}
	c.contentDescription = v
	return nil
}

func (c *CustomsInfo) ContentDescription() string { return c.contentDescription }

func (c *CustomsInfo) SetShipmentType(v string) error {
	normalized, err := validate.UpperOneOf("shipmentType", v, shipmentTypes())
	if err != nil {
		return err
	}
	c.shipmentType = normalized
	return nil
}

func (c *CustomsInfo) ShipmentType() string { return c.shipmentType }

func (c *CustomsInfo) SetParcelReturnInstructions(v string) error {
	normalized, err := validate.UpperOneOf("parcelReturnInstructions", v, parcelReturnInstructions())
	if err != nil {
		return err
	}
	c.parcelReturnInstructions = normalized
	return nil
}

func (c *CustomsInfo) ParcelReturnInstructions() string { return c.parcelReturnInstructions }

func (c *CustomsInfo) SetPrivateAddress(v bool) { c.privateAddress = &v }

func (c *CustomsInfo) PrivateAddress() *bool { return c.privateAddress }

func (c *CustomsInfo) SetCurrency(v string) error {
	normalized, err := validate.UpperOneOf("currency", v, []string{CurrencyEUR})
	if err != nil {
		return err
	}
	c.currency = normalized
	return nil
}

func (c *CustomsInfo) Currency() string { return c.currency }

// SetAmtPostagePaidByAddresse sets the postage amount charged to the
// addressee, in euro.
func (c *CustomsInfo) SetAmtPostagePaidByAddresse(v float64) { c.amtPostagePaidByAddresse = v }

func (c *CustomsInfo) AmtPostagePaidByAddresse() float64 { return c.amtPostagePaidByAddresse }

func (c *CustomsInfo) appendTo(parent *etree.Element) {
	el := parent.CreateElement(shm.Prefixed("customsInfo", shm.PrefixInternational))
	appendInt(el, "parcelValue", shm.PrefixInternational, c.parcelValue)
	appendText(el, "contentDescription", shm.PrefixInternational, c.contentDescription)
	appendText(el, "shipmentType", shm.PrefixInternational, c.shipmentType)
	appendText(el, "parcelReturnInstructions", shm.PrefixInternational, c.parcelReturnInstructions)
	if c.privateAddress != nil {
		el.CreateElement(shm.Prefixed("privateAddress", shm.PrefixInternational)).
			SetText(strconv.FormatBool(*c.privateAddress))
	}
	appendText(el, "currency", shm.PrefixInternational, c.currency)
	if c.amtPostagePaidByAddresse != 0 {
		el.CreateElement(shm.Prefixed("amtPostagePaidByAddresse", shm.PrefixInternational)).
			SetText(formatAmount(c.amtPostagePaidByAddresse))
	}
}

func decodeCustomsInfo(el *etree.Element) (*CustomsInfo, error) {
	c := &CustomsInfo{}
	c.parcelValue = childInt(el, "parcelValue")
	if v := childText(el, "contentDescription"); v != "" {
		if err := c.SetContentDescription(v); err != nil {
			return nil, err
		}
	}
	if v := childText(el, "shipmentType"); v != "" {
		if err := c.SetShipmentType(v); err != nil {
			return nil, err
		}
	}
	if v := childText(el, "parcelReturnInstructions"); v != "" {
		if err := c.SetParcelReturnInstructions(v); err != nil {
			return nil, err
		}
	}
	if v := childText(el, "privateAddress"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		c.privateAddress = &b
	}
	if v := childText(el, "currency"); v != "" {
		if err := c.SetCurrency(v); err != nil {
			return nil, err
		}
	}
	if v := childText(el, "amtPostagePaidByAddresse"); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		c.amtPostagePaidByAddresse = amount
	}
	return c, nil
}
