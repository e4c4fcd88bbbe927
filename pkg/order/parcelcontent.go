package order

import (
	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
	"github.com/beebop1032/bpost-api-library/pkg/validate"
)

const maxItemDescription = 30

// ParcelContent is one customs line of an international shipment.
// Values are euro cents, weights grams.
type ParcelContent struct {
	numberOfItemType int
	valueOfItem      int
	itemDescription  string
	nettoWeight      int
	hsTariffCode     string
	originOfGoods    string
}

func (p *ParcelContent) SetNumberOfItemType(v int) { p.numberOfItemType = v }

func (p *ParcelContent) NumberOfItemType() int { return p.numberOfItemType }

func (p *ParcelContent) SetValueOfItem(v int) { p.valueOfItem = v }

func (p *ParcelContent) ValueOfItem() int { return p.valueOfItem }

// SetItemDescription stores the description, silently truncated to the
// schema limit rather than rejected.
func (p *ParcelContent) SetItemDescription(v string) {
	p.itemDescription = validate.Truncate(v, maxItemDescription)
}

func (p *ParcelContent) ItemDescription() string { return p.itemDescription }

func (p *ParcelContent) SetNettoWeight(v int) { p.nettoWeight = v }

func (p *ParcelContent) NettoWeight() int { return p.nettoWeight }

func (p *ParcelContent) SetHsTariffCode(v string) { p.hsTariffCode = v }

func (p *ParcelContent) HsTariffCode() string { return p.hsTariffCode }

// SetOriginOfGoods stores the ISO country code of origin.
func (p *ParcelContent) SetOriginOfGoods(v string) { p.originOfGoods = v }

func (p *ParcelContent) OriginOfGoods() string { return p.originOfGoods }

func (p *ParcelContent) appendTo(contents *etree.Element) {
	el := contents.CreateElement(shm.Prefixed("parcelContent", shm.PrefixInternational))
	appendInt(el, "numberOfItemType", shm.PrefixInternational, p.numberOfItemType)
	appendInt(el, "valueOfItem", shm.PrefixInternational, p.valueOfItem)
	appendText(el, "itemDescription", shm.PrefixInternational, p.itemDescription)
	appendInt(el, "nettoWeight", shm.PrefixInternational, p.nettoWeight)
	appendText(el, "hsTariffCode", shm.PrefixInternational, p.hsTariffCode)
	appendText(el, "originOfGoods", shm.PrefixInternational, p.originOfGoods)
}

func decodeParcelContent(el *etree.Element) *ParcelContent {
	p := &ParcelContent{}
	p.numberOfItemType = childInt(el, "numberOfItemType")
	p.valueOfItem = childInt(el, "valueOfItem")
	p.SetItemDescription(childText(el, "itemDescription"))
	p.nettoWeight = childInt(el, "nettoWeight")
	p.hsTariffCode = childText(el, "hsTariffCode")
	p.originOfGoods = childText(el, "originOfGoods")
	return p
}
