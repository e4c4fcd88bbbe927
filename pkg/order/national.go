package order

import (
	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
)

// Product codes accepted by the national and international variants.
const (
	ProductBpack24hPro         = "bpack 24h Pro"
	ProductBpack24hBusiness    = "bpack 24h business"
	ProductBpackBusiness       = "bpack Bus"
	ProductBpackPallet         = "bpack Pallet"
	ProductBpackEasyRetour     = "bpack Easy Retour"
	ProductBpack247            = "bpack 24/7"
	ProductBpackAtBpost        = "bpack@bpost"
	ProductBpackWorldBusiness  = "bpack World Business"
	ProductBpackWorldExpress   = "bpack World Express Pro"
	ProductBpackEuropeBusiness = "bpack Europe Business"
	ProductBpackAtBpostIntl    = "bpack@bpost international"
)

// Shipment is the single variant slot of a [Box]: either a national or
// an international descriptor, never both.
type Shipment interface {
	appendShipmentTo(box *etree.Element, prefix string)
}

// NationalBox is a shipment delivered inside Belgium. Concrete variants
// are [AtHome], [AtBpost] and [At247].
type NationalBox interface {
	Shipment
	Product() string
	Options() []Option
	nationalBox()
}

// nationalDecoders maps the <nationalBox> child tag to the variant
// decoder. The 24/7 locker variant uses the historical at24-7 tag.
var nationalDecoders = map[string]func(*etree.Element) (NationalBox, error){
	"atHome":  decodeAtHome,
	"atBpost": decodeAtBpost,
	"at24-7":  decodeAt247,
}

func decodeNationalBox(nationalEl *etree.Element) (NationalBox, error) {
	children := nationalEl.ChildElements()
	if len(children) == 0 {
		return nil, &shm.UnknownVariantError{Family: "nationalBox", Tag: ""}
	}
	child := children[0]
	decode, ok := nationalDecoders[child.Tag]
	if !ok {
		return nil, &shm.UnknownVariantError{Family: "nationalBox", Tag: child.Tag}
	}
	return decode(child)
}

// national carries the fields every national variant shares. Variants
// embed it and validate their own product allow-list before storing.
type national struct {
	product              string
	options              []Option
	weight               int
	openingHours         []OpeningHour
	desiredDeliveryPlace string
}

func (n *national) Product() string { return n.product }

// SetWeight sets the parcel weight in grams.
func (n *national) SetWeight(grams int) { n.weight = grams }

func (n *national) Weight() int { return n.weight }

// AddOption appends an option; serialization preserves insertion order.
func (n *national) AddOption(opt Option) { n.options = append(n.options, opt) }

// SetOptions replaces the option list.
func (n *national) SetOptions(opts []Option) { n.options = opts }

func (n *national) Options() []Option { return n.options }

// AddOpeningHour appends a shop opening-hour entry.
func (n *national) AddOpeningHour(day OpeningHour) { n.openingHours = append(n.openingHours, day) }

// SetOpeningHours replaces the opening-hour list. A non-nil empty list
// still emits an empty <openingHours/> element; nil omits it.
func (n *national) SetOpeningHours(days []OpeningHour) { n.openingHours = days }

func (n *national) OpeningHours() []OpeningHour { return n.openingHours }

func (n *national) SetDesiredDeliveryPlace(v string) { n.desiredDeliveryPlace = v }

func (n *national) DesiredDeliveryPlace() string { return n.desiredDeliveryPlace }

// appendCommonTo emits the shared leading fields in schema order:
// product, options, weight, openingHours, desiredDeliveryPlace. National
// inner elements are unqualified, binding to the document's default
// national namespace; option children are common.
func (n *national) appendCommonTo(el *etree.Element) {
	appendText(el, "product", "", n.product)
	appendOptions(el, "", n.options)
	appendInt(el, "weight", "", n.weight)
	if n.openingHours != nil {
		hours := el.CreateElement("openingHours")
		for _, day := range n.openingHours {
			day.appendTo(hours)
		}
	}
	appendText(el, "desiredDeliveryPlace", "", n.desiredDeliveryPlace)
}

// decodeCommon populates the shared fields from a variant element.
// setProduct is the variant's validating setter.
func (n *national) decodeCommon(el *etree.Element, setProduct func(string) error) error {
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
		n.options = opts
	}
	n.weight = childInt(el, "weight")
	if hoursEl := findChild(el, "openingHours"); hoursEl != nil {
		n.openingHours = []OpeningHour{}
		for _, dayEl := range hoursEl.ChildElements() {
			day, err := NewOpeningHour(dayEl.Tag, dayEl.Text())
			if err != nil {
				return err
			}
			n.openingHours = append(n.openingHours, day)
		}
	}
	n.desiredDeliveryPlace = childText(el, "desiredDeliveryPlace")
	return nil
}
