package order

import (
	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
)

// Option is an add-on service attached to a shipment: messaging
// notifications, insurance, cash on delivery, signature, saturday
// delivery or automatic second presentation. The family is closed;
// concrete variants are selected on decode by their wire tag name.
type Option interface {
	// appendOptionTo emits the option inside an <options> container.
	// Option elements and their children live in the common namespace.
	appendOptionTo(options *etree.Element)
}

// optionDecoders maps an options-container child tag to its variant
// constructor. Unknown tags fail decoding with shm.UnknownVariantError.
var optionDecoders = map[string]func(*etree.Element) (Option, error){
	MessagingInfoDistributed: decodeMessaging,
	MessagingInfoNextDay:     decodeMessaging,
	MessagingInfoReminder:    decodeMessaging,
	MessagingKeepMeInformed:  decodeMessaging,
	"insured":                decodeInsured,
	"cod":                    decodeCashOnDelivery,
	"signed":                 decodeSigned,
	"saturdayDelivery":       decodeSaturdayDelivery,
	"automaticSecondPresentation": func(*etree.Element) (Option, error) {
		return &AutomaticSecondPresentation{}, nil
	},
}

func decodeOption(el *etree.Element) (Option, error) {
	decode, ok := optionDecoders[el.Tag]
	if !ok {
		return nil, &shm.UnknownVariantError{Family: "option", Tag: el.Tag}
	}
	return decode(el)
}

// decodeOptions walks an <options> container, preserving wire order.
func decodeOptions(optionsEl *etree.Element) ([]Option, error) {
	var opts []Option
	for _, child := range optionsEl.ChildElements() {
		opt, err := decodeOption(child)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

// appendOptions emits an <options> container under parent when at least
// one option is present. The container element itself is qualified by the
// owning family's prefix; its children are always common.
func appendOptions(parent *etree.Element, prefix string, opts []Option) {
	if len(opts) == 0 {
		return
	}
	container := parent.CreateElement(shm.Prefixed("options", prefix))
	for _, opt := range opts {
		opt.appendOptionTo(container)
	}
}

// Signed requests a signature at delivery.
type Signed struct{}

func (*Signed) appendOptionTo(options *etree.Element) {
	options.CreateElement(shm.Prefixed("signed", shm.PrefixCommon))
}

func decodeSigned(*etree.Element) (Option, error) { return &Signed{}, nil }

// SaturdayDelivery requests delivery on saturday.
type SaturdayDelivery struct{}

func (*SaturdayDelivery) appendOptionTo(options *etree.Element) {
	options.CreateElement(shm.Prefixed("saturdayDelivery", shm.PrefixCommon))
}

func decodeSaturdayDelivery(*etree.Element) (Option, error) { return &SaturdayDelivery{}, nil }

// AutomaticSecondPresentation requests a second delivery attempt without
// receiver intervention.
type AutomaticSecondPresentation struct{}

func (*AutomaticSecondPresentation) appendOptionTo(options *etree.Element) {
	options.CreateElement(shm.Prefixed("automaticSecondPresentation", shm.PrefixCommon))
}
