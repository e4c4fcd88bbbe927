package order

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
	"github.com/beebop1032/bpost-api-library/pkg/validate"
)

// Maximum field lengths for address fields, in characters.
const (
	maxStreetName  = 40
	maxNumber      = 8
	maxBox         = 8
	maxPostalCode  = 8
	maxLocality    = 40
	lenCountryCode = 2
)

// Address is a street address as the common schema defines it. All
// fields are optional on the wire; length limits are enforced on set.
type Address struct {
	streetName  string
	number      string
	box         string
	postalCode  string
	locality    string
	countryCode string
}

// NewAddress creates an address with every field set, failing on the
// first constraint violation.
func NewAddress(streetName, number, box, postalCode, locality, countryCode string) (*Address, error) {
	a := &Address{}
	setters := []func() error{
		func() error { return a.SetStreetName(streetName) },
		func() error { return a.SetNumber(number) },
		func() error { return a.SetBox(box) },
		func() error { return a.SetPostalCode(postalCode) },
		func() error { return a.SetLocality(locality) },
		func() error { return a.SetCountryCode(countryCode) },
	}
	for _, set := range setters {
		if err := set(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Address) SetStreetName(v string) error {
	if err := validate.Length("streetName", v, maxStreetName); err != nil {
		return err
	}
	a.streetName = v
	return nil
}

func (a *Address) StreetName() string { return a.streetName }

func (a *Address) SetNumber(v string) error {
	if err := validate.Length("number", v, maxNumber); err != nil {
		return err
	}
	a.number = v
	return nil
}

func (a *Address) Number() string { return a.number }

func (a *Address) SetBox(v string) error {
	if err := validate.Length("box", v, maxBox); err != nil {
		return err
	}
	a.box = v
	return nil
}

func (a *Address) Box() string { return a.box }

func (a *Address) SetPostalCode(v string) error {
	if err := validate.Length("postalCode", v, maxPostalCode); err != nil {
		return err
	}
	a.postalCode = v
	return nil
}

func (a *Address) PostalCode() string { return a.postalCode }

func (a *Address) SetLocality(v string) error {
	if err := validate.Length("locality", v, maxLocality); err != nil {
		return err
	}
	a.locality = v
	return nil
}

func (a *Address) Locality() string { return a.locality }

// SetCountryCode stores the ISO 3166-1 alpha-2 code, uppercased.
func (a *Address) SetCountryCode(v string) error {
	v = strings.ToUpper(v)
	if err := validate.Length("countryCode", v, lenCountryCode); err != nil {
		return err
	}
	a.countryCode = v
	return nil
}

func (a *Address) CountryCode() string { return a.countryCode }

// appendTo emits the address under tag, with children in schema order:
// streetName, number, box, postalCode, locality, countryCode.
func (a *Address) appendTo(parent *etree.Element, tag, prefix string) {
	el := parent.CreateElement(shm.Prefixed(tag, prefix))
	appendText(el, "streetName", shm.PrefixCommon, a.streetName)
	appendText(el, "number", shm.PrefixCommon, a.number)
	appendText(el, "box", shm.PrefixCommon, a.box)
	appendText(el, "postalCode", shm.PrefixCommon, a.postalCode)
	appendText(el, "locality", shm.PrefixCommon, a.locality)
	appendText(el, "countryCode", shm.PrefixCommon, a.countryCode)
}

// addressFromXML rebuilds an address from a parsed element, leaving
// blank fields unset.
func addressFromXML(el *etree.Element) (*Address, error) {
	a := &Address{}
	fields := []struct {
		tag string
		set func(string) error
	}{
		{"streetName", a.SetStreetName},
		{"number", a.SetNumber},
		{"box", a.SetBox},
		{"postalCode", a.SetPostalCode},
		{"locality", a.SetLocality},
		{"countryCode", a.SetCountryCode},
	}
	for _, f := range fields {
		if v := childText(el, f.tag); v != "" {
			if err := f.set(v); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

// PugoAddress is the address of a pick-up/drop-off point.
type PugoAddress struct {
	Address
}

// ParcelsDepotAddress is the address of a 24/7 parcel locker depot.
type ParcelsDepotAddress struct {
	Address
}
