package order

import (
	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
	"github.com/beebop1032/bpost-api-library/pkg/validate"
)

const (
	maxName         = 40
	maxCompany      = 40
	maxEmailAddress = 50
	maxPhoneNumber  = 20
)

// party carries the fields Sender and Receiver share: a contact with an
// address. Emission order is fixed: name, company, address, emailAddress,
// phoneNumber.
type party struct {
	name         string
	company      string
	address      *Address
	emailAddress string
	phoneNumber  string
}

func (p *party) SetName(v string) error {
	if err := validate.Length("name", v, maxName); err != nil {
		return err
	}
	p.name = v
	return nil
}

func (p *party) Name() string { return p.name }

func (p *party) SetCompany(v string) error {
	if err := validate.Length("company", v, maxCompany); err != nil {
		return err
	}
	p.company = v
	return nil
}

func (p *party) Company() string { return p.company }

func (p *party) SetAddress(a *Address) { p.address = a }

func (p *party) Address() *Address { return p.address }

func (p *party) SetEmailAddress(v string) error {
	if err := validate.Length("emailAddress", v, maxEmailAddress); err != nil {
		return err
	}
	p.emailAddress = v
	return nil
}

func (p *party) EmailAddress() string { return p.emailAddress }

func (p *party) SetPhoneNumber(v string) error {
	if err := validate.Length("phoneNumber", v, maxPhoneNumber); err != nil {
		return err
	}
	p.phoneNumber = v
	return nil
}

func (p *party) PhoneNumber() string { return p.phoneNumber }

func (p *party) appendTo(parent *etree.Element, tag, prefix string) {
	el := parent.CreateElement(shm.Prefixed(tag, prefix))
	appendText(el, "name", shm.PrefixCommon, p.name)
	appendText(el, "company", shm.PrefixCommon, p.company)
	if p.address != nil {
		p.address.appendTo(el, "address", shm.PrefixCommon)
	}
	appendText(el, "emailAddress", shm.PrefixCommon, p.emailAddress)
	appendText(el, "phoneNumber", shm.PrefixCommon, p.phoneNumber)
}

func (p *party) decodeFrom(el *etree.Element) error {
	fields := []struct {
		tag string
		set func(string) error
	}{
		{"name", p.SetName},
		{"company", p.SetCompany},
		{"emailAddress", p.SetEmailAddress},
		{"phoneNumber", p.SetPhoneNumber},
	}
	for _, f := range fields {
		if v := childText(el, f.tag); v != "" {
			if err := f.set(v); err != nil {
				return err
			}
		}
	}
	if addrEl := findChild(el, "address"); addrEl != nil {
		addr, err := addressFromXML(addrEl)
		if err != nil {
			return err
		}
		p.address = addr
	}
	return nil
}

// Sender is the party announcing the parcel.
type Sender struct {
	party
}

// NewSender returns an empty sender.
func NewSender() *Sender { return &Sender{} }

// SenderFromXML rebuilds a sender from its common-namespace children.
func SenderFromXML(el *etree.Element) (*Sender, error) {
	s := &Sender{}
	if err := s.decodeFrom(el); err != nil {
		return nil, err
	}
	return s, nil
}

// Receiver is the party the parcel is delivered to.
type Receiver struct {
	party
}

// NewReceiver returns an empty receiver.
func NewReceiver() *Receiver { return &Receiver{} }

// ReceiverFromXML rebuilds a receiver from its common-namespace children.
func ReceiverFromXML(el *etree.Element) (*Receiver, error) {
	r := &Receiver{}
	if err := r.decodeFrom(el); err != nil {
		return nil, err
	}
	return r, nil
}
