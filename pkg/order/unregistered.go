package order

import (
	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/validate"
)

// Unregistered describes a parcel-locker receiver without a bpost
// account: notification language plus contact channels. It is only
// meaningful on an [At247] shipment.
type Unregistered struct {
	language     string
	mobilePhone  string
	emailAddress string
}

// SetLanguage sets the notification language, uppercased and checked
// against the messaging languages.
func (u *Unregistered) SetLanguage(v string) error {
	normalized, err := validate.UpperOneOf("language", v, messagingLanguages())
	if err != nil {
		return err
	}
	u.language = normalized
	return nil
}

func (u *Unregistered) Language() string { return u.language }

func (u *Unregistered) SetMobilePhone(v string) error {
	if err := validate.Length("mobilePhone", v, maxPhoneNumber); err != nil {
		return err
	}
	u.mobilePhone = v
	return nil
}

func (u *Unregistered) MobilePhone() string { return u.mobilePhone }

func (u *Unregistered) SetEmailAddress(v string) error {
	if err := validate.Length("emailAddress", v, maxEmailAddress); err != nil {
		return err
	}
	u.emailAddress = v
	return nil
}

func (u *Unregistered) EmailAddress() string { return u.emailAddress }

func (u *Unregistered) appendTo(parent *etree.Element) {
	el := parent.CreateElement("unregistered")
	appendText(el, "language", "", u.language)
	appendText(el, "mobilePhone", "", u.mobilePhone)
	appendText(el, "emailAddress", "", u.emailAddress)
}

func decodeUnregistered(el *etree.Element) (*Unregistered, error) {
	u := &Unregistered{}
	if v := childText(el, "language"); v != "" {
		if err := u.SetLanguage(v); err != nil {
			return nil, err
		}
	}
	if v := childText(el, "mobilePhone"); v != "" {
		if err := u.SetMobilePhone(v); err != nil {
			return nil, err
		}
	}
	if v := childText(el, "emailAddress"); v != "" {
		if err := u.SetEmailAddress(v); err != nil {
			return nil, err
		}
	}
	return u, nil
}
