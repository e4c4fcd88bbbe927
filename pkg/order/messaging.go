package order

import (
	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
	"github.com/beebop1032/bpost-api-library/pkg/validate"
)

// Messaging types; the type doubles as the option's wire tag name.
const (
	MessagingInfoDistributed = "infoDistributed"
	MessagingInfoNextDay     = "infoNextDay"
	MessagingInfoReminder    = "infoReminder"
	MessagingKeepMeInformed  = "keepMeInformed"
)

// Messaging languages.
const (
	LanguageEN = "EN"
	LanguageNL = "NL"
	LanguageFR = "FR"
	LanguageDE = "DE"
)

func messagingTypes() []string {
	return []string{
		MessagingInfoDistributed,
		MessagingInfoNextDay,
		MessagingInfoReminder,
		MessagingKeepMeInformed,
	}
}

func messagingLanguages() []string {
	return []string{LanguageEN, LanguageNL, LanguageFR, LanguageDE}
}

// Messaging is a notification option. The service expects exactly one of
// emailAddress or mobilePhone to be set, but does not cross-validate
// locally.
type Messaging struct {
	msgType      string
	language     string
	emailAddress string
	mobilePhone  string
}

// NewMessaging creates a messaging option of the given type. An empty
// language defaults to EN; otherwise it is uppercased and checked.
func NewMessaging(msgType, language string) (*Messaging, error) {
	m := &Messaging{}
	if err := m.setType(msgType); err != nil {
		return nil, err
	}
	if err := m.SetLanguage(language); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Messaging) setType(v string) error {
	if err := validate.OneOf("type", v, messagingTypes()); err != nil {
		return err
	}
	m.msgType = v
	return nil
}

func (m *Messaging) Type() string { return m.msgType }

func (m *Messaging) SetLanguage(v string) error {
	if v == "" {
		v = LanguageEN
	}
	normalized, err := validate.UpperOneOf("language", v, messagingLanguages())
	if err != nil {
		return err
	}
	m.language = normalized
	return nil
}

func (m *Messaging) Language() string { return m.language }

func (m *Messaging) SetEmailAddress(v string) error {
	if err := validate.Length("emailAddress", v, maxEmailAddress); err != nil {
		return err
	}
	m.emailAddress = v
	return nil
}

func (m *Messaging) EmailAddress() string { return m.emailAddress }

func (m *Messaging) SetMobilePhone(v string) error {
	if err := validate.Length("mobilePhone", v, maxPhoneNumber); err != nil {
		return err
	}
	m.mobilePhone = v
	return nil
}

func (m *Messaging) MobilePhone() string { return m.mobilePhone }

func (m *Messaging) appendOptionTo(options *etree.Element) {
	el := options.CreateElement(shm.Prefixed(m.msgType, shm.PrefixCommon))
	el.CreateAttr("language", m.language)
	appendText(el, "emailAddress", shm.PrefixCommon, m.emailAddress)
	appendText(el, "mobilePhone", shm.PrefixCommon, m.mobilePhone)
}

func decodeMessaging(el *etree.Element) (Option, error) {
	language := ""
	if attr := el.SelectAttr("language"); attr != nil {
		language = attr.Value
	}
	m, err := NewMessaging(el.Tag, language)
	if err != nil {
		return nil, err
	}
	if v := childText(el, "emailAddress"); v != "" {
		if err := m.SetEmailAddress(v); err != nil {
			return nil, err
		}
	}
	if v := childText(el, "mobilePhone"); v != "" {
		if err := m.SetMobilePhone(v); err != nil {
			return nil, err
		}
	}
	return m, nil
}
