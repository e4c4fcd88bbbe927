package order

import (
	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/validate"
)

// Weekday tags accepted in an <openingHours> block.
const (
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
	Saturday  = "Saturday"
	Sunday    = "Sunday"
)

func weekdays() []string {
	return []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// OpeningHour is one day's opening window of a pick-up shop. The day
// name is the element tag, the window text its value, for example
// <Monday>10:00-17:00</Monday>.
type OpeningHour struct {
	day   string
	hours string
}

func NewOpeningHour(day, hours string) (OpeningHour, error) {
	if err := validate.OneOf("day", day, weekdays()); err != nil {
		return OpeningHour{}, err
	}
	return OpeningHour{day: day, hours: hours}, nil
}

func (o OpeningHour) Day() string   { return o.day }
func (o OpeningHour) Hours() string { return o.hours }

func (o OpeningHour) appendTo(parent *etree.Element) {
	parent.CreateElement(o.day).SetText(o.hours)
}
