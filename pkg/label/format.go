package label

import "github.com/beebop1032/bpost-api-library/pkg/validate"

// Paper sizes the label service prints.
const (
	FormatA4 = "A4"
	FormatA6 = "A6"
)

// Format is a validated label paper size.
type Format struct {
	value string
}

// NewFormat validates and uppercase-normalizes a paper size.
func NewFormat(v string) (Format, error) {
	normalized, err := validate.UpperOneOf("format", v, []string{FormatA4, FormatA6})
	if err != nil {
		return Format{}, err
	}
	return Format{value: normalized}, nil
}

func (f Format) String() string { return f.value }
