package bpost

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/beevik/etree"
	"github.com/samber/lo"
)

// DefaultLocatorURL is the pick-up point search endpoint. It lives on a
// separate host from the shipping manager API.
const DefaultLocatorURL = "http://pudo.bpost.be/Locator"

// Poi is one point of interest returned by the locator: a pick-up
// point's identity and street address.
type Poi struct {
	ID     string
	Name   string
	Street string
	Number string
	Zip    string
	City   string
}

// LookupPugo searches pick-up points around a postal code and returns
// the one matching the given street and number exactly. When nothing
// matches it falls back to the first result and logs a warning, since
// that point may be nowhere near the requested address.
func (c *Client) LookupPugo(ctx context.Context, language, country, street, number, postalCode string) (*Poi, error) {
	if len(country) > 2 {
		country = country[:2]
	}

	query := url.Values{}
	query.Set("Function", "search")
	query.Set("Partner", c.accountID)
	query.Set("Language", language)
	query.Set("Zone", postalCode)
	query.Set("Country", country)
	query.Set("Type", "2")

	resp, err := c.caller.Call(ctx, http.MethodGet, c.locatorURL+"?"+query.Encode(),
		map[string]string{"Authorization": c.authorization()}, nil)
	if err != nil {
		return nil, err
	}

	pois, err := decodePoiList(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(pois) == 0 {
		return nil, errors.New("bpost: locator returned no points of interest")
	}

	match, found := lo.Find(pois, func(p *Poi) bool {
		return p.Street == street && p.Number == number
	})
	if !found {
		if c.logger != nil {
			c.logger.Printf("no pick-up point at %s %s, falling back to first result %q (%s %s)",
				street, number, pois[0].Name, pois[0].Street, pois[0].Number)
		}
		return pois[0], nil
	}
	return match, nil
}

func decodePoiList(raw []byte) ([]*Poi, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, &InvalidXMLResponseError{Err: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("bpost: empty locator response")
	}

	var pois []*Poi
	list := root.SelectElement("PoiList")
	if list == nil {
		return nil, nil
	}
	for _, poiEl := range list.SelectElements("Poi") {
		record := poiEl.SelectElement("Record")
		if record == nil {
			continue
		}
		pois = append(pois, &Poi{
			ID:     elementText(record, "Id"),
			Name:   elementText(record, "Name"),
			Street: elementText(record, "Street"),
			Number: elementText(record, "Number"),
			Zip:    elementText(record, "Zip"),
			City:   elementText(record, "City"),
		})
	}
	return pois, nil
}

func elementText(parent *etree.Element, tag string) string {
	if el := parent.SelectElement(tag); el != nil {
		return el.Text()
	}
	return ""
}
