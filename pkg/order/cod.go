package order

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
)

// CashOnDelivery collects the parcel amount at delivery and transfers it
// to the given bank account. Wire shape:
//
//	<common:cod>
//	  <common:codAmount>12.50</common:codAmount>
//	  <common:iban>BE19210023508812</common:iban>
//	  <common:bic>GEBABEBB</common:bic>
//	</common:cod>
type CashOnDelivery struct {
	amount float64
	iban   string
	bic    string
}

// NewCashOnDelivery creates a cash-on-delivery option for the given
// amount in euro and destination account.
func NewCashOnDelivery(amount float64, iban, bic string) *CashOnDelivery {
	return &CashOnDelivery{amount: amount, iban: iban, bic: bic}
}

func (c *CashOnDelivery) Amount() float64 { return c.amount }
func (c *CashOnDelivery) IBAN() string    { return c.iban }
func (c *CashOnDelivery) BIC() string     { return c.bic }

func (c *CashOnDelivery) appendOptionTo(options *etree.Element) {
	cod := options.CreateElement(shm.Prefixed("cod", shm.PrefixCommon))
	cod.CreateElement(shm.Prefixed("codAmount", shm.PrefixCommon)).
		SetText(formatAmount(c.amount))
	appendText(cod, "iban", shm.PrefixCommon, c.iban)
	appendText(cod, "bic", shm.PrefixCommon, c.bic)
}

func decodeCashOnDelivery(el *etree.Element) (Option, error) {
	var amount float64
	if v := childText(el, "codAmount"); v != "" {
		if _, err := fmt.Sscanf(v, "%f", &amount); err != nil {
			return nil, fmt.Errorf("parsing codAmount %q: %w", v, err)
		}
	}
	return NewCashOnDelivery(amount, childText(el, "iban"), childText(el, "bic")), nil
}

// formatAmount renders monetary amounts with two decimals, the way the
// service echoes them.
func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
