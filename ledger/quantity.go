// Package ledger holds the fixed-point quantity arithmetic used for fuel
// quantities. Values are kept at three fractional digits; anything finer is
// truncated when parsed.
package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits a Quantity keeps.
const Scale int32 = 3

// Quantity is an exact decimal value fixed at Scale fractional digits.
// The zero value is a valid zero quantity.
type Quantity struct {
	d decimal.Decimal
}

// Zero is the additive identity.
var Zero = Quantity{}

// ParseQuantity reads a decimal string. Empty, blank and unparseable input
// all read as zero; digits beyond Scale are truncated, not rounded.
func ParseQuantity(s string) Quantity {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero
	}
	return Quantity{d: d.Truncate(Scale)}
}

func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{d: q.d.Add(other.d)}
}

func (q Quantity) Sub(other Quantity) Quantity {
	return Quantity{d: q.d.Sub(other.d)}
}

func (q Quantity) Cmp(other Quantity) int {
	return q.d.Cmp(other.d)
}

// Decimal exposes the underlying value, e.g. for spreadsheet cells.
func (q Quantity) Decimal() decimal.Decimal {
	return q.d
}

// String renders the canonical form: trailing fractional zeros trimmed and
// "0" for zero.
func (q Quantity) String() string {
	if q.d.IsZero() {
		return "0"
	}
	return q.d.String()
}

// MarshalJSON renders the quantity as a JSON string so it never round-trips
// through a float on the client.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + q.String() + `"`), nil
}

// Add returns a+b over decimal strings.
func Add(a, b string) string {
	return ParseQuantity(a).Add(ParseQuantity(b)).String()
}

// Subtract returns a-b over decimal strings.
func Subtract(a, b string) string {
	return ParseQuantity(a).Sub(ParseQuantity(b)).String()
}

// Canonical rewrites s into the form Add and Subtract produce.
func Canonical(s string) string {
	return ParseQuantity(s).String()
}
