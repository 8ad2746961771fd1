package gateway

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var minorFactor = decimal.NewFromInt(100)

// ToMinorUnits converts a major-unit amount to the integer minor-unit string
// the wire protocol expects. Fractions below one cent are discarded, never
// rounded: ToMinorUnits(10.005) == "1000".
func ToMinorUnits(amount decimal.Decimal) string {
	return amount.Mul(minorFactor).Truncate(0).String()
}

// FromMinorUnits converts a minor-unit wire value back to an exact
// major-unit amount. The round trip is lossless for amounts expressed with
// at most two decimal places.
func FromMinorUnits(wire string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(wire)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid minor-unit amount %q: %w", wire, err)
	}
	return d.Div(minorFactor), nil
}
