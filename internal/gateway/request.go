package gateway

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when the caller does not name one.
const DefaultCurrency = "AUD"

// chargeBase assembles the common charge fields. Absent options default to
// empty strings and the default currency; this never fails.
func chargeBase(money decimal.Decimal, opts Options) map[string]interface{} {
	currency := opts.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return map[string]interface{}{
		"amount":      ToMinorUnits(money),
		"email":       opts.Email,
		"description": opts.Description,
		"currency":    currency,
		"ip_address":  opts.IPAddress,
	}
}

// cardPayload assembles the card block of a request. The billing address and
// all its sub-fields except line2 are required.
func cardPayload(card CreditCard, opts Options) (map[string]interface{}, error) {
	addr := opts.BillingAddress
	if addr == nil {
		return nil, &RequiredFieldError{Field: "billing_address"}
	}
	required := []struct {
		field string
		value string
	}{
		{"address_line1", addr.Line1},
		{"address_city", addr.City},
		{"address_postcode", addr.Postcode},
		{"address_state", addr.State},
		{"address_country", addr.Country},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, &RequiredFieldError{Field: r.field}
		}
	}
	return map[string]interface{}{
		"number":           card.Number,
		"expiry_month":     fmt.Sprintf("%02d", card.Month),
		"expiry_year":      strconv.Itoa(card.Year),
		"cvc":              card.VerificationValue,
		"name":             card.FirstName + " " + card.LastName,
		"address_line1":    addr.Line1,
		"address_line2":    addr.Line2,
		"address_city":     addr.City,
		"address_postcode": addr.Postcode,
		"address_state":    addr.State,
		"address_country":  addr.Country,
	}, nil
}
