package gateway

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestChargeBaseDefaults(t *testing.T) {
	base := chargeBase(decimal.RequireFromString("9.99"), Options{})

	require.Equal(t, "999", base["amount"])
	require.Equal(t, "", base["email"])
	require.Equal(t, "", base["description"])
	require.Equal(t, "AUD", base["currency"])
	require.Equal(t, "", base["ip_address"])
}

func TestChargeBaseOptions(t *testing.T) {
	base := chargeBase(decimal.RequireFromString("20"), Options{
		Email:       "roland@pin.net.au",
		Description: "test charge",
		Currency:    "USD",
		IPAddress:   "203.192.1.172",
	})

	require.Equal(t, "2000", base["amount"])
	require.Equal(t, "USD", base["currency"])
	require.Equal(t, "roland@pin.net.au", base["email"])
}

func TestCardPayload(t *testing.T) {
	card := CreditCard{
		Number:            "5520000000000000",
		Month:             5,
		Year:              2026,
		VerificationValue: "123",
		FirstName:         "Roland",
		LastName:          "Robot",
	}
	opts := Options{BillingAddress: &Address{
		Line1:    "42 Sevenoaks St",
		City:     "Lathlain",
		Postcode: "6454",
		State:    "WA",
		Country:  "Australia",
	}}

	payload, err := cardPayload(card, opts)
	require.NoError(t, err)
	require.Equal(t, "5520000000000000", payload["number"])
	require.Equal(t, "05", payload["expiry_month"])
	require.Equal(t, "2026", payload["expiry_year"])
	require.Equal(t, "123", payload["cvc"])
	require.Equal(t, "Roland Robot", payload["name"])
	require.Equal(t, "42 Sevenoaks St", payload["address_line1"])
	require.Equal(t, "", payload["address_line2"])
	require.Equal(t, "Australia", payload["address_country"])
}

func TestCardPayloadMissingAddress(t *testing.T) {
	_, err := cardPayload(CreditCard{}, Options{})

	var missing *RequiredFieldError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, "billing_address", missing.Field)
}

func TestCardPayloadMissingSubFields(t *testing.T) {
	full := Address{
		Line1:    "42 Sevenoaks St",
		City:     "Lathlain",
		Postcode: "6454",
		State:    "WA",
		Country:  "Australia",
	}
	cases := []struct {
		field string
		strip func(*Address)
	}{
		{"address_line1", func(a *Address) { a.Line1 = "" }},
		{"address_city", func(a *Address) { a.City = "" }},
		{"address_postcode", func(a *Address) { a.Postcode = "" }},
		{"address_state", func(a *Address) { a.State = "" }},
		{"address_country", func(a *Address) { a.Country = "" }},
	}
	for _, c := range cases {
		addr := full
		c.strip(&addr)
		_, err := cardPayload(CreditCard{}, Options{BillingAddress: &addr})

		var missing *RequiredFieldError
		require.True(t, errors.As(err, &missing), c.field)
		require.Equal(t, c.field, missing.Field)
	}
}
