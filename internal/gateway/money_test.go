package gateway

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9.99", "999"},
		{"10", "1000"},
		{"10.005", "1000"}, // truncated, never rounded
		{"10.009", "1000"},
		{"0.01", "1"},
		{"0", "0"},
		{"0.009", "0"},
	}
	for _, c := range cases {
		amount, err := decimal.NewFromString(c.in)
		if err != nil {
			t.Fatalf("parse %s: %v", c.in, err)
		}
		if got := ToMinorUnits(amount); got != c.want {
			t.Fatalf("ToMinorUnits(%s) got %s want %s", c.in, got, c.want)
		}
	}
}

func TestFromMinorUnits(t *testing.T) {
	got, err := FromMinorUnits("999")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !got.Equal(decimal.RequireFromString("9.99")) {
		t.Fatalf("FromMinorUnits(999) got %s want 9.99", got)
	}

	if _, err := FromMinorUnits("not-a-number"); err == nil {
		t.Fatal("expected error for malformed wire amount")
	}
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	// Exact for any amount with at most two decimal places.
	for _, in := range []string{"0", "0.01", "9.99", "10.50", "12345.67", "0.10"} {
		amount := decimal.RequireFromString(in)
		back, err := FromMinorUnits(ToMinorUnits(amount))
		if err != nil {
			t.Fatalf("round trip %s: %v", in, err)
		}
		if !back.Equal(amount) {
			t.Fatalf("round trip %s got %s", in, back)
		}
	}

	// Lossy below one minor unit.
	amount := decimal.RequireFromString("10.005")
	back, err := FromMinorUnits(ToMinorUnits(amount))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !back.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("got %s want 10.00", back)
	}
}
