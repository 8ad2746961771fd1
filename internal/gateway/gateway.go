package gateway

import (
	"context"

	"pinpay/internal/models"
)

// Status classifies the outcome of a gateway operation.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailure Status = "FAILURE"
)

// CreditCard is a card as submitted by the caller. FirstName and LastName
// are kept separate; the wire protocol only sees the concatenated name.
type CreditCard struct {
	Number            string
	Month             int
	Year              int
	VerificationValue string
	FirstName         string
	LastName          string
}

// Address is a billing address. Line2 is optional, everything else is
// required when building a card payload.
type Address struct {
	Line1    string
	Line2    string
	City     string
	Postcode string
	State    string
	Country  string
}

// Options carries the per-call metadata the Pin API accepts alongside the
// card and amount. Token is the existing customer token for Store updates.
type Options struct {
	Email          string
	Description    string
	Currency       string
	IPAddress      string
	BillingAddress *Address
	Token          string
}

// Result is the uniform outcome of every operation. Entity is the persisted
// record when the operation commits one, nil otherwise.
type Result struct {
	Status   Status
	Response map[string]interface{}
	Entity   interface{}
}

// Transport performs one round trip against the Pin API: it sends the JSON
// body with the resolved credentials and returns the decoded JSON reply.
// Network and decode faults come back as errors and are never classified.
type Transport interface {
	Request(ctx context.Context, method, path string, body interface{}) (map[string]interface{}, error)
}

// Store persists billing entities after classified successes.
// FindCustomerByToken returns (nil, nil) when no customer matches.
type Store interface {
	CreateCard(card *models.PinCard) error
	CreateCharge(charge *models.PinCharge) error
	CreateRefund(refund *models.PinRefund) error
	FindCustomerByToken(token string) (*models.PinCustomer, error)
	SaveCustomer(customer *models.PinCustomer) error
}
