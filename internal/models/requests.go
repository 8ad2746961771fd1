package models

// APIResponse is the standard response envelope for every API endpoint.
type APIResponse struct {
	Status bool        `json:"status"`
	Msg    string      `json:"msg"`
	Obj    interface{} `json:"obj"`
}

// AddressRequest is the billing address block of card-carrying requests.
type AddressRequest struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	State    string `json:"state"`
	Country  string `json:"country"`
}

// CardRequest is the card block of card-carrying requests.
type CardRequest struct {
	Number         string          `json:"number"`
	ExpiryMonth    int             `json:"expiry_month"`
	ExpiryYear     int             `json:"expiry_year"`
	CVC            string          `json:"cvc"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	BillingAddress *AddressRequest `json:"billing_address"`
}

// ChargeRequest creates a charge, either from a full card (purchase) or
// from a previously issued card/customer token (capture). DryRun skips all
// local persistence while still hitting the remote API.
type ChargeRequest struct {
	Amount      string       `json:"amount"`
	Currency    string       `json:"currency"`
	Email       string       `json:"email"`
	Description string       `json:"description"`
	IPAddress   string       `json:"ip_address"`
	Token       string       `json:"token"`
	Card        *CardRequest `json:"card"`
	DryRun      bool         `json:"dry_run"`
}

// CardTokenRequest tokenizes a card without charging it.
type CardTokenRequest struct {
	Card *CardRequest `json:"card"`
}

// CustomerRequest creates or updates a remote customer holding a card.
type CustomerRequest struct {
	Email  string       `json:"email"`
	Card   *CardRequest `json:"card"`
	DryRun bool         `json:"dry_run"`
}

// RefundRequest refunds a charge.
type RefundRequest struct {
	DryRun bool `json:"dry_run"`
}
