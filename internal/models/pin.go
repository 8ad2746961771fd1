package models

import (
	"github.com/shopspring/decimal"
)

// PinCard maps to the `pin_cards` table. It is the persisted projection of
// the card fields the Pin API accepts. The API never echoes the cardholder
// name back, so first/last name are carried forward from the submitted card.
type PinCard struct {
	ID              uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Token           string `gorm:"column:token;size:40" json:"token"`
	Number          string `gorm:"column:number;size:32" json:"number"`
	ExpiryMonth     string `gorm:"column:expiry_month;size:2" json:"expiry_month"`
	ExpiryYear      string `gorm:"column:expiry_year;size:4" json:"expiry_year"`
	CVC             string `gorm:"column:cvc;size:8" json:"cvc"`
	FirstName       string `gorm:"column:first_name;size:200" json:"first_name"`
	LastName        string `gorm:"column:last_name;size:200" json:"last_name"`
	AddressLine1    string `gorm:"column:address_line1;size:500" json:"address_line1"`
	AddressLine2    string `gorm:"column:address_line2;size:500" json:"address_line2"`
	AddressCity     string `gorm:"column:address_city;size:200" json:"address_city"`
	AddressPostcode string `gorm:"column:address_postcode;size:32" json:"address_postcode"`
	AddressState    string `gorm:"column:address_state;size:200" json:"address_state"`
	AddressCountry  string `gorm:"column:address_country;size:200" json:"address_country"`
}

func (PinCard) TableName() string {
	return "pin_cards"
}

// PinCharge maps to the `pin_charges` table, keyed by the remote charge
// token. Amount is stored in major units. CardID is nil for charges created
// from a token (capture), set for charges created from a full card (purchase).
type PinCharge struct {
	Token         string          `gorm:"column:token;primaryKey;size:40" json:"token"`
	CardID        *uint           `gorm:"column:card_id" json:"card_id"`
	Card          *PinCard        `gorm:"foreignKey:CardID" json:"card,omitempty"`
	Success       bool            `gorm:"column:success" json:"success"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(12,2)" json:"amount"`
	Currency      string          `gorm:"column:currency;size:3" json:"currency"`
	Description   string          `gorm:"column:description;size:500" json:"description"`
	Email         string          `gorm:"column:email;size:300" json:"email"`
	IPAddress     string          `gorm:"column:ip_address;size:64" json:"ip_address"`
	CreatedAt     string          `gorm:"column:created_at;size:40" json:"created_at"`
	StatusMessage string          `gorm:"column:status_message;size:300" json:"status_message"`
	ErrorMessage  string          `gorm:"column:error_message;size:500" json:"error_message"`
	Captured      bool            `gorm:"column:captured" json:"captured"`
}

func (PinCharge) TableName() string {
	return "pin_charges"
}

// PinCustomer maps to the `pin_customers` table, keyed by the remote
// customer token. It always references the most recently stored card.
type PinCustomer struct {
	Token     string   `gorm:"column:token;primaryKey;size:40" json:"token"`
	CardID    uint     `gorm:"column:card_id" json:"card_id"`
	Card      *PinCard `gorm:"foreignKey:CardID" json:"card,omitempty"`
	Email     string   `gorm:"column:email;size:300" json:"email"`
	CreatedAt string   `gorm:"column:created_at;size:40" json:"created_at"`
}

func (PinCustomer) TableName() string {
	return "pin_customers"
}

// PinRefund maps to the `pin_refunds` table, keyed by the remote refund token.
type PinRefund struct {
	Token         string          `gorm:"column:token;primaryKey;size:40" json:"token"`
	ChargeToken   string          `gorm:"column:charge_token;size:40" json:"charge_token"`
	Success       bool            `gorm:"column:success" json:"success"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(12,2)" json:"amount"`
	Currency      string          `gorm:"column:currency;size:3" json:"currency"`
	CreatedAt     string          `gorm:"column:created_at;size:40" json:"created_at"`
	StatusMessage string          `gorm:"column:status_message;size:300" json:"status_message"`
	ErrorMessage  string          `gorm:"column:error_message;size:500" json:"error_message"`
}

func (PinRefund) TableName() string {
	return "pin_refunds"
}
