package gateway

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pinpay/internal/models"
)

// buildStoredCard projects the outbound card payload onto a PinCard and
// reattaches the cardholder name from the submitted card. The Pin API strips
// the name field from its replies, so it has to be carried forward here
// rather than read back.
func buildStoredCard(payload map[string]interface{}, card CreditCard) *models.PinCard {
	return &models.PinCard{
		Number:          stringField(payload, "number"),
		ExpiryMonth:     stringField(payload, "expiry_month"),
		ExpiryYear:      stringField(payload, "expiry_year"),
		CVC:             stringField(payload, "cvc"),
		FirstName:       card.FirstName,
		LastName:        card.LastName,
		AddressLine1:    stringField(payload, "address_line1"),
		AddressLine2:    stringField(payload, "address_line2"),
		AddressCity:     stringField(payload, "address_city"),
		AddressPostcode: stringField(payload, "address_postcode"),
		AddressState:    stringField(payload, "address_state"),
		AddressCountry:  stringField(payload, "address_country"),
	}
}

// buildCharge copies the charge envelope onto a PinCharge, skipping the
// nested card object. Amount comes back in minor units and is stored in
// major units; a missing error_message becomes an empty string.
func buildCharge(envelope map[string]interface{}) (*models.PinCharge, error) {
	amount, err := minorAmount(envelope["amount"])
	if err != nil {
		return nil, fmt.Errorf("charge %s: %w", stringField(envelope, "token"), err)
	}
	return &models.PinCharge{
		Token:         stringField(envelope, "token"),
		Success:       boolField(envelope, "success"),
		Amount:        amount,
		Currency:      stringField(envelope, "currency"),
		Description:   stringField(envelope, "description"),
		Email:         stringField(envelope, "email"),
		IPAddress:     stringField(envelope, "ip_address"),
		CreatedAt:     stringField(envelope, "created_at"),
		StatusMessage: stringField(envelope, "status_message"),
		ErrorMessage:  stringField(envelope, "error_message"),
		Captured:      boolField(envelope, "captured"),
	}, nil
}

// buildRefund copies the refund envelope onto a PinRefund.
func buildRefund(envelope map[string]interface{}, chargeToken string) (*models.PinRefund, error) {
	amount, err := minorAmount(envelope["amount"])
	if err != nil {
		return nil, fmt.Errorf("refund %s: %w", stringField(envelope, "token"), err)
	}
	refund := &models.PinRefund{
		Token:         stringField(envelope, "token"),
		ChargeToken:   stringField(envelope, "charge"),
		Success:       boolField(envelope, "success"),
		Amount:        amount,
		Currency:      stringField(envelope, "currency"),
		CreatedAt:     stringField(envelope, "created_at"),
		StatusMessage: stringField(envelope, "status_message"),
		ErrorMessage:  stringField(envelope, "error_message"),
	}
	if refund.ChargeToken == "" {
		refund.ChargeToken = chargeToken
	}
	return refund, nil
}

// reconcileCustomer upserts the customer for a classified store success. An
// update token that matches nothing is treated as a fresh create; the lookup
// never fails the operation. The customer always ends up referencing the
// newly stored card.
func (g *PinGateway) reconcileCustomer(envelope map[string]interface{}, card *models.PinCard, updateToken string) *models.PinCustomer {
	var customer *models.PinCustomer
	if updateToken != "" {
		found, err := g.store.FindCustomerByToken(updateToken)
		if err != nil {
			g.logger.Warn("customer lookup failed, treating as fresh create",
				zap.String("token", updateToken), zap.Error(err))
		} else {
			customer = found
		}
	}
	if customer == nil {
		customer = &models.PinCustomer{}
	}

	customer.CardID = card.ID
	customer.Card = card
	if token := stringField(envelope, "token"); token != "" {
		customer.Token = token
	}
	if email := stringField(envelope, "email"); email != "" {
		customer.Email = email
	}
	if created := stringField(envelope, "created_at"); created != "" {
		customer.CreatedAt = created
	}
	return customer
}

// minorAmount parses the wire amount, which may arrive as a JSON number or
// a string, into a major-unit decimal.
func minorAmount(v interface{}) (decimal.Decimal, error) {
	switch amount := v.(type) {
	case string:
		return FromMinorUnits(amount)
	case float64:
		return decimal.NewFromFloat(amount).Div(minorFactor), nil
	case nil:
		return decimal.Decimal{}, fmt.Errorf("reply carries no amount")
	default:
		return decimal.Decimal{}, fmt.Errorf("reply amount has unexpected type %T", v)
	}
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func boolField(m map[string]interface{}, key string) bool {
	b, _ := m[key].(bool)
	return b
}
