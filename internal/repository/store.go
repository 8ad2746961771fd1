package repository

import (
	"errors"

	"gorm.io/gorm"

	"pinpay/internal/models"
)

// Store bundles the billing repositories behind the persistence interface
// the gateway consumes.
type Store struct {
	Cards     *CardRepository
	Charges   *ChargeRepository
	Customers *CustomerRepository
	Refunds   *RefundRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		Cards:     NewCardRepository(db),
		Charges:   NewChargeRepository(db),
		Customers: NewCustomerRepository(db),
		Refunds:   NewRefundRepository(db),
	}
}

func (s *Store) CreateCard(card *models.PinCard) error {
	return s.Cards.Create(card)
}

func (s *Store) CreateCharge(charge *models.PinCharge) error {
	return s.Charges.Create(charge)
}

func (s *Store) CreateRefund(refund *models.PinRefund) error {
	return s.Refunds.Create(refund)
}

// FindCustomerByToken returns (nil, nil) when no customer matches, per the
// gateway's lookup contract.
func (s *Store) FindCustomerByToken(token string) (*models.PinCustomer, error) {
	customer, err := s.Customers.FindByToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *Store) SaveCustomer(customer *models.PinCustomer) error {
	return s.Customers.Save(customer)
}
