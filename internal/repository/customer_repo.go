package repository

import (
	"gorm.io/gorm"

	"pinpay/internal/models"
)

// CustomerRepository handles customer database operations.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// FindByToken returns a customer by its remote customer token.
func (r *CustomerRepository) FindByToken(token string) (*models.PinCustomer, error) {
	var customer models.PinCustomer
	if err := r.db.Preload("Card").Where("token = ?", token).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// Save creates the customer or updates it in place when the token already
// exists.
func (r *CustomerRepository) Save(customer *models.PinCustomer) error {
	return r.db.Save(customer).Error
}
