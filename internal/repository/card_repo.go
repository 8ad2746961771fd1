package repository

import (
	"gorm.io/gorm"

	"pinpay/internal/models"
)

// CardRepository handles stored card database operations.
type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create persists a new stored card.
func (r *CardRepository) Create(card *models.PinCard) error {
	return r.db.Create(card).Error
}

// FindByID returns a stored card by its local id.
func (r *CardRepository) FindByID(id uint) (*models.PinCard, error) {
	var card models.PinCard
	if err := r.db.First(&card, id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// FindByToken returns a stored card by its remote card token.
func (r *CardRepository) FindByToken(token string) (*models.PinCard, error) {
	var card models.PinCard
	if err := r.db.Where("token = ?", token).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}
