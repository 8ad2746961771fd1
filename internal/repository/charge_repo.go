package repository

import (
	"gorm.io/gorm"

	"pinpay/internal/models"
)

// ChargeRepository handles charge database operations.
type ChargeRepository struct {
	db *gorm.DB
}

func NewChargeRepository(db *gorm.DB) *ChargeRepository {
	return &ChargeRepository{db: db}
}

// Create persists a new charge.
func (r *ChargeRepository) Create(charge *models.PinCharge) error {
	return r.db.Create(charge).Error
}

// FindByToken returns a charge by its remote charge token.
func (r *ChargeRepository) FindByToken(token string) (*models.PinCharge, error) {
	var charge models.PinCharge
	if err := r.db.Preload("Card").Where("token = ?", token).First(&charge).Error; err != nil {
		return nil, err
	}
	return &charge, nil
}

// FindAll returns charges with pagination.
func (r *ChargeRepository) FindAll(limit, page int) ([]models.PinCharge, int64, error) {
	var charges []models.PinCharge
	var total int64

	db := r.db.Model(&models.PinCharge{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	if err := db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&charges).Error; err != nil {
		return nil, 0, err
	}
	return charges, total, nil
}
