package repository

import (
	"gorm.io/gorm"

	"pinpay/internal/models"
)

// RefundRepository handles refund database operations.
type RefundRepository struct {
	db *gorm.DB
}

func NewRefundRepository(db *gorm.DB) *RefundRepository {
	return &RefundRepository{db: db}
}

// Create persists a new refund.
func (r *RefundRepository) Create(refund *models.PinRefund) error {
	return r.db.Create(refund).Error
}

// FindByChargeToken returns all refunds recorded against a charge.
func (r *RefundRepository) FindByChargeToken(chargeToken string) ([]models.PinRefund, error) {
	var refunds []models.PinRefund
	err := r.db.Where("charge_token = ?", chargeToken).Order("created_at DESC").Find(&refunds).Error
	return refunds, err
}
