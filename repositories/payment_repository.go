package repositories

import (
	"newshub-api/models"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetBySession(sessionID string) (*models.Payment, error)
	TotalRevenue() (float64, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *paymentRepository) GetBySession(sessionID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Where("session_id = ?", sessionID).First(&payment).Error
	return &payment, err
}

func (r *paymentRepository) TotalRevenue() (float64, error) {
	var total float64
	err := r.db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
