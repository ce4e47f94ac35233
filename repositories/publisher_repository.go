package repositories

import (
	"newshub-api/models"

	"gorm.io/gorm"
)

type PublisherRepository interface {
	Create(publisher *models.Publisher) error
	GetAll() ([]models.Publisher, error)
	Count() (int64, error)
}

type publisherRepository struct {
	db *gorm.DB
}

func NewPublisherRepository(db *gorm.DB) PublisherRepository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) Create(publisher *models.Publisher) error {
	return r.db.Create(publisher).Error
}

func (r *publisherRepository) GetAll() ([]models.Publisher, error) {
	var publishers []models.Publisher
	err := r.db.Order("created_at asc").Find(&publishers).Error
	return publishers, err
}

func (r *publisherRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Publisher{}).Count(&total).Error
	return total, err
}
