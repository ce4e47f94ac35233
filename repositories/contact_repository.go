package repositories

import (
	"newshub-api/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(message *models.ContactMessage) error
	GetList(params models.ListParams) ([]models.ContactMessage, int64, error)
	UpdateStatus(id uint, status models.MessageStatus) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

func (r *contactRepository) GetList(params models.ListParams) ([]models.ContactMessage, int64, error) {
	var messages []models.ContactMessage
	var total int64

	query := r.db.Model(&models.ContactMessage{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").Offset(offset).Limit(params.Limit).Find(&messages).Error
	return messages, total, err
}

func (r *contactRepository) UpdateStatus(id uint, status models.MessageStatus) error {
	res := r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
