package repositories

import (
	"newshub-api/models"

	"gorm.io/gorm"
)

type PlanRepository interface {
	GetAll() ([]models.Plan, error)
	GetByID(id uint) (*models.Plan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) GetAll() ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Order("price asc").Find(&plans).Error
	return plans, err
}

func (r *planRepository) GetByID(id uint) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.First(&plan, id).Error
	return &plan, err
}
