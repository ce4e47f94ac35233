package repositories

import (
	"time"

	"newshub-api/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetList(page, limit int) ([]models.User, int64, error)
	UpdateRole(id uint, role models.UserRole) error
	ClearSubscription(email string) error
	ExtendSubscription(email string, end time.Time) error
	UpdateProfile(email, name, photo string) error
	Count() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetList(page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.Model(&models.User{})
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

func (r *userRepository) UpdateRole(id uint, role models.UserRole) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("role", role).Error
}

func (r *userRepository) ClearSubscription(email string) error {
	return r.db.Model(&models.User{}).Where("email = ?", email).
		Updates(map[string]interface{}{
			"has_subscription": false,
			"subscription_end": nil,
		}).Error
}

func (r *userRepository) ExtendSubscription(email string, end time.Time) error {
	return r.db.Model(&models.User{}).Where("email = ?", email).
		Updates(map[string]interface{}{
			"has_subscription": true,
			"subscription_end": end,
		}).Error
}

// UpdateProfile changes the user's display identity and mirrors it onto every
// article and comment they authored. All three updates commit together or
// not at all.
func (r *userRepository) UpdateProfile(email, name, photo string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).Where("email = ?", email).
			Updates(map[string]interface{}{"name": name, "photo": photo})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}

		if err := tx.Model(&models.Article{}).Where("author_email = ?", email).
			Updates(map[string]interface{}{"author_name": name, "author_photo": photo}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Comment{}).Where("author_email = ?", email).
			Updates(map[string]interface{}{"author_name": name, "author_photo": photo}).Error
	})
}

func (r *userRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.User{}).Count(&total).Error
	return total, err
}
