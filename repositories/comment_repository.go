package repositories

import (
	"newshub-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByArticle(articleID uint) ([]models.Comment, error)
	AverageRating(articleID uint) (float64, error)
	CountByAuthor(email string) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByArticle(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("article_id = ?", articleID).Order("created_at desc").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) AverageRating(articleID uint) (float64, error) {
	var avg float64
	err := r.db.Model(&models.Comment{}).
		Where("article_id = ?", articleID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *commentRepository) CountByAuthor(email string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Comment{}).Where("author_email = ?", email).Count(&total).Error
	return total, err
}
