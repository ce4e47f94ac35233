package repositories

import (
	"strings"

	"newshub-api/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetList(params models.ArticleListParams, premiumOnly bool) ([]models.Article, int64, error)
	GetTrending(limit int) ([]models.Article, error)
	GetByAuthor(email string, approvedOnly bool) ([]models.Article, error)
	Update(article *models.Article) error
	ReplaceTags(article *models.Article, tags []models.Tag) error
	Delete(id uint) error
	CountByAuthor(email string) (int64, error)
	IncrementViews(id uint) error
	SetAverageRating(id uint, avg float64) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Publisher").Preload("Tags").First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetList(params models.ArticleListParams, premiumOnly bool) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Preload("Publisher").Preload("Tags")

	if params.Status != "" {
		query = query.Where("articles.status = ?", params.Status)
	}

	if premiumOnly {
		query = query.Where("articles.is_premium = ?", true)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("articles.title ILIKE ? OR articles.content ILIKE ?", pattern, pattern)
	}

	if params.Publisher > 0 {
		query = query.Where("articles.publisher_id = ?", params.Publisher)
	}

	if params.Tags != "" {
		names := strings.Split(params.Tags, ",")
		query = query.
			Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.name IN ?", names).
			Distinct("articles.*")
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("articles.created_at desc").Offset(offset).Limit(params.Limit).Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) GetTrending(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Publisher").Preload("Tags").
		Where("status = ?", models.StatusApproved).
		Order("view_count desc").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetByAuthor(email string, approvedOnly bool) ([]models.Article, error) {
	var articles []models.Article
	query := r.db.Preload("Publisher").Preload("Tags").Where("author_email = ?", email)
	if approvedOnly {
		query = query.Where("status = ?", models.StatusApproved)
	}
	err := query.Order("created_at desc").Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) ReplaceTags(article *models.Article, tags []models.Tag) error {
	return r.db.Model(article).Association("Tags").Replace(tags)
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

func (r *articleRepository) CountByAuthor(email string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).Where("author_email = ?", email).Count(&total).Error
	return total, err
}

func (r *articleRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Article{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *articleRepository) SetAverageRating(id uint, avg float64) error {
	return r.db.Model(&models.Article{}).Where("id = ?", id).
		UpdateColumn("average_rating", avg).Error
}
