package repositories

import (
	"newshub-api/models"

	"gorm.io/gorm"
)

// PublisherShare is one slice of the per-publisher article distribution.
type PublisherShare struct {
	Publisher string `json:"publisher"`
	Count     int64  `json:"count"`
}

// ViewRow is one article's view counter, used to build the daily views
// report.
type ViewRow struct {
	ArticleID uint   `json:"article_id"`
	Views     int64  `json:"views"`
	Day       string `json:"day"`
}

type StatsRepository interface {
	CountArticles(status models.ArticleStatus) (int64, error)
	CountAllArticles() (int64, error)
	PublisherShares() ([]PublisherShare, error)
	TotalViews() (int64, error)
	TotalViewsByAuthor(email string) (int64, error)
	ViewRows() ([]ViewRow, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountArticles(status models.ArticleStatus) (int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).Where("status = ?", status).Count(&total).Error
	return total, err
}

func (r *statsRepository) CountAllArticles() (int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).Count(&total).Error
	return total, err
}

func (r *statsRepository) PublisherShares() ([]PublisherShare, error) {
	var shares []PublisherShare
	err := r.db.Model(&models.Article{}).
		Select("publishers.name as publisher, COUNT(*) as count").
		Joins("JOIN publishers ON publishers.id = articles.publisher_id").
		Group("publishers.name").
		Scan(&shares).Error
	return shares, err
}

func (r *statsRepository) TotalViews() (int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&total).Error
	return total, err
}

func (r *statsRepository) TotalViewsByAuthor(email string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).
		Where("author_email = ?", email).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&total).Error
	return total, err
}

func (r *statsRepository) ViewRows() ([]ViewRow, error) {
	var rows []ViewRow
	err := r.db.Model(&models.Article{}).
		Select("articles.id as article_id, articles.view_count as views, to_char(articles.created_at, 'YYYY-MM-DD') as day").
		Scan(&rows).Error
	return rows, err
}
