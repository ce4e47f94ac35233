package services

import (
	"math"

	"newshub-api/models"
	"newshub-api/repositories"

	"github.com/google/uuid"
)

// PublisherShareStat is one publisher's slice of all articles.
type PublisherShareStat struct {
	Publisher  string  `json:"publisher"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// DailyViewBucket is one row of the per-day views report. Buckets are keyed
// by a fresh identifier generated per row, not by the calendar day, so two
// articles from the same day never share a bucket. Clients consume this
// shape as is.
type DailyViewBucket struct {
	ID    string `json:"id"`
	Day   string `json:"day"`
	Views int64  `json:"views"`
}

type PublicStats struct {
	Articles   int64 `json:"articles"`
	Publishers int64 `json:"publishers"`
	Users      int64 `json:"users"`
}

type AdminStats struct {
	TotalArticles   int64                `json:"total_articles"`
	PublisherShares []PublisherShareStat `json:"publisher_shares"`
	TotalViews      int64                `json:"total_views"`
	TotalRevenue    float64              `json:"total_revenue"`
	DailyViews      []DailyViewBucket    `json:"daily_views"`
}

type UserStats struct {
	Articles   int64 `json:"articles"`
	TotalViews int64 `json:"total_views"`
	Comments   int64 `json:"comments"`
}

type StatsService interface {
	GetPublicStats() (*PublicStats, error)
	GetAdminStats() (*AdminStats, error)
	GetUserStats(email string) (*UserStats, error)
}

type statsService struct {
	statsRepo     repositories.StatsRepository
	userRepo      repositories.UserRepository
	publisherRepo repositories.PublisherRepository
	paymentRepo   repositories.PaymentRepository
	articleRepo   repositories.ArticleRepository
	commentRepo   repositories.CommentRepository
}

func NewStatsService(
	statsRepo repositories.StatsRepository,
	userRepo repositories.UserRepository,
	publisherRepo repositories.PublisherRepository,
	paymentRepo repositories.PaymentRepository,
	articleRepo repositories.ArticleRepository,
	commentRepo repositories.CommentRepository,
) StatsService {
	return &statsService{
		statsRepo:     statsRepo,
		userRepo:      userRepo,
		publisherRepo: publisherRepo,
		paymentRepo:   paymentRepo,
		articleRepo:   articleRepo,
		commentRepo:   commentRepo,
	}
}

func (s *statsService) GetPublicStats() (*PublicStats, error) {
	articles, err := s.statsRepo.CountArticles(models.StatusApproved)
	if err != nil {
		return nil, err
	}
	publishers, err := s.publisherRepo.Count()
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	return &PublicStats{Articles: articles, Publishers: publishers, Users: users}, nil
}

func (s *statsService) GetAdminStats() (*AdminStats, error) {
	total, err := s.statsRepo.CountAllArticles()
	if err != nil {
		return nil, err
	}

	rawShares, err := s.statsRepo.PublisherShares()
	if err != nil {
		return nil, err
	}
	shares := make([]PublisherShareStat, 0, len(rawShares))
	for _, share := range rawShares {
		pct := 0.0
		if total > 0 {
			pct = math.Round(float64(share.Count)/float64(total)*10000) / 100
		}
		shares = append(shares, PublisherShareStat{
			Publisher:  share.Publisher,
			Count:      share.Count,
			Percentage: pct,
		})
	}

	views, err := s.statsRepo.TotalViews()
	if err != nil {
		return nil, err
	}

	revenue, err := s.paymentRepo.TotalRevenue()
	if err != nil {
		return nil, err
	}

	rows, err := s.statsRepo.ViewRows()
	if err != nil {
		return nil, err
	}
	daily := make([]DailyViewBucket, 0, len(rows))
	for _, row := range rows {
		daily = append(daily, DailyViewBucket{
			ID:    uuid.NewString(),
			Day:   row.Day,
			Views: row.Views,
		})
	}

	return &AdminStats{
		TotalArticles:   total,
		PublisherShares: shares,
		TotalViews:      views,
		TotalRevenue:    revenue,
		DailyViews:      daily,
	}, nil
}

func (s *statsService) GetUserStats(email string) (*UserStats, error) {
	articles, err := s.articleRepo.CountByAuthor(email)
	if err != nil {
		return nil, err
	}
	views, err := s.statsRepo.TotalViewsByAuthor(email)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.CountByAuthor(email)
	if err != nil {
		return nil, err
	}
	return &UserStats{Articles: articles, TotalViews: views, Comments: comments}, nil
}
