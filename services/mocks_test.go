package services

import (
	"context"
	"time"

	"newshub-api/checkout"
	"newshub-api/models"
	"newshub-api/repositories"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetList(page, limit int) ([]models.User, int64, error) {
	args := m.Called(page, limit)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepo) UpdateRole(id uint, role models.UserRole) error {
	return m.Called(id, role).Error(0)
}

func (m *mockUserRepo) ClearSubscription(email string) error {
	return m.Called(email).Error(0)
}

func (m *mockUserRepo) ExtendSubscription(email string, end time.Time) error {
	return m.Called(email, end).Error(0)
}

func (m *mockUserRepo) UpdateProfile(email, name, photo string) error {
	return m.Called(email, name, photo).Error(0)
}

func (m *mockUserRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockArticleRepo struct {
	mock.Mock
}

func (m *mockArticleRepo) Create(article *models.Article) error {
	return m.Called(article).Error(0)
}

func (m *mockArticleRepo) GetByID(id uint) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *mockArticleRepo) GetList(params models.ArticleListParams, premiumOnly bool) ([]models.Article, int64, error) {
	args := m.Called(params, premiumOnly)
	return args.Get(0).([]models.Article), args.Get(1).(int64), args.Error(2)
}

func (m *mockArticleRepo) GetTrending(limit int) ([]models.Article, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *mockArticleRepo) GetByAuthor(email string, approvedOnly bool) ([]models.Article, error) {
	args := m.Called(email, approvedOnly)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *mockArticleRepo) Update(article *models.Article) error {
	return m.Called(article).Error(0)
}

func (m *mockArticleRepo) ReplaceTags(article *models.Article, tags []models.Tag) error {
	return m.Called(article, tags).Error(0)
}

func (m *mockArticleRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockArticleRepo) CountByAuthor(email string) (int64, error) {
	args := m.Called(email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockArticleRepo) IncrementViews(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockArticleRepo) SetAverageRating(id uint, avg float64) error {
	return m.Called(id, avg).Error(0)
}

type mockTagRepo struct {
	mock.Mock
}

func (m *mockTagRepo) Create(tag *models.Tag) error {
	return m.Called(tag).Error(0)
}

func (m *mockTagRepo) GetByName(name string) (*models.Tag, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *mockTagRepo) GetAll() ([]models.Tag, error) {
	args := m.Called()
	return args.Get(0).([]models.Tag), args.Error(1)
}

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(comment *models.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *mockCommentRepo) GetByArticle(articleID uint) ([]models.Comment, error) {
	args := m.Called(articleID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *mockCommentRepo) AverageRating(articleID uint) (float64, error) {
	args := m.Called(articleID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockCommentRepo) CountByAuthor(email string) (int64, error) {
	args := m.Called(email)
	return args.Get(0).(int64), args.Error(1)
}

type mockPlanRepo struct {
	mock.Mock
}

func (m *mockPlanRepo) GetAll() ([]models.Plan, error) {
	args := m.Called()
	return args.Get(0).([]models.Plan), args.Error(1)
}

func (m *mockPlanRepo) GetByID(id uint) (*models.Plan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(payment *models.Payment) error {
	return m.Called(payment).Error(0)
}

func (m *mockPaymentRepo) GetBySession(sessionID string) (*models.Payment, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentRepo) TotalRevenue() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

type mockPublisherRepo struct {
	mock.Mock
}

func (m *mockPublisherRepo) Create(publisher *models.Publisher) error {
	return m.Called(publisher).Error(0)
}

func (m *mockPublisherRepo) GetAll() ([]models.Publisher, error) {
	args := m.Called()
	return args.Get(0).([]models.Publisher), args.Error(1)
}

func (m *mockPublisherRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockStatsRepo struct {
	mock.Mock
}

func (m *mockStatsRepo) CountArticles(status models.ArticleStatus) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsRepo) CountAllArticles() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsRepo) PublisherShares() ([]repositories.PublisherShare, error) {
	args := m.Called()
	return args.Get(0).([]repositories.PublisherShare), args.Error(1)
}

func (m *mockStatsRepo) TotalViews() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsRepo) TotalViewsByAuthor(email string) (int64, error) {
	args := m.Called(email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsRepo) ViewRows() ([]repositories.ViewRow, error) {
	args := m.Called()
	return args.Get(0).([]repositories.ViewRow), args.Error(1)
}

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) CreateSession(ctx context.Context, req checkout.CreateSessionRequest) (*checkout.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Session), args.Error(1)
}

func (m *mockProvider) GetSession(ctx context.Context, sessionID string) (*checkout.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Session), args.Error(1)
}
