package services

import (
	"errors"

	"newshub-api/models"
	"newshub-api/repositories"

	"gorm.io/gorm"
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, email string) (*models.Article, error)
	GetArticles(params models.ArticleListParams, premiumOnly bool) ([]models.Article, int64, error)
	GetTrending() ([]models.Article, error)
	GetArticle(id uint, email string) (*models.Article, error)
	UpdateArticle(id uint, email string, req models.UpdateArticleRequest) (*models.Article, error)
	DeleteArticle(id uint, email string) error
	SetPremium(id uint, premium bool) error
	UpdateStatus(id uint, status models.ArticleStatus, declineReason string) error
	GetMyArticles(email string) ([]models.Article, error)
	GetAuthorArticles(email string) ([]models.Article, error)
	RecordView(id uint) error
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	tagRepo      repositories.TagRepository
	userRepo     repositories.UserRepository
	subscription SubscriptionService
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	tagRepo repositories.TagRepository,
	userRepo repositories.UserRepository,
	subscription SubscriptionService,
) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		tagRepo:      tagRepo,
		userRepo:     userRepo,
		subscription: subscription,
	}
}

// CreateArticle inserts a pending article under the requesting user.
// Non-subscribed users may own at most one article. The count-then-insert
// check is a soft content-policy limit, not a security boundary, so it is
// not atomic against concurrent creations.
func (s *articleService) CreateArticle(req models.CreateArticleRequest, email string) (*models.Article, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if err := s.subscription.Check(email); err != nil {
		if !errors.Is(err, models.ErrForbidden) && !errors.Is(err, models.ErrSubscriptionExpired) {
			return nil, err
		}
		count, err := s.articleRepo.CountByAuthor(email)
		if err != nil {
			return nil, err
		}
		if count >= 1 {
			return nil, models.ErrArticleLimit
		}
	}

	tags, err := s.processTags(req.Tags)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:       req.Title,
		Content:     req.Content,
		Image:       req.Image,
		PublisherID: req.PublisherID,
		Tags:        tags,
		AuthorEmail: user.Email,
		AuthorName:  user.Name,
		AuthorPhoto: user.Photo,
		Status:      models.StatusPending,
	}
	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) GetArticles(params models.ArticleListParams, premiumOnly bool) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(params, premiumOnly)
}

func (s *articleService) GetTrending() ([]models.Article, error) {
	return s.articleRepo.GetTrending(6)
}

// GetArticle returns article details. Premium articles are gated on a valid
// subscription; the check applies the same lazy expiry as the route guard.
func (s *articleService) GetArticle(id uint, email string) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if article.IsPremium {
		if err := s.subscription.Check(email); err != nil {
			return nil, err
		}
	}

	return article, nil
}

func (s *articleService) UpdateArticle(id uint, email string, req models.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if article.AuthorEmail != email {
		return nil, models.ErrForbidden
	}

	tags, err := s.processTags(req.Tags)
	if err != nil {
		return nil, err
	}

	article.Title = req.Title
	article.Content = req.Content
	article.Image = req.Image
	article.PublisherID = req.PublisherID
	if err := s.articleRepo.ReplaceTags(article, tags); err != nil {
		return nil, err
	}
	article.Tags = tags
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) DeleteArticle(id uint, email string) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	if article.AuthorEmail != email {
		user, err := s.userRepo.GetByEmail(email)
		if err != nil || user.Role != models.RoleAdmin {
			return models.ErrForbidden
		}
	}

	return s.articleRepo.Delete(id)
}

func (s *articleService) SetPremium(id uint, premium bool) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	article.IsPremium = premium
	return s.articleRepo.Update(article)
}

func (s *articleService) UpdateStatus(id uint, status models.ArticleStatus, declineReason string) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	article.Status = status
	if status == models.StatusDeclined {
		article.DeclineReason = declineReason
	} else {
		article.DeclineReason = ""
	}
	return s.articleRepo.Update(article)
}

func (s *articleService) GetMyArticles(email string) ([]models.Article, error) {
	return s.articleRepo.GetByAuthor(email, false)
}

func (s *articleService) GetAuthorArticles(email string) ([]models.Article, error) {
	return s.articleRepo.GetByAuthor(email, true)
}

func (s *articleService) RecordView(id uint) error {
	return s.articleRepo.IncrementViews(id)
}

func (s *articleService) processTags(tagNames []string) ([]models.Tag, error) {
	var tags []models.Tag

	for _, name := range tagNames {
		tag, err := s.tagRepo.GetByName(name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				newTag := &models.Tag{Name: name}
				if err := s.tagRepo.Create(newTag); err != nil {
					return nil, err
				}
				tags = append(tags, *newTag)
			} else {
				return nil, err
			}
		} else {
			tags = append(tags, *tag)
		}
	}

	return tags, nil
}
