package services

import (
	"errors"

	"newshub-api/models"
	"newshub-api/repositories"

	"gorm.io/gorm"
)

type CommentService interface {
	GetComments(articleID uint) ([]models.Comment, error)
	AddComment(articleID uint, email string, req models.CreateCommentRequest) (*models.Comment, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	userRepo    repositories.UserRepository
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	articleRepo repositories.ArticleRepository,
	userRepo repositories.UserRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

func (s *commentService) GetComments(articleID uint) ([]models.Comment, error) {
	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return s.commentRepo.GetByArticle(articleID)
}

// AddComment stores the comment and recomputes the parent article's average
// rating over all of its comments.
func (s *commentService) AddComment(articleID uint, email string, req models.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		ArticleID:   articleID,
		AuthorEmail: user.Email,
		AuthorName:  user.Name,
		AuthorPhoto: user.Photo,
		Rating:      req.Rating,
		Content:     req.Content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	avg, err := s.commentRepo.AverageRating(articleID)
	if err != nil {
		return nil, err
	}
	if err := s.articleRepo.SetAverageRating(articleID, avg); err != nil {
		return nil, err
	}

	return comment, nil
}
