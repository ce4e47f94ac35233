package services

import (
	"errors"

	"newshub-api/models"
	"newshub-api/repositories"

	"gorm.io/gorm"
)

type UserService interface {
	Register(req models.CreateUserRequest) (*models.User, error)
	UpdateProfile(email string, req models.UpdateProfileRequest) error
	GetUsers(page, limit int) ([]models.User, int64, error)
	IsAdmin(email string) (bool, error)
	MakeAdmin(id uint) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a user on first sign-in. A duplicate email is a soft
// failure: the caller reports it in the response body, not as an HTTP error.
func (s *userService) Register(req models.CreateUserRequest) (*models.User, error) {
	_, err := s.userRepo.GetByEmail(req.Email)
	if err == nil {
		return nil, models.ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
		Role:  models.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(email string, req models.UpdateProfileRequest) error {
	return s.userRepo.UpdateProfile(email, req.Name, req.Photo)
}

func (s *userService) GetUsers(page, limit int) ([]models.User, int64, error) {
	return s.userRepo.GetList(page, limit)
}

func (s *userService) IsAdmin(email string) (bool, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}

func (s *userService) MakeAdmin(id uint) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return s.userRepo.UpdateRole(id, models.RoleAdmin)
}
