package services

import (
	"testing"

	"newshub-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestRegister_NewUser(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("GetByEmail", "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	svc := NewUserService(userRepo)

	user, err := svc.Register(models.CreateUserRequest{Name: "New", Email: "new@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.HasSubscription)
}

func TestRegister_DuplicateEmailIsSoftFailure(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("GetByEmail", "dup@example.com").Return(&models.User{Email: "dup@example.com"}, nil)

	svc := NewUserService(userRepo)

	_, err := svc.Register(models.CreateUserRequest{Name: "Dup", Email: "dup@example.com"})
	assert.ErrorIs(t, err, models.ErrDuplicate)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestIsAdmin(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("GetByEmail", "admin@example.com").Return(&models.User{Role: models.RoleAdmin}, nil)
	userRepo.On("GetByEmail", "user@example.com").Return(&models.User{Role: models.RoleUser}, nil)
	userRepo.On("GetByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(userRepo)

	isAdmin, err := svc.IsAdmin("admin@example.com")
	assert.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin("user@example.com")
	assert.NoError(t, err)
	assert.False(t, isAdmin)

	isAdmin, err = svc.IsAdmin("ghost@example.com")
	assert.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestMakeAdmin_UnknownUser(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("GetByID", uint(12)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(userRepo)

	assert.ErrorIs(t, svc.MakeAdmin(12), models.ErrNotFound)
}

func TestUpdateProfile_DelegatesToFanOut(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("UpdateProfile", "bob@example.com", "Robert", "new.png").Return(nil)

	svc := NewUserService(userRepo)

	assert.NoError(t, svc.UpdateProfile("bob@example.com", models.UpdateProfileRequest{
		Name:  "Robert",
		Photo: "new.png",
	}))
	userRepo.AssertCalled(t, "UpdateProfile", "bob@example.com", "Robert", "new.png")
}
