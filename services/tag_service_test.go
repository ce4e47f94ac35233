package services

import (
	"testing"

	"newshub-api/models"

	"github.com/stretchr/testify/assert"
)

func TestGetTags(t *testing.T) {
	tagRepo := new(mockTagRepo)
	tagRepo.On("GetAll").Return([]models.Tag{
		{ID: 1, Name: "economy"},
		{ID: 2, Name: "politics"},
	}, nil)

	svc := NewTagService(tagRepo)

	tags, err := svc.GetTags()
	assert.NoError(t, err)
	assert.Len(t, tags, 2)
	assert.Equal(t, "economy", tags[0].Name)
}

func TestGetTags_RepoError(t *testing.T) {
	tagRepo := new(mockTagRepo)
	tagRepo.On("GetAll").Return([]models.Tag{}, assert.AnError)

	svc := NewTagService(tagRepo)

	_, err := svc.GetTags()
	assert.Error(t, err)
}
