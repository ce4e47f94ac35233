package services

import (
	"newshub-api/models"
	"newshub-api/repositories"
)

type PublisherService interface {
	CreatePublisher(req models.CreatePublisherRequest) (*models.Publisher, error)
	GetPublishers() ([]models.Publisher, error)
}

type publisherService struct {
	publisherRepo repositories.PublisherRepository
}

func NewPublisherService(publisherRepo repositories.PublisherRepository) PublisherService {
	return &publisherService{publisherRepo: publisherRepo}
}

func (s *publisherService) CreatePublisher(req models.CreatePublisherRequest) (*models.Publisher, error) {
	publisher := &models.Publisher{
		Name: req.Name,
		Logo: req.Logo,
	}
	if err := s.publisherRepo.Create(publisher); err != nil {
		return nil, err
	}
	return publisher, nil
}

func (s *publisherService) GetPublishers() ([]models.Publisher, error) {
	return s.publisherRepo.GetAll()
}
