package services

import (
	"newshub-api/models"
	"newshub-api/repositories"
)

type ContactService interface {
	CreateMessage(req models.ContactRequest) (*models.ContactMessage, error)
	GetMessages(params models.ListParams) ([]models.ContactMessage, int64, error)
	UpdateStatus(id uint, status models.MessageStatus) error
}

type contactService struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) CreateMessage(req models.ContactRequest) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.MessageUnread,
	}
	if err := s.contactRepo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *contactService) GetMessages(params models.ListParams) ([]models.ContactMessage, int64, error) {
	return s.contactRepo.GetList(params)
}

func (s *contactService) UpdateStatus(id uint, status models.MessageStatus) error {
	return s.contactRepo.UpdateStatus(id, status)
}
