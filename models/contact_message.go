package models

import "time"

type MessageStatus string

const (
	MessageUnread   MessageStatus = "unread"
	MessageRead     MessageStatus = "read"
	MessageArchived MessageStatus = "archived"
)

type ContactMessage struct {
	ID        uint          `json:"id" gorm:"primarykey"`
	Name      string        `json:"name" gorm:"not null"`
	Email     string        `json:"email" gorm:"not null"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message" gorm:"type:text;not null"`
	Status    MessageStatus `json:"status" gorm:"default:'unread'"`
	CreatedAt time.Time     `json:"created_at"`
}
