package models

import (
	"time"

	"gorm.io/gorm"
)

type ArticleStatus string

const (
	StatusPending  ArticleStatus = "pending"
	StatusApproved ArticleStatus = "approved"
	StatusDeclined ArticleStatus = "declined"
)

type Article struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	Title         string         `json:"title" gorm:"not null"`
	Content       string         `json:"content" gorm:"type:text;not null"`
	Image         string         `json:"image"`
	PublisherID   uint           `json:"publisher_id" gorm:"not null"`
	Publisher     Publisher      `json:"publisher" gorm:"foreignKey:PublisherID"`
	Tags          []Tag          `json:"tags" gorm:"many2many:article_tags;"`
	AuthorEmail   string         `json:"author_email" gorm:"index;not null"`
	AuthorName    string         `json:"author_name"`
	AuthorPhoto   string         `json:"author_photo"`
	IsPremium     bool           `json:"is_premium" gorm:"default:false"`
	Status        ArticleStatus  `json:"status" gorm:"default:'pending'"`
	DeclineReason string         `json:"decline_reason,omitempty"`
	ViewCount     int64          `json:"view_count" gorm:"default:0"`
	AverageRating float64        `json:"average_rating" gorm:"default:0"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
