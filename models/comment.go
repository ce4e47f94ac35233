package models

import "time"

type Comment struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ArticleID   uint      `json:"article_id" gorm:"index;not null"`
	AuthorEmail string    `json:"author_email" gorm:"index;not null"`
	AuthorName  string    `json:"author_name"`
	AuthorPhoto string    `json:"author_photo"`
	Rating      int       `json:"rating" gorm:"not null"`
	Content     string    `json:"content" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}
