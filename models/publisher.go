package models

import "time"

type Publisher struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Logo      string    `json:"logo"`
	CreatedAt time.Time `json:"created_at"`
}
