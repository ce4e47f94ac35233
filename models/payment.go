package models

import "time"

// Payment is append-only: rows are written by the checkout success callback
// and never updated afterwards.
type Payment struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	Email           string    `json:"email" gorm:"index;not null"`
	SessionID       string    `json:"session_id" gorm:"uniqueIndex;not null"`
	PlanID          uint      `json:"plan_id"`
	PlanName        string    `json:"plan_name"`
	DurationMinutes int       `json:"duration_minutes"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
