package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID              uint           `json:"id" gorm:"primarykey"`
	Name            string         `json:"name" gorm:"not null"`
	Email           string         `json:"email" gorm:"uniqueIndex;not null"`
	Photo           string         `json:"photo"`
	Role            UserRole       `json:"role" gorm:"default:'user'"`
	HasSubscription bool           `json:"has_subscription" gorm:"default:false"`
	SubscriptionEnd *time.Time     `json:"subscription_end"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// SubscriptionExpired reports whether the user carries a subscription window
// that has already ended. The flag itself is healed lazily by the read paths
// that observe this state.
func (u *User) SubscriptionExpired(now time.Time) bool {
	return u.HasSubscription && u.SubscriptionEnd != nil && u.SubscriptionEnd.Before(now)
}
