package models

import "time"

type DurationUnit string

const (
	UnitMinute DurationUnit = "minute"
	UnitDays   DurationUnit = "days"
	UnitMonths DurationUnit = "months"
)

type Plan struct {
	ID           uint         `json:"id" gorm:"primarykey"`
	Name         string       `json:"name" gorm:"not null"`
	Price        float64      `json:"price" gorm:"not null"`
	Duration     int          `json:"duration" gorm:"not null"`
	DurationUnit DurationUnit `json:"duration_unit" gorm:"not null"`
	Description  string       `json:"description"`
	CreatedAt    time.Time    `json:"created_at"`
}

// DurationMinutes converts the (value, unit) pair into minutes. An unknown
// unit yields zero: such a plan grants no subscription time.
func (p *Plan) DurationMinutes() int {
	switch p.DurationUnit {
	case UnitMinute:
		return p.Duration
	case UnitDays:
		return p.Duration * 24 * 60
	case UnitMonths:
		return p.Duration * 30 * 24 * 60
	default:
		return 0
	}
}
