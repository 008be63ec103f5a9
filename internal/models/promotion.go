package models

import "time"

type Promotion struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	Name         string  `gorm:"size:100;not null" json:"name"`
	DiscountType string  `gorm:"size:10" json:"discount_type"` // percent | fixed
	DiscountVal  float64 `json:"discount_value"`

	UsageCount int  `json:"usage_count"`
	UsageLimit int  `json:"usage_limit"`
	Active     bool `gorm:"default:true" json:"active"`

	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
