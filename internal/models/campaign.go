package models

import "time"

type Campaign struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Channel string `gorm:"size:30" json:"channel"` // email | sms | whatsapp | instagram
	Status  string `gorm:"size:20;default:'draft'" json:"status"`

	Reach       int     `json:"reach"`
	Opens       int     `json:"opens"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Budget      float64 `json:"budget"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
