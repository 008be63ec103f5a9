package models

import "time"

type Transaction struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	Type        string    `gorm:"size:10;not null" json:"type"` // income | expense
	Description string    `gorm:"size:255" json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Method      string    `gorm:"size:10" json:"method"` // card | pix | cash
	Status      string    `gorm:"size:20;default:'confirmed'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
