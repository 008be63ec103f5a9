package models

import "time"

// Cliente simples, sem login, vinculado ao salão
type Client struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`
	City  string `gorm:"size:100" json:"city"`

	Status     string     `gorm:"size:20;default:'active'" json:"status"`
	TotalSpent float64    `json:"total_spent"`
	LastVisit  *time.Time `json:"last_visit"`
	BirthDate  *time.Time `json:"birth_date"`
	Notes      string     `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
