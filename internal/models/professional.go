package models

import "time"

type Professional struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	// lista separada por vírgula, ex: "corte,coloracao"
	Specialties string `gorm:"size:255" json:"specialties"`

	Rating         *float64 `json:"rating"`
	Status         string   `gorm:"size:20;default:'active'" json:"status"`
	CommissionRate float64  `json:"commission_rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
