package models

import "time"

type Salon struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	// IANA; agenda inteira do salão gira nesse fuso
	Timezone string `gorm:"size:64;default:'America/Sao_Paulo'" json:"timezone"`

	MinAdvanceMinutes int `gorm:"default:120" json:"min_advance_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
