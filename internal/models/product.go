package models

import "time"

// Produto de estoque. O status (esgotado / baixo_estoque / disponivel)
// nunca é persistido: é derivado de StockQuantity e MinStock a cada leitura.
type Product struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Category string `gorm:"size:50" json:"category"`
	Brand    string `gorm:"size:100" json:"brand"`
	Supplier string `gorm:"size:100" json:"supplier"`

	StockQuantity int     `json:"stock_quantity"`
	MinStock      int     `json:"min_stock"`
	Price         float64 `json:"price"`
	Cost          float64 `json:"cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
