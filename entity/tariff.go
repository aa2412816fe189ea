package entity

import "time"

type Tariff struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Category  string    `json:"category" gorm:"not null;index"`
	Type      string    `json:"type" gorm:"not null"`
	Duration  string    `json:"duration" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Tariff) TableName() string { return "tariffs" }
