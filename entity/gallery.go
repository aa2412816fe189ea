package entity

import "time"

type Gallery struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CoachID   uint      `json:"coachId" gorm:"column:coach_id;not null;index"`
	PhotoURL  string    `json:"photoUrl" gorm:"column:photo_url;not null"`
	Caption   string    `json:"caption"`
	Order     int       `json:"order" gorm:"column:sort_order;not null;default:0"` // порядок отображения
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Gallery) TableName() string { return "gallery" }
