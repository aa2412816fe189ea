package entity

import "time"

type Coach struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	FullName       string    `json:"fullName" gorm:"column:full_name;not null"`
	Photo          string    `json:"photo" gorm:"not null"`
	Education      string    `json:"education" gorm:"type:text;not null"`
	Specialization string    `json:"specialization" gorm:"type:text;not null"`
	Merits         string    `json:"merits" gorm:"type:text;not null"`
	Experience     int       `json:"experience" gorm:"not null"` // стаж работы в годах
	Description    string    `json:"description" gorm:"type:text;not null"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Gallery []Gallery `json:"-" gorm:"foreignKey:CoachID;constraint:OnDelete:CASCADE"`
}

func (Coach) TableName() string { return "coaches" }
