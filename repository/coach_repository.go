package repository

import (
	"gorm.io/gorm"

	"github.com/KyKyRuZa/mariawimpro-backend/entity"
)

type CoachRepository struct {
	DB *gorm.DB
}

func NewCoachRepository(db *gorm.DB) *CoachRepository {
	return &CoachRepository{DB: db}
}

// Список тренеров, новые первыми.
func (r *CoachRepository) FindAll() ([]entity.Coach, error) {
	var coaches []entity.Coach
	if err := r.DB.Order("created_at DESC").Find(&coaches).Error; err != nil {
		return nil, err
	}
	return coaches, nil
}

func (r *CoachRepository) FindByID(id uint) (*entity.Coach, error) {
	var coach entity.Coach
	if err := r.DB.First(&coach, id).Error; err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *CoachRepository) Create(coach *entity.Coach) error {
	return r.DB.Create(coach).Error
}

func (r *CoachRepository) Save(coach *entity.Coach) error {
	return r.DB.Save(coach).Error
}

func (r *CoachRepository) Delete(coach *entity.Coach) error {
	return r.DB.Delete(coach).Error
}
