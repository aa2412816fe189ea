package repository

import (
	"gorm.io/gorm"

	"github.com/KyKyRuZa/mariawimpro-backend/entity"
)

type NewsRepository struct {
	DB *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{DB: db}
}

func (r *NewsRepository) FindAll() ([]entity.News, error) {
	var news []entity.News
	if err := r.DB.Order("created_at DESC").Find(&news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

func (r *NewsRepository) FindPromo() ([]entity.News, error) {
	var news []entity.News
	err := r.DB.Where("promo = ?", true).Order("created_at DESC").Find(&news).Error
	if err != nil {
		return nil, err
	}
	return news, nil
}

func (r *NewsRepository) FindByID(id uint) (*entity.News, error) {
	var item entity.News
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *NewsRepository) Create(item *entity.News) error {
	return r.DB.Create(item).Error
}

func (r *NewsRepository) Save(item *entity.News) error {
	return r.DB.Save(item).Error
}

func (r *NewsRepository) Delete(item *entity.News) error {
	return r.DB.Delete(item).Error
}
