package repository

import (
	"gorm.io/gorm"

	"github.com/KyKyRuZa/mariawimpro-backend/entity"
)

type GalleryRepository struct {
	DB *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{DB: db}
}

// Фотографии тренера: сначала по заданному порядку, затем новые первыми.
func (r *GalleryRepository) FindByCoachID(coachID uint) ([]entity.Gallery, error) {
	var items []entity.Gallery
	err := r.DB.Where("coach_id = ?", coachID).
		Order("sort_order ASC").
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GalleryRepository) FindByID(id uint) (*entity.Gallery, error) {
	var item entity.Gallery
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GalleryRepository) Create(item *entity.Gallery) error {
	return r.DB.Create(item).Error
}

func (r *GalleryRepository) Save(item *entity.Gallery) error {
	return r.DB.Save(item).Error
}

func (r *GalleryRepository) Delete(item *entity.Gallery) error {
	return r.DB.Delete(item).Error
}

func (r *GalleryRepository) DeleteByCoachID(coachID uint) error {
	return r.DB.Where("coach_id = ?", coachID).Delete(&entity.Gallery{}).Error
}

func (r *GalleryRepository) UpdateOrder(id uint, order int) error {
	return r.DB.Model(&entity.Gallery{}).Where("id = ?", id).
		Update("sort_order", order).Error
}
