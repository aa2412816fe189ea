package repository

import (
	"gorm.io/gorm"

	"github.com/KyKyRuZa/mariawimpro-backend/entity"
)

type TariffRepository struct {
	DB *gorm.DB
}

func NewTariffRepository(db *gorm.DB) *TariffRepository {
	return &TariffRepository{DB: db}
}

func (r *TariffRepository) FindAll() ([]entity.Tariff, error) {
	var tariffs []entity.Tariff
	if err := r.DB.Order("created_at DESC").Find(&tariffs).Error; err != nil {
		return nil, err
	}
	return tariffs, nil
}

func (r *TariffRepository) FindByCategory(category string) ([]entity.Tariff, error) {
	var tariffs []entity.Tariff
	err := r.DB.Where("category = ?", category).Order("created_at DESC").Find(&tariffs).Error
	if err != nil {
		return nil, err
	}
	return tariffs, nil
}

func (r *TariffRepository) FindByID(id uint) (*entity.Tariff, error) {
	var tariff entity.Tariff
	if err := r.DB.First(&tariff, id).Error; err != nil {
		return nil, err
	}
	return &tariff, nil
}

func (r *TariffRepository) Create(tariff *entity.Tariff) error {
	return r.DB.Create(tariff).Error
}

func (r *TariffRepository) Save(tariff *entity.Tariff) error {
	return r.DB.Save(tariff).Error
}

func (r *TariffRepository) Delete(tariff *entity.Tariff) error {
	return r.DB.Delete(tariff).Error
}
