package repository

import (
	"gorm.io/gorm"

	"github.com/KyKyRuZa/mariawimpro-backend/entity"
)

// AdminRepository отвечает только за работу с таблицей admins.
type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) FindByLogin(login string) (*entity.Admin, error) {
	var admin entity.Admin
	if err := r.DB.Where("login = ?", login).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) CountByLogin(login string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Admin{}).Where("login = ?", login).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AdminRepository) FindByID(id uint) (*entity.Admin, error) {
	var admin entity.Admin
	if err := r.DB.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) Create(admin *entity.Admin) error {
	return r.DB.Create(admin).Error
}
