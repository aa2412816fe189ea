package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KyKyRuZa/mariawimpro-backend/entity"
	"github.com/KyKyRuZa/mariawimpro-backend/pkg/storage"
	"github.com/KyKyRuZa/mariawimpro-backend/repository"
)

var ErrCoachNotFound = errors.New("тренер не найден")

type GalleryUpdate struct {
	Caption *string
	Order   *int
	Photo   string // пустая строка — файл не менялся
}

type GalleryOrderItem struct {
	ID    uint `json:"id" binding:"required"`
	Order int  `json:"order"`
}

type GalleryService struct {
	galleryRepo *repository.GalleryRepository
	coachRepo   *repository.CoachRepository
	store       storage.FileStore
	log         *zap.Logger
}

func NewGalleryService(galleryRepo *repository.GalleryRepository, coachRepo *repository.CoachRepository, store storage.FileStore, log *zap.Logger) *GalleryService {
	return &GalleryService{galleryRepo: galleryRepo, coachRepo: coachRepo, store: store, log: log}
}

func (s *GalleryService) ListByCoach(coachID uint) ([]entity.Gallery, *entity.Coach, error) {
	coach, err := s.coachRepo.FindByID(coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCoachNotFound
		}
		return nil, nil, err
	}
	items, err := s.galleryRepo.FindByCoachID(coachID)
	if err != nil {
		return nil, nil, err
	}
	return items, coach, nil
}

func (s *GalleryService) Get(id uint) (*entity.Gallery, *entity.Coach, error) {
	item, err := s.galleryRepo.FindByID(id)
	if err != nil {
		return nil, nil, err
	}
	coach, err := s.coachRepo.FindByID(item.CoachID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}
	return item, coach, nil
}

func (s *GalleryService) Add(coachID uint, photo, caption string, order int) (*entity.Gallery, error) {
	if _, err := s.coachRepo.FindByID(coachID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}

	item := &entity.Gallery{
		CoachID:  coachID,
		PhotoURL: photo,
		Caption:  caption,
		Order:    order,
	}
	if err := s.galleryRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GalleryService) Update(id uint, upd GalleryUpdate) (*entity.Gallery, error) {
	item, err := s.galleryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Caption != nil {
		item.Caption = *upd.Caption
	}
	if upd.Order != nil {
		item.Order = *upd.Order
	}

	oldPhoto := ""
	if upd.Photo != "" && upd.Photo != item.PhotoURL {
		oldPhoto = item.PhotoURL
		item.PhotoURL = upd.Photo
	}

	if err := s.galleryRepo.Save(item); err != nil {
		return nil, err
	}
	if oldPhoto != "" {
		_ = s.store.Remove(oldPhoto)
	}
	return item, nil
}

func (s *GalleryService) Delete(id uint) error {
	item, err := s.galleryRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.galleryRepo.Delete(item); err != nil {
		return err
	}
	_ = s.store.Remove(item.PhotoURL)
	return nil
}

// Reorder обновляет порядок по одному элементу; ошибка одной записи
// не останавливает остальные, транзакции здесь нет намеренно.
func (s *GalleryService) Reorder(items []GalleryOrderItem) int {
	updated := 0
	for _, it := range items {
		if err := s.galleryRepo.UpdateOrder(it.ID, it.Order); err != nil {
			s.log.Warn("не удалось обновить порядок фотографии",
				zap.Uint("id", it.ID), zap.Error(err))
			continue
		}
		updated++
	}
	return updated
}
