package services

import (
	"github.com/KyKyRuZa/mariawimpro-backend/entity"
	"github.com/KyKyRuZa/mariawimpro-backend/pkg/storage"
	"github.com/KyKyRuZa/mariawimpro-backend/repository"
)

// CoachUpdate переносит только присланные поля: nil означает
// "поле не трогать", чтобы нулевые значения не терялись.
type CoachUpdate struct {
	FullName       *string
	Education      *string
	Specialization *string
	Merits         *string
	Experience     *int
	Description    *string
	Photo          string // пустая строка — файл не менялся
}

// CoachService держит жизненный цикл строки и её файла вместе:
// строка в БД пишется первой, файлы убираются последними.
type CoachService struct {
	coachRepo   *repository.CoachRepository
	galleryRepo *repository.GalleryRepository
	store       storage.FileStore
}

func NewCoachService(coachRepo *repository.CoachRepository, galleryRepo *repository.GalleryRepository, store storage.FileStore) *CoachService {
	return &CoachService{coachRepo: coachRepo, galleryRepo: galleryRepo, store: store}
}

func (s *CoachService) List() ([]entity.Coach, error) {
	return s.coachRepo.FindAll()
}

func (s *CoachService) Get(id uint) (*entity.Coach, error) {
	return s.coachRepo.FindByID(id)
}

func (s *CoachService) Create(coach *entity.Coach) error {
	return s.coachRepo.Create(coach)
}

func (s *CoachService) Update(id uint, upd CoachUpdate) (*entity.Coach, error) {
	coach, err := s.coachRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if upd.FullName != nil {
		coach.FullName = *upd.FullName
	}
	if upd.Education != nil {
		coach.Education = *upd.Education
	}
	if upd.Specialization != nil {
		coach.Specialization = *upd.Specialization
	}
	if upd.Merits != nil {
		coach.Merits = *upd.Merits
	}
	if upd.Experience != nil {
		coach.Experience = *upd.Experience
	}
	if upd.Description != nil {
		coach.Description = *upd.Description
	}

	oldPhoto := ""
	if upd.Photo != "" && upd.Photo != coach.Photo {
		oldPhoto = coach.Photo
		coach.Photo = upd.Photo
	}

	if err := s.coachRepo.Save(coach); err != nil {
		return nil, err
	}

	// Старый файл удаляется после успешной записи строки;
	// промах удаления не ошибка, файла могло уже не быть.
	if oldPhoto != "" {
		_ = s.store.Remove(oldPhoto)
	}
	return coach, nil
}

// Delete убирает тренера вместе с его галереей и всеми файлами.
func (s *CoachService) Delete(id uint) error {
	coach, err := s.coachRepo.FindByID(id)
	if err != nil {
		return err
	}

	items, err := s.galleryRepo.FindByCoachID(id)
	if err != nil {
		return err
	}

	if err := s.galleryRepo.DeleteByCoachID(id); err != nil {
		return err
	}
	if err := s.coachRepo.Delete(coach); err != nil {
		return err
	}

	for _, item := range items {
		_ = s.store.Remove(item.PhotoURL)
	}
	if coach.Photo != "" {
		_ = s.store.Remove(coach.Photo)
	}
	return nil
}
