package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/KyKyRuZa/mariawimpro-backend/entity"
	"github.com/KyKyRuZa/mariawimpro-backend/repository"
	"github.com/KyKyRuZa/mariawimpro-backend/utils"
)

var (
	ErrLoginTaken         = errors.New("пользователь уже существует")
	ErrInvalidCredentials = errors.New("неверные учетные данные")
	ErrWeakPassword       = errors.New("пароль должен быть не короче 6 символов")
)

// AuthService выпускает токены и управляет учётной записью администратора.
// Пароль хэшируется явно перед записью, а не хуком ORM.
type AuthService struct {
	adminRepo *repository.AdminRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.AdminRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{adminRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Register(login, password string) (*entity.Admin, string, error) {
	login = strings.TrimSpace(login)
	if len(password) < 6 {
		return nil, "", ErrWeakPassword
	}

	count, err := s.adminRepo.CountByLogin(login)
	if err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", ErrLoginTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, "", err
	}

	admin := &entity.Admin{Login: login, Password: string(hashed)}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(admin.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

func (s *AuthService) Login(login, password string) (*entity.Admin, string, error) {
	admin, err := s.adminRepo.FindByLogin(strings.TrimSpace(login))
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(admin.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}
