package services

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/KyKyRuZa/mariawimpro-backend/entity"
	"github.com/KyKyRuZa/mariawimpro-backend/repository"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("открытие тестовой БД: %v", err)
	}
	if err := db.AutoMigrate(&entity.Admin{}); err != nil {
		t.Fatalf("миграция: %v", err)
	}
	return NewAuthService(repository.NewAdminRepository(db), "test-secret", time.Hour), db
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, db := newAuthService(t)

	admin, token, err := svc.Register("admin", "secret123")
	if err != nil {
		t.Fatalf("регистрация: %v", err)
	}
	if token == "" {
		t.Fatal("регистрация не выдала токен")
	}

	var stored entity.Admin
	if err := db.First(&stored, admin.ID).Error; err != nil {
		t.Fatalf("чтение администратора: %v", err)
	}
	if stored.Password == "secret123" {
		t.Fatal("пароль сохранён открытым текстом")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")); err != nil {
		t.Fatalf("сохранённый хэш не совпадает с паролем: %v", err)
	}
}

func TestRegisterDuplicateLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	if _, _, err := svc.Register("admin", "secret123"); err != nil {
		t.Fatalf("первая регистрация: %v", err)
	}
	_, _, err := svc.Register("admin", "another-pass")
	if !errors.Is(err, ErrLoginTaken) {
		t.Fatalf("ожидался ErrLoginTaken, получено %v", err)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	_, _, err := svc.Register("admin", "123")
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("ожидался ErrWeakPassword, получено %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	if _, _, err := svc.Register("admin", "secret123"); err != nil {
		t.Fatalf("регистрация: %v", err)
	}

	if _, token, err := svc.Login("admin", "secret123"); err != nil || token == "" {
		t.Fatalf("вход: token=%q err=%v", token, err)
	}
	if _, _, err := svc.Login("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("неверный пароль: ожидался ErrInvalidCredentials, получено %v", err)
	}
	if _, _, err := svc.Login("nobody", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("неизвестный логин: ожидался ErrInvalidCredentials, получено %v", err)
	}
}
