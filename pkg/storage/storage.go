package storage

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// FileStore прячет файловые операции контроллеров, чтобы в тестах
// можно было подменить диск фейком.
type FileStore interface {
	// SaveUpload записывает загруженный файл под заданным именем.
	SaveUpload(file *multipart.FileHeader, name string) error
	// Remove удаляет файл; отсутствие файла не считается ошибкой.
	Remove(name string) error
	// Exists сообщает, лежит ли файл в хранилище.
	Exists(name string) bool
}

// DiskStore хранит файлы в одной директории, имена генерирует вызывающий.
type DiskStore struct {
	Dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{Dir: dir}, nil
}

func (s *DiskStore) SaveUpload(file *multipart.FileHeader, name string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, filepath.Base(name)))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

func (s *DiskStore) Remove(name string) error {
	err := os.Remove(filepath.Join(s.Dir, filepath.Base(name)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *DiskStore) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.Dir, filepath.Base(name)))
	return err == nil
}
