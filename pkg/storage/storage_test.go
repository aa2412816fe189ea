package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
)

func fileHeader(t *testing.T, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="photo"; filename="photo.jpg"`)
	h.Set("Content-Type", "image/jpeg")
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("создание части: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("запись части: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("разбор формы: %v", err)
	}
	return req.MultipartForm.File["photo"][0]
}

func TestDiskStoreSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("создание хранилища: %v", err)
	}

	fh := fileHeader(t, []byte("jpeg-bytes"))
	if err := store.SaveUpload(fh, "coach-test.jpg"); err != nil {
		t.Fatalf("сохранение: %v", err)
	}
	if !store.Exists("coach-test.jpg") {
		t.Fatal("файл не найден после сохранения")
	}
	got, err := os.ReadFile(filepath.Join(dir, "coach-test.jpg"))
	if err != nil || string(got) != "jpeg-bytes" {
		t.Fatalf("содержимое файла: %q, err=%v", got, err)
	}

	if err := store.Remove("coach-test.jpg"); err != nil {
		t.Fatalf("удаление: %v", err)
	}
	if store.Exists("coach-test.jpg") {
		t.Fatal("файл остался после удаления")
	}
}

func TestDiskStoreRemoveMissIsSilent(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("создание хранилища: %v", err)
	}
	if err := store.Remove("no-such-file.jpg"); err != nil {
		t.Fatalf("промах удаления должен игнорироваться: %v", err)
	}
}

func TestDiskStoreStripsPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("создание хранилища: %v", err)
	}

	fh := fileHeader(t, []byte("x"))
	if err := store.SaveUpload(fh, "../escape.jpg"); err != nil {
		t.Fatalf("сохранение: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.jpg")); err != nil {
		t.Fatal("имя файла должно усекаться до базового")
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape.jpg")); err == nil {
		t.Fatal("файл записан вне директории хранилища")
	}
}
