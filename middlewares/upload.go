package middlewares

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KyKyRuZa/mariawimpro-backend/pkg/resp"
	"github.com/KyKyRuZa/mariawimpro-backend/pkg/storage"
)

const uploadedPhotoKey = "uploadedPhoto"

// Upload принимает необязательную часть multipart "photo": проверяет тип и
// размер, сохраняет файл под уникальным именем и кладёт имя в контекст.
// Обязательность файла решает контроллер.
func Upload(store storage.FileStore, maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("photo")
		if err != nil {
			// нет части "photo" — обязательность файла проверит контроллер
			c.Next()
			return
		}

		contentType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			resp.BadRequest(c, "Неверный тип файла. Разрешены только изображения.")
			c.Abort()
			return
		}
		if file.Size > maxSize {
			resp.PayloadTooLarge(c, "Файл слишком большой. Максимальный размер 10MB.")
			c.Abort()
			return
		}

		name := "coach-" + uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
		if err := store.SaveUpload(file, name); err != nil {
			resp.ServerError(c, "Не удалось сохранить файл")
			c.Abort()
			return
		}

		c.Set(uploadedPhotoKey, name)
		c.Next()
	}
}

// UploadedPhoto возвращает имя файла, сохранённого для текущего запроса.
func UploadedPhoto(c *gin.Context) string {
	if v, ok := c.Get(uploadedPhotoKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
