package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// AssetURL строит абсолютную ссылку на файл из /assets.
// base берётся из конфигурации; если он пуст, схема и хост
// восстанавливаются из запроса.
func AssetURL(c *gin.Context, base, filename string) string {
	if filename == "" {
		return ""
	}
	if base == "" {
		scheme := "http"
		if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		} else if c.Request.TLS != nil {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, c.Request.Host)
	}
	return fmt.Sprintf("%s/assets/%s", base, filename)
}
