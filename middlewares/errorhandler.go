package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler — терминальный обработчик паник. Полная ошибка со стеком
// всегда уходит в лог; клиент видит детали только вне production.
func ErrorHandler(log *zap.Logger, production bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		stack := string(debug.Stack())
		log.Error("необработанная ошибка",
			zap.String("path", c.Request.URL.Path),
			zap.Any("error", recovered),
			zap.String("stack", stack))

		if production {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Internal Server Error",
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprint(recovered),
			"stack":   stack,
		})
	})
}
