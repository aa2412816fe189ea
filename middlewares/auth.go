package middlewares

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/KyKyRuZa/mariawimpro-backend/pkg/resp"
	"github.com/KyKyRuZa/mariawimpro-backend/repository"
	"github.com/KyKyRuZa/mariawimpro-backend/utils"
)

const adminKey = "admin"

// AuthMiddleware пускает дальше только запросы с действительным токеном
// существующего администратора. Любой сбой проверки — 401 и стоп.
func AuthMiddleware(secret string, adminRepo *repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "Токен отсутствует")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("неожиданный метод подписи")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			resp.Unauthorized(c, "Неверный токен")
			c.Abort()
			return
		}

		admin, err := adminRepo.FindByID(claims.AdminID)
		if err != nil {
			resp.Unauthorized(c, "Неверный токен")
			c.Abort()
			return
		}

		admin.Password = ""
		c.Set(adminKey, admin)
		c.Next()
	}
}
