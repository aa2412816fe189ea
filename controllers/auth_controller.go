package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KyKyRuZa/mariawimpro-backend/pkg/resp"
	"github.com/KyKyRuZa/mariawimpro-backend/services"
)

type CredentialsRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{authService: svc}
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Логин и пароль обязательны")
		return
	}

	admin, token, err := a.authService.Register(req.Login, req.Password)
	switch {
	case errors.Is(err, services.ErrLoginTaken):
		resp.BadRequest(c, "Пользователь уже существует")
		return
	case errors.Is(err, services.ErrWeakPassword):
		resp.BadRequest(c, "Пароль должен быть не короче 6 символов")
		return
	case err != nil:
		resp.ServerError(c, "Ошибка сервера")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"admin":   gin.H{"id": admin.ID, "login": admin.Login},
	})
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Логин и пароль обязательны")
		return
	}

	admin, token, err := a.authService.Login(req.Login, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		resp.Unauthorized(c, "Неверные учетные данные")
		return
	}
	if err != nil {
		resp.ServerError(c, "Ошибка сервера")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"admin":   gin.H{"id": admin.ID, "login": admin.Login},
	})
}
