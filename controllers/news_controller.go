package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KyKyRuZa/mariawimpro-backend/entity"
	"github.com/KyKyRuZa/mariawimpro-backend/pkg/resp"
	"github.com/KyKyRuZa/mariawimpro-backend/repository"
)

type NewsController struct {
	newsRepo *repository.NewsRepository
}

func NewNewsController(repo *repository.NewsRepository) *NewsController {
	return &NewsController{newsRepo: repo}
}

// GET /api/news
func (nc *NewsController) List(c *gin.Context) {
	news, err := nc.newsRepo.FindAll()
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при получении новостей")
		return
	}
	resp.OK(c, news)
}

// GET /api/news/promo
func (nc *NewsController) Promo(c *gin.Context) {
	news, err := nc.newsRepo.FindPromo()
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при получении промо-новостей")
		return
	}
	resp.OK(c, news)
}

// GET /api/news/:id
func (nc *NewsController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		resp.NotFound(c, "Новость не найдена")
		return
	}
	item, err := nc.newsRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Новость не найдена")
		return
	}
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при получении новости")
		return
	}
	resp.OK(c, item)
}

// POST /api/news
func (nc *NewsController) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Extra       string `json:"extra"`
		Promo       bool   `json:"promo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Неверный формат данных")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		resp.BadRequest(c, "Заголовок и описание обязательны для заполнения")
		return
	}

	item := &entity.News{
		Title:       req.Title,
		Description: req.Description,
		Extra:       req.Extra,
		Promo:       req.Promo,
	}
	if err := nc.newsRepo.Create(item); err != nil {
		resp.ServerError(c, "Ошибка сервера при создании новости")
		return
	}
	resp.Created(c, "Новость успешно создана", item)
}

// PUT /api/news/:id
func (nc *NewsController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		resp.NotFound(c, "Новость не найдена")
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Extra       *string `json:"extra"`
		Promo       *bool   `json:"promo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Неверный формат данных")
		return
	}

	item, err := nc.newsRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Новость не найдена")
		return
	}
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при обновлении новости")
		return
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Extra != nil {
		item.Extra = *req.Extra
	}
	if req.Promo != nil {
		item.Promo = *req.Promo
	}

	if err := nc.newsRepo.Save(item); err != nil {
		resp.ServerError(c, "Ошибка сервера при обновлении новости")
		return
	}
	resp.OKMessage(c, "Новость успешно обновлена", item)
}

// DELETE /api/news/:id
func (nc *NewsController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		resp.NotFound(c, "Новость не найдена")
		return
	}
	item, err := nc.newsRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Новость не найдена")
		return
	}
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при удалении новости")
		return
	}
	if err := nc.newsRepo.Delete(item); err != nil {
		resp.ServerError(c, "Ошибка сервера при удалении новости")
		return
	}
	resp.Message(c, "Новость успешно удалена")
}
