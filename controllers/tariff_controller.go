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

type TariffController struct {
	tariffRepo *repository.TariffRepository
}

func NewTariffController(repo *repository.TariffRepository) *TariffController {
	return &TariffController{tariffRepo: repo}
}

// GET /api/tariffs
func (tc *TariffController) List(c *gin.Context) {
	tariffs, err := tc.tariffRepo.FindAll()
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при получении тарифов")
		return
	}
	resp.OK(c, tariffs)
}

// GET /api/tariffs/category/:category
func (tc *TariffController) ByCategory(c *gin.Context) {
	tariffs, err := tc.tariffRepo.FindByCategory(c.Param("category"))
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при получении тарифов")
		return
	}
	resp.OK(c, tariffs)
}

// GET /api/tariffs/:id
func (tc *TariffController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		resp.NotFound(c, "Тариф не найден")
		return
	}
	tariff, err := tc.tariffRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Тариф не найден")
		return
	}
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при получении тарифа")
		return
	}
	resp.OK(c, tariff)
}

// POST /api/tariffs
func (tc *TariffController) Create(c *gin.Context) {
	var req struct {
		Name     string   `json:"name"`
		Price    *float64 `json:"price"`
		Category string   `json:"category"`
		Type     string   `json:"type"`
		Duration string   `json:"duration"`
	}
	// нечисловая цена отсекается здесь же, на разборе JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Неверный формат данных")
		return
	}

	switch {
	case strings.TrimSpace(req.Name) == "":
		resp.BadRequest(c, "Название тарифа обязательно")
		return
	case req.Price == nil:
		resp.BadRequest(c, "Цена обязательна")
		return
	case *req.Price < 0:
		resp.BadRequest(c, "Цена должна быть положительным числом")
		return
	case req.Category == "":
		resp.BadRequest(c, "Категория обязательна")
		return
	case req.Type == "":
		resp.BadRequest(c, "Тип обязателен")
		return
	case req.Duration == "":
		resp.BadRequest(c, "Длительность обязательна")
		return
	}

	tariff := &entity.Tariff{
		Name:     strings.TrimSpace(req.Name),
		Price:    *req.Price,
		Category: req.Category,
		Type:     req.Type,
		Duration: req.Duration,
	}
	if err := tc.tariffRepo.Create(tariff); err != nil {
		resp.ServerError(c, "Ошибка сервера при создании тарифа")
		return
	}
	resp.Created(c, "Тариф успешно создан", tariff)
}

// PATCH /api/tariffs/:id
func (tc *TariffController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		resp.NotFound(c, "Тариф не найден")
		return
	}

	var req struct {
		Name     *string  `json:"name"`
		Price    *float64 `json:"price"`
		Category *string  `json:"category"`
		Type     *string  `json:"type"`
		Duration *string  `json:"duration"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Неверный формат данных")
		return
	}
	if req.Price != nil && *req.Price < 0 {
		resp.BadRequest(c, "Цена должна быть положительным числом")
		return
	}

	tariff, err := tc.tariffRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Тариф не найден")
		return
	}
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при обновлении тарифа")
		return
	}

	if req.Name != nil {
		tariff.Name = *req.Name
	}
	if req.Price != nil {
		tariff.Price = *req.Price
	}
	if req.Category != nil {
		tariff.Category = *req.Category
	}
	if req.Type != nil {
		tariff.Type = *req.Type
	}
	if req.Duration != nil {
		tariff.Duration = *req.Duration
	}

	if err := tc.tariffRepo.Save(tariff); err != nil {
		resp.ServerError(c, "Ошибка сервера при обновлении тарифа")
		return
	}
	resp.OKMessage(c, "Тариф успешно обновлен", tariff)
}

// PATCH /api/tariffs/:id/price
func (tc *TariffController) UpdatePrice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		resp.NotFound(c, "Тариф не найден")
		return
	}

	var req struct {
		Price *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Цена должна быть положительным числом")
		return
	}
	if req.Price == nil {
		resp.BadRequest(c, "Цена обязательна для заполнения")
		return
	}
	if *req.Price < 0 {
		resp.BadRequest(c, "Цена должна быть положительным числом")
		return
	}

	tariff, err := tc.tariffRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Тариф не найден")
		return
	}
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при обновлении цены")
		return
	}

	tariff.Price = *req.Price
	if err := tc.tariffRepo.Save(tariff); err != nil {
		resp.ServerError(c, "Ошибка сервера при обновлении цены")
		return
	}
	resp.OKMessage(c, "Цена успешно обновлена", tariff)
}

// DELETE /api/tariffs/:id
func (tc *TariffController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		resp.NotFound(c, "Тариф не найден")
		return
	}
	tariff, err := tc.tariffRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Тариф не найден")
		return
	}
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при удалении тарифа")
		return
	}
	if err := tc.tariffRepo.Delete(tariff); err != nil {
		resp.ServerError(c, "Ошибка сервера при удалении тарифа")
		return
	}
	resp.Message(c, "Тариф успешно удален")
}
