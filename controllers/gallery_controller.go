package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KyKyRuZa/mariawimpro-backend/entity"
	"github.com/KyKyRuZa/mariawimpro-backend/middlewares"
	"github.com/KyKyRuZa/mariawimpro-backend/pkg/resp"
	"github.com/KyKyRuZa/mariawimpro-backend/pkg/storage"
	"github.com/KyKyRuZa/mariawimpro-backend/services"
	"github.com/KyKyRuZa/mariawimpro-backend/utils"
)

type coachBrief struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
}

type galleryView struct {
	entity.Gallery
	FullPhotoURL string      `json:"fullPhotoUrl"`
	Coach        *coachBrief `json:"coach,omitempty"`
}

type GalleryController struct {
	galleryService *services.GalleryService
	store          storage.FileStore
	baseURL        string
}

func NewGalleryController(svc *services.GalleryService, store storage.FileStore, baseURL string) *GalleryController {
	return &GalleryController{galleryService: svc, store: store, baseURL: baseURL}
}

func (gc *GalleryController) view(c *gin.Context, item *entity.Gallery, coach *entity.Coach) galleryView {
	v := galleryView{
		Gallery:      *item,
		FullPhotoURL: utils.AssetURL(c, gc.baseURL, item.PhotoURL),
	}
	if coach != nil {
		v.Coach = &coachBrief{ID: coach.ID, FullName: coach.FullName}
	}
	return v
}

func (gc *GalleryController) discard(photo string) {
	if photo != "" {
		_ = gc.store.Remove(photo)
	}
}

// GET /api/gallery/coach/:coachId
func (gc *GalleryController) ListByCoach(c *gin.Context) {
	coachID, ok := parseID(c, "coachId")
	if !ok {
		resp.NotFound(c, "Тренер не найден")
		return
	}
	items, coach, err := gc.galleryService.ListByCoach(coachID)
	if errors.Is(err, services.ErrCoachNotFound) {
		resp.NotFound(c, "Тренер не найден")
		return
	}
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при получении галереи")
		return
	}
	views := make([]galleryView, 0, len(items))
	for i := range items {
		views = append(views, gc.view(c, &items[i], coach))
	}
	resp.OK(c, views)
}

// GET /api/gallery/:id
func (gc *GalleryController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		resp.NotFound(c, "Фотография не найдена")
		return
	}
	item, coach, err := gc.galleryService.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Фотография не найдена")
		return
	}
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при получении фотографии")
		return
	}
	resp.OK(c, gc.view(c, item, coach))
}

// POST /api/gallery/coach/:coachId (multipart, файл "photo" обязателен)
func (gc *GalleryController) Add(c *gin.Context) {
	photo := middlewares.UploadedPhoto(c)

	coachID, ok := parseID(c, "coachId")
	if !ok {
		gc.discard(photo)
		resp.NotFound(c, "Тренер не найден")
		return
	}
	if photo == "" {
		resp.BadRequest(c, "Изображение обязательно для загрузки")
		return
	}

	var req struct {
		Caption string `form:"caption"`
		Order   *int   `form:"order"`
	}
	if err := c.ShouldBind(&req); err != nil {
		gc.discard(photo)
		resp.BadRequest(c, "Неверный формат данных")
		return
	}
	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	item, err := gc.galleryService.Add(coachID, photo, req.Caption, order)
	if errors.Is(err, services.ErrCoachNotFound) {
		gc.discard(photo)
		resp.NotFound(c, "Тренер не найден")
		return
	}
	if err != nil {
		gc.discard(photo)
		resp.ServerError(c, "Ошибка сервера при добавлении фотографии")
		return
	}

	resp.Created(c, "Фотография успешно добавлена в галерею", gc.view(c, item, nil))
}

// PUT /api/gallery/:id (multipart, файл "photo" необязателен)
func (gc *GalleryController) Update(c *gin.Context) {
	photo := middlewares.UploadedPhoto(c)

	id, ok := parseID(c, "id")
	if !ok {
		gc.discard(photo)
		resp.NotFound(c, "Фотография не найдена")
		return
	}

	var req struct {
		Caption *string `form:"caption"`
		Order   *int    `form:"order"`
	}
	if err := c.ShouldBind(&req); err != nil {
		gc.discard(photo)
		resp.BadRequest(c, "Неверный формат данных")
		return
	}

	item, err := gc.galleryService.Update(id, services.GalleryUpdate{
		Caption: req.Caption,
		Order:   req.Order,
		Photo:   photo,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		gc.discard(photo)
		resp.NotFound(c, "Фотография не найдена")
		return
	}
	if err != nil {
		gc.discard(photo)
		resp.ServerError(c, "Ошибка сервера при обновлении фотографии")
		return
	}

	resp.OKMessage(c, "Фотография успешно обновлена", gc.view(c, item, nil))
}

// DELETE /api/gallery/:id
func (gc *GalleryController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		resp.NotFound(c, "Фотография не найдена")
		return
	}
	err := gc.galleryService.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Фотография не найдена")
		return
	}
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при удалении фотографии")
		return
	}
	resp.Message(c, "Фотография успешно удалена из галереи")
}

// PATCH /api/gallery/order
func (gc *GalleryController) Reorder(c *gin.Context) {
	var req struct {
		Items []services.GalleryOrderItem `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Неверный формат данных")
		return
	}

	gc.galleryService.Reorder(req.Items)
	resp.Message(c, "Порядок фотографий успешно обновлен")
}
