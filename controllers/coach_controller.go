package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KyKyRuZa/mariawimpro-backend/entity"
	"github.com/KyKyRuZa/mariawimpro-backend/middlewares"
	"github.com/KyKyRuZa/mariawimpro-backend/pkg/resp"
	"github.com/KyKyRuZa/mariawimpro-backend/pkg/storage"
	"github.com/KyKyRuZa/mariawimpro-backend/services"
	"github.com/KyKyRuZa/mariawimpro-backend/utils"
)

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// coachView — строка тренера плюс вычисленная абсолютная ссылка на фото.
type coachView struct {
	entity.Coach
	PhotoURL string `json:"photoUrl"`
}

type CoachController struct {
	coachService *services.CoachService
	store        storage.FileStore
	baseURL      string
}

func NewCoachController(svc *services.CoachService, store storage.FileStore, baseURL string) *CoachController {
	return &CoachController{coachService: svc, store: store, baseURL: baseURL}
}

func (cc *CoachController) view(c *gin.Context, coach *entity.Coach) coachView {
	return coachView{Coach: *coach, PhotoURL: utils.AssetURL(c, cc.baseURL, coach.Photo)}
}

// discard убирает файл, загруженный в рамках неудавшегося запроса,
// чтобы в хранилище не оставалось сирот.
func (cc *CoachController) discard(photo string) {
	if photo != "" {
		_ = cc.store.Remove(photo)
	}
}

// GET /api/coaches
func (cc *CoachController) List(c *gin.Context) {
	coaches, err := cc.coachService.List()
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при получении тренеров")
		return
	}
	views := make([]coachView, 0, len(coaches))
	for i := range coaches {
		views = append(views, cc.view(c, &coaches[i]))
	}
	resp.OK(c, views)
}

// GET /api/coaches/:id
func (cc *CoachController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		resp.NotFound(c, "Тренер не найден")
		return
	}
	coach, err := cc.coachService.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Тренер не найден")
		return
	}
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при получении тренера")
		return
	}
	resp.OK(c, cc.view(c, coach))
}

// POST /api/coaches (multipart, файл "photo" обязателен)
func (cc *CoachController) Create(c *gin.Context) {
	photo := middlewares.UploadedPhoto(c)
	if photo == "" {
		resp.BadRequest(c, "Изображение обязательно для загрузки")
		return
	}

	var req struct {
		FullName       string `form:"fullName"`
		Education      string `form:"education"`
		Specialization string `form:"specialization"`
		Merits         string `form:"merits"`
		Experience     *int   `form:"experience"`
		Description    string `form:"description"`
	}
	if err := c.ShouldBind(&req); err != nil {
		cc.discard(photo)
		resp.BadRequest(c, "Неверный формат данных")
		return
	}

	if strings.TrimSpace(req.FullName) == "" ||
		strings.TrimSpace(req.Education) == "" ||
		strings.TrimSpace(req.Specialization) == "" ||
		strings.TrimSpace(req.Merits) == "" ||
		strings.TrimSpace(req.Description) == "" ||
		req.Experience == nil {
		cc.discard(photo)
		resp.BadRequest(c, "Все поля обязательны для заполнения")
		return
	}

	coach := &entity.Coach{
		FullName:       req.FullName,
		Photo:          photo,
		Education:      req.Education,
		Specialization: req.Specialization,
		Merits:         req.Merits,
		Experience:     *req.Experience,
		Description:    req.Description,
	}
	if err := cc.coachService.Create(coach); err != nil {
		cc.discard(photo)
		resp.ServerError(c, "Ошибка сервера при создании тренера")
		return
	}

	resp.Created(c, "Тренер успешно создан", cc.view(c, coach))
}

// PUT /api/coaches/:id (multipart, файл "photo" необязателен)
func (cc *CoachController) Update(c *gin.Context) {
	photo := middlewares.UploadedPhoto(c)

	id, ok := parseID(c, "id")
	if !ok {
		cc.discard(photo)
		resp.NotFound(c, "Тренер не найден")
		return
	}

	var req struct {
		FullName       *string `form:"fullName"`
		Education      *string `form:"education"`
		Specialization *string `form:"specialization"`
		Merits         *string `form:"merits"`
		Experience     *int    `form:"experience"`
		Description    *string `form:"description"`
	}
	if err := c.ShouldBind(&req); err != nil {
		cc.discard(photo)
		resp.BadRequest(c, "Неверный формат данных")
		return
	}

	coach, err := cc.coachService.Update(id, services.CoachUpdate{
		FullName:       req.FullName,
		Education:      req.Education,
		Specialization: req.Specialization,
		Merits:         req.Merits,
		Experience:     req.Experience,
		Description:    req.Description,
		Photo:          photo,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cc.discard(photo)
		resp.NotFound(c, "Тренер не найден")
		return
	}
	if err != nil {
		cc.discard(photo)
		resp.ServerError(c, "Ошибка сервера при обновлении тренера")
		return
	}

	resp.OKMessage(c, "Тренер успешно обновлен", cc.view(c, coach))
}

// DELETE /api/coaches/:id
func (cc *CoachController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		resp.NotFound(c, "Тренер не найден")
		return
	}
	err := cc.coachService.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "Тренер не найден")
		return
	}
	if err != nil {
		resp.ServerError(c, "Ошибка сервера при удалении тренера")
		return
	}
	resp.Message(c, "Тренер успешно удален")
}
