package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KyKyRuZa/mariawimpro-backend/configs"
	"github.com/KyKyRuZa/mariawimpro-backend/controllers"
	"github.com/KyKyRuZa/mariawimpro-backend/middlewares"
	"github.com/KyKyRuZa/mariawimpro-backend/pkg/storage"
	"github.com/KyKyRuZa/mariawimpro-backend/repository"
	"github.com/KyKyRuZa/mariawimpro-backend/services"
)

var startedAt = time.Now()

type Deps struct {
	DB     *gorm.DB
	Config *configs.Config
	Log    *zap.Logger
	Store  storage.FileStore
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// Repositories
	adminRepo := repository.NewAdminRepository(d.DB)
	coachRepo := repository.NewCoachRepository(d.DB)
	galleryRepo := repository.NewGalleryRepository(d.DB)
	newsRepo := repository.NewNewsRepository(d.DB)
	tariffRepo := repository.NewTariffRepository(d.DB)

	// Services
	authSvc := services.NewAuthService(adminRepo, cfg.JWTSecret, cfg.JWTTTL)
	coachSvc := services.NewCoachService(coachRepo, galleryRepo, d.Store)
	gallerySvc := services.NewGalleryService(galleryRepo, coachRepo, d.Store, d.Log)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	coachCtrl := controllers.NewCoachController(coachSvc, d.Store, cfg.PublicBaseURL)
	galleryCtrl := controllers.NewGalleryController(gallerySvc, d.Store, cfg.PublicBaseURL)
	newsCtrl := controllers.NewNewsController(newsRepo)
	tariffCtrl := controllers.NewTariffController(tariffRepo)

	// Middleware
	authMw := middlewares.AuthMiddleware(cfg.JWTSecret, adminRepo)
	uploadMw := middlewares.Upload(d.Store, cfg.MaxUploadSize)

	// Лимиты по классам маршрутов; у auth считаются только неудачные попытки.
	authLimiter := middlewares.NewRateLimiter(15*time.Minute, 5, true,
		"Слишком много попыток входа. Пожалуйста, попробуйте позже.", d.Log)
	uploadLimiter := middlewares.NewRateLimiter(15*time.Minute, 10, false,
		"Слишком много загрузок. Попробуйте позже.", d.Log)
	generalLimiter := middlewares.NewRateLimiter(15*time.Minute, 100, false,
		"Слишком много запросов. Попробуйте позже.", d.Log)
	staticLimiter := middlewares.NewRateLimiter(15*time.Minute, 500, false,
		"Слишком много запросов. Попробуйте позже.", d.Log)
	healthLimiter := middlewares.NewRateLimiter(time.Minute, 10, false,
		"Слишком много запросов. Попробуйте позже.", d.Log)

	r.GET("/health", healthLimiter.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(startedAt).Seconds(),
		})
	})

	// Загруженные изображения, кэш на год.
	assets := r.Group("/assets", staticLimiter.Middleware(), func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=31536000, immutable")
		c.Header("Access-Control-Allow-Origin", "*")
		c.Next()
	})
	assets.Static("/", cfg.UploadDir)

	api := r.Group("/api", generalLimiter.Middleware())

	auth := api.Group("/auth", authLimiter.Middleware())
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
	}

	coaches := api.Group("/coaches")
	{
		coaches.GET("", coachCtrl.List)
		coaches.GET("/:id", coachCtrl.Get)
		coaches.POST("", authMw, uploadLimiter.Middleware(), uploadMw, coachCtrl.Create)
		coaches.PUT("/:id", authMw, uploadLimiter.Middleware(), uploadMw, coachCtrl.Update)
		coaches.DELETE("/:id", authMw, coachCtrl.Delete)
	}

	gallery := api.Group("/gallery", uploadLimiter.Middleware())
	{
		gallery.GET("/coach/:coachId", galleryCtrl.ListByCoach)
		gallery.GET("/:id", galleryCtrl.Get)
		gallery.POST("/coach/:coachId", authMw, uploadMw, galleryCtrl.Add)
		gallery.PUT("/:id", authMw, uploadMw, galleryCtrl.Update)
		gallery.DELETE("/:id", authMw, galleryCtrl.Delete)
		gallery.PATCH("/order", authMw, galleryCtrl.Reorder)
	}

	news := api.Group("/news")
	{
		news.GET("", newsCtrl.List)
		news.GET("/promo", newsCtrl.Promo)
		news.GET("/:id", newsCtrl.Get)
		news.POST("", authMw, newsCtrl.Create)
		news.PUT("/:id", authMw, newsCtrl.Update)
		news.DELETE("/:id", authMw, newsCtrl.Delete)
	}

	tariffs := api.Group("/tariffs")
	{
		tariffs.GET("", tariffCtrl.List)
		tariffs.GET("/category/:category", tariffCtrl.ByCategory)
		tariffs.GET("/:id", tariffCtrl.Get)
		tariffs.POST("", authMw, tariffCtrl.Create)
		tariffs.PATCH("/:id", authMw, tariffCtrl.Update)
		tariffs.PATCH("/:id/price", authMw, tariffCtrl.UpdatePrice)
		tariffs.DELETE("/:id", authMw, tariffCtrl.Delete)
	}
}
