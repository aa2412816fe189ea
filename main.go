package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KyKyRuZa/mariawimpro-backend/configs"
	"github.com/KyKyRuZa/mariawimpro-backend/middlewares"
	"github.com/KyKyRuZa/mariawimpro-backend/pkg/logger"
	"github.com/KyKyRuZa/mariawimpro-backend/pkg/storage"
	"github.com/KyKyRuZa/mariawimpro-backend/routes"
)

func main() {
	cfg := configs.LoadConfig()

	zlog, err := logger.New(cfg.IsProduction(), cfg.LogFile)
	if err != nil {
		log.Fatalf("инициализация логгера: %v", err)
	}
	defer zlog.Sync()

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		zlog.Fatal("подключение к БД", zap.Error(err))
	}
	if err := configs.SetupDatabase(db); err != nil {
		zlog.Fatal("миграция БД", zap.Error(err))
	}

	store, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		zlog.Fatal("подготовка хранилища файлов", zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middlewares.RequestLogger(zlog))
	r.Use(middlewares.ErrorHandler(zlog, cfg.IsProduction()))
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))

	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    zlog,
		Store:  store,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	zlog.Info("сервер запущен", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := r.Run(addr); err != nil {
		zlog.Fatal("остановка сервера", zap.Error(err))
	}
}
