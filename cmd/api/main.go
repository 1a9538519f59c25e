package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/educonnect/educonnect-api/api/swagger"
	"github.com/educonnect/educonnect-api/internal/handler"
	"github.com/educonnect/educonnect-api/internal/middleware"
	"github.com/educonnect/educonnect-api/internal/service"
	"github.com/educonnect/educonnect-api/internal/store"
	"github.com/educonnect/educonnect-api/pkg/config"
	"github.com/educonnect/educonnect-api/pkg/logger"
	corsmiddleware "github.com/educonnect/educonnect-api/pkg/middleware/cors"
	reqidmiddleware "github.com/educonnect/educonnect-api/pkg/middleware/requestid"
)

// @title EduConnect API
// @version 2.0.0
// @description Educational management backend: classes, students, materials, progress updates
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := store.New(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to init store", "error", err)
	}
	defer st.Close() //nolint:errcheck

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
		st = store.WithMetrics(st, metricsSvc)
	}

	validate := service.NewValidator()

	authSvc := service.NewAuthService(st, validate, logr, cfg.Auth)
	teacherSvc := service.NewTeacherService(st, validate, logr)
	classSvc := service.NewClassService(st, validate, logr)
	studentSvc := service.NewStudentService(st, validate, logr)
	materialSvc := service.NewMaterialService(st, validate, logr)
	progressSvc := service.NewProgressService(st, validate, logr)

	bootstrapCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authSvc.EnsureDemoTeacher(bootstrapCtx); err != nil {
		logr.Sugar().Warnw("failed to ensure bootstrap teacher", "error", err)
	}
	cancel()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metricsSvc != nil {
		r.Use(middleware.Metrics(metricsSvc))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := st.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if metricsSvc != nil {
		r.GET("/metrics", handler.NewMetricsHandler(metricsSvc).Prometheus)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth", handler.NewAuthHandler(authSvc).Login)

	resources := api.Group("")
	if cfg.Auth.Required {
		resources.Use(middleware.JWT(authSvc))
	}

	teacherHandler := handler.NewTeacherHandler(teacherSvc)
	resources.GET("/teachers/:id", teacherHandler.Get)
	resources.POST("/teachers", teacherHandler.Create)

	classHandler := handler.NewClassHandler(classSvc)
	resources.GET("/classes", classHandler.List)
	resources.POST("/classes", classHandler.Create)

	studentHandler := handler.NewStudentHandler(studentSvc)
	resources.GET("/students", studentHandler.List)
	resources.POST("/students", studentHandler.Create)

	materialHandler := handler.NewMaterialHandler(materialSvc)
	resources.GET("/materials", materialHandler.List)
	resources.POST("/materials", materialHandler.Create)

	progressHandler := handler.NewProgressHandler(progressSvc)
	resources.GET("/progress-updates", progressHandler.List)
	resources.POST("/progress-updates", progressHandler.Create)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "offline", cfg.Database.UseOffline)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("shutdown failed", "error", err)
	}
	logr.Info("server stopped")
}
