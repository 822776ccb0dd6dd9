package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"usersadmin/docs"
	"usersadmin/internal/cache"
	"usersadmin/internal/config"
	"usersadmin/internal/db"
	"usersadmin/internal/handler"
	"usersadmin/internal/logging"
	"usersadmin/internal/repository"
	"usersadmin/internal/router"
	"usersadmin/internal/service"
)

// @title User Service
// @version 1.0
// @description User management service backing the users admin.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	cfg := config.Load()
	log := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping users table")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.WithError(err).Warn("redis unavailable, serving without cache")
	}

	userRepo := repository.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo, cacheClient)
	userHandler := handler.NewUserHandler(userService)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, log, userHandler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		log.Infof("users API listening on %s, swagger at /swagger/index.html", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}
