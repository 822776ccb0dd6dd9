package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"usersadmin/internal/api"
	"usersadmin/internal/config"
	"usersadmin/internal/handler"
	"usersadmin/internal/logging"
	"usersadmin/internal/router"
	"usersadmin/internal/web"
)

func main() {
	cfg := config.Load()
	log := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	usersAPI := api.NewClient(cfg.APIBaseURL, nil)
	pageHandler := handler.NewPageHandler(usersAPI)

	e := echo.New()
	e.HideBanner = true
	router.RegisterAdmin(e, log, renderer, pageHandler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		addr := ":" + cfg.AdminPort
		log.Infof("users admin listening on %s, backend %s", addr, cfg.APIBaseURL)
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
