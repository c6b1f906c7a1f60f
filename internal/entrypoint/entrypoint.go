package entrypoint

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"locallibrary/internal/config"
	"locallibrary/internal/database"
	"locallibrary/internal/database/authors"
	"locallibrary/internal/database/books"
	"locallibrary/internal/database/genres"
	"locallibrary/internal/database/instances"
	http_controllers "locallibrary/internal/http"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func Run(cfg *config.Config, version string) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if _, err := os.Stat(cfg.UI.TemplatesPath); os.IsNotExist(err) {
		log.Fatal().Str("path", cfg.UI.TemplatesPath).Msg("Templates directory does not exist")
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database")
		}
	}()

	var sessionManager *http_controllers.SessionManager
	var csrfSecret []byte
	if cfg.Session.Secret != "" {
		sqlDB, err := db.DB.DB()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get SQL DB for sessions")
		}
		sessionManager, err = http_controllers.NewSessionManager(sqlDB, cfg.Session.SecureCookies)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize session manager")
		}
		csrfSecret = []byte(cfg.Session.Secret)
	} else {
		log.Warn().Msg("SESSION_SECRET not set; flash messages and CSRF protection are disabled")
	}

	routerCfg := http_controllers.RouterConfig{
		Authors:         authors.NewRepository(db.DB),
		Genres:          genres.NewRepository(db.DB),
		Books:           books.NewRepository(db.DB),
		Instances:       instances.NewRepository(db.DB),
		Health:          db,
		Version:         version,
		TemplatesPath:   cfg.UI.TemplatesPath,
		StaticPath:      cfg.UI.StaticPath,
		SessionManager:  sessionManager,
		CSRFSecret:      csrfSecret,
		SecureCookies:   cfg.Session.SecureCookies,
		ShowErrorDetail: !cfg.IsProduction(),
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
