package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/config"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/db"
	transport "github.com/shaharman18/porfolio-shaharman-backend/internal/http"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/http/middleware"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/mail"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/metrics"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/repo"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/services"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := db.RunMigrations(cfg.DBURL); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	dbConn, err := db.Connect(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.EnsureAdmin(ctx, dbConn.Pool, cfg.RequestTimeout, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Error("failed to provision admin", "error", err)
		os.Exit(1)
	}

	userRepo := repo.NewUserRepo(dbConn.Pool, cfg.RequestTimeout)
	projectRepo := repo.NewProjectRepo(dbConn.Pool, cfg.RequestTimeout)
	resumeRepo := repo.NewResumeRepo(dbConn.Pool, cfg.RequestTimeout)

	var blobStore storage.Store
	if cfg.ResumeStorage == "disk" {
		blobStore = storage.NewDiskStore(cfg.UploadDir)
	} else {
		blobStore = storage.NewEmbeddedStore()
	}

	mailer, err := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.ContactFrom,
		To:       cfg.ContactTo,
	})
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}

	sessions := services.NewSessionManager(cfg.JWTSecret, cfg.SessionTTL)

	router := transport.NewRouter(transport.Dependencies{
		Config:         cfg,
		Logger:         logger,
		Sessions:       sessions,
		AuthService:    services.NewAuthService(userRepo, sessions, cfg.AdminPasscode),
		ProjectService: services.NewProjectService(projectRepo),
		ResumeService:  services.NewResumeService(resumeRepo, blobStore, cfg.MaxUploadBytes),
		ContactService: services.NewContactService(mailer),
		Metrics:        metrics.NewCollector(),
		RateLimiter:    middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "env", cfg.Env, "storage", cfg.ResumeStorage)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErrors:
		logger.Error("http server stopped unexpectedly", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env != "prod" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
