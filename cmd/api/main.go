package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-site/internal/core/cache"
	"portfolio-site/internal/core/config"
	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/core/server"
	carouseladapters "portfolio-site/internal/features/carousel/adapters"
	carouselhandler "portfolio-site/internal/features/carousel/handler"
	carouselservice "portfolio-site/internal/features/carousel/service"
	githubadapters "portfolio-site/internal/features/github/adapters"
	githubhandler "portfolio-site/internal/features/github/handler"
	githubservice "portfolio-site/internal/features/github/service"
	profileadapters "portfolio-site/internal/features/profile/adapters"
	"portfolio-site/internal/features/profile/domain"
	profilehandler "portfolio-site/internal/features/profile/handler"
	profileservice "portfolio-site/internal/features/profile/service"

	"go.uber.org/zap"
)

//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../docs/swagger --outputTypes go --parseInternal

const shutdownTimeout = 10 * time.Second

// @title Portfolio Site API
// @version 1.0
// @description Portfolio data, GitHub profile card and testimonial carousel.
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Invalid Redis configuration", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Warn("Redis unreachable, continuing without shared cache", zap.Error(err))
	}
	cancelPing()

	// Profile
	profileSvc := profileservice.NewProfileService(profileadapters.NewFileRepository(cfg.Profile.Path))
	profile, err := profileSvc.Get(context.Background())
	if err != nil {
		l.Fatal("Failed to load profile", zap.String("path", cfg.Profile.Path), zap.Error(err))
	}

	// Carousel
	events := carouseladapters.NewBroadcaster()
	mirror := carouseladapters.NewRedisMirror(redisCache)
	carousels := carouselservice.NewCarouselService(mirror,
		carouselservice.WithRenderer(carouseladapters.Fanout{events, mirror}),
		carouselservice.WithStickyPause(cfg.Carousel.StickyPause),
	)
	registerTestimonials := func(p *domain.Profile) {
		if err := registerTestimonialCarousel(carousels, p, cfg.Carousel.Interval()); err != nil {
			l.Warn("Testimonial carousel not started", zap.Error(err))
		}
	}
	registerTestimonials(profile)
	profileSvc.OnReload(registerTestimonials)

	// GitHub
	githubUser := cfg.GitHub.Username
	if githubUser == "" {
		githubUser = profile.Personal.GitHubUsername
	}
	cardProvider := githubadapters.NewCachedProvider(
		githubadapters.NewGitHubAdapter(cfg.GitHub, cfg.Proxy.Settings()),
		redisCache,
		cfg.GitHub.CacheTTL(),
	)
	githubSvc := githubservice.NewGitHubService(cardProvider, githubUser)

	srv := server.New(cfg)
	srv.AddHealthCheck(redisCache)
	srv.Mount(
		profilehandler.NewProfileHandler(profileSvc),
		githubhandler.NewGitHubHandler(githubSvc),
		carouselhandler.NewCarouselHandler(carousels, events),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	case s := <-sig:
		l.Info("Shutdown signal received", zap.String("signal", s.String()))
	}

	// Streams end first so Shutdown does not wait on open SSE connections.
	carousels.Shutdown()
	events.Close()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		l.Error("Graceful shutdown failed", zap.Error(err))
	}
}
