package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"finance-toolkit/config"
	httpLayer "finance-toolkit/http"
	"finance-toolkit/logging"
	"finance-toolkit/repository"
	"finance-toolkit/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logging.New("info", "console")
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	sessionRepo, closeRepo := newSessionRepository(cfg, log)
	defer closeRepo()

	calculator := service.NewCalculator(service.NewFormatter())
	markdown := service.NewMarkdown()

	sessions := httpLayer.NewSessionManager(sessionRepo, cfg.Session.CookieName, cfg.Session.TTL, log)
	pageHandler := httpLayer.NewPageHandler(
		calculator,
		markdown,
		sessions,
		httpLayer.Author{Name: cfg.Author.Name, URL: cfg.Author.URL},
		log,
	)
	calculateHandler := httpLayer.NewCalculateHandler(calculator)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr: cfg.Addr,
		Handler: httpLayer.NewRouter(httpLayer.RouterDeps{
			Pages:       pageHandler,
			Calculate:   calculateHandler,
			Sessions:    sessions,
			RateLimiter: rateLimiter,
			Log:         log,
		}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("💰 finance toolkit listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("error starting server")
		return
	case <-quit:
		log.Info().Msg("shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server exited")
}

// newSessionRepository uses Redis when configured and reachable, and falls
// back to memory otherwise.
func newSessionRepository(cfg config.Config, log zerolog.Logger) (repository.SessionRepository, func()) {
	if cfg.Redis.Addr == "" {
		return newMemorySessions(cfg)
	}

	redisRepo := repository.NewRedisSessionRepository(repository.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Session.TTL,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisRepo.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, keeping sessions in memory")
		redisRepo.Close()
		return newMemorySessions(cfg)
	}

	log.Info().Str("addr", cfg.Redis.Addr).Msg("sessions stored in redis")
	return redisRepo, func() {
		if err := redisRepo.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}

func newMemorySessions(cfg config.Config) (repository.SessionRepository, func()) {
	repo := repository.NewSessionRepositoryMemory(cfg.Session.TTL)
	return repo, func() { repo.Close() }
}
