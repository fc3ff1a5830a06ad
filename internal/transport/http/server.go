package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"

	"miniblog/internal/config"
	"miniblog/internal/database"
	"miniblog/internal/handler"
	"miniblog/internal/redis"
	"miniblog/internal/repository"
	"miniblog/internal/service"
	"miniblog/internal/session"
	"miniblog/internal/view"
)

// Run wires the application together and serves HTTP until the listener
// fails.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.MigrationsPath); err != nil {
		log.Printf("Warning: migrations not applied: %v", err)
	}

	store, err := newSessionStore(cfg)
	if err != nil {
		return err
	}
	sessions := session.NewManager(store, cfg.SessionTTL)

	views, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, userRepo)
	feedService := service.NewFeedService(postRepo, userRepo)

	router := NewRouter(RouterConfig{
		Auth:     handler.NewAuthHandler(userService, sessions, views),
		Pages:    handler.NewPageHandler(userService, postService, feedService, views),
		Posts:    handler.NewPostWebHandler(postService, userService, views),
		API:      handler.NewAPIHandler(postService, feedService),
		Health:   handler.NewHealthHandler(db),
		Sessions: sessions,
	})

	addr := ":" + cfg.ServerPort
	log.Printf("Starting server on %s (sessions: %s)", addr, cfg.SessionStore)

	return stdhttp.ListenAndServe(addr, router)
}

// newSessionStore selects the session backend from configuration: Redis when
// configured, otherwise in-process memory.
func newSessionStore(cfg *config.Config) (session.Store, error) {
	if cfg.SessionStore == "redis" {
		client, err := redis.NewClient(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := client.Ping(context.Background()); err != nil {
			return nil, fmt.Errorf("failed to reach redis: %w", err)
		}
		return session.NewRedisStore(client.Client), nil
	}

	log.Println("Using in-memory session store (sessions are lost on restart)")
	return session.NewMemoryStore(), nil
}
