package http

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"miniblog/internal/handler"
	"miniblog/internal/session"
	authmw "miniblog/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	Auth     *handler.AuthHandler
	Pages    *handler.PageHandler
	Posts    *handler.PostWebHandler
	API      *handler.APIHandler
	Health   *handler.HealthHandler
	Sessions *session.Manager
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)

	optional := authmw.OptionalAuth(cfg.Sessions)
	required := authmw.RequireAuth(cfg.Sessions)
	requiredAPI := authmw.RequireAuthAPI(cfg.Sessions)

	r.Get("/health", cfg.Health.Health)

	// Public pages; viewer identity is attached when present because the
	// content depends on who is looking.
	r.With(optional).Get("/", cfg.Pages.Home)
	r.With(optional).Get("/users/{username}", cfg.Pages.PublicProfile)

	r.Route("/auth", func(r chi.Router) {
		r.Get("/register", cfg.Auth.ShowRegister)
		r.Post("/register", cfg.Auth.Register)
		r.Get("/login", cfg.Auth.ShowLogin)
		r.Post("/login", cfg.Auth.Login)
		r.Get("/logout", cfg.Auth.Logout)
	})

	// Protected browser routes - redirect to login without a session
	r.Group(func(r chi.Router) {
		r.Use(required)

		r.Get("/dashboard", cfg.Pages.Dashboard)
		r.Get("/post-history", cfg.Pages.PostHistory)
		r.Get("/feed", cfg.Pages.Feed)
		r.Get("/profile", cfg.Pages.Profile)
		r.Get("/settings", cfg.Pages.ShowSettings)
		r.Post("/settings", cfg.Pages.UpdateSettings)

		r.Get("/posts/new", cfg.Posts.ShowNew)
		r.Post("/posts", cfg.Posts.Create)
		r.Get("/posts/{id}/edit", cfg.Posts.ShowEdit)
		r.Post("/posts/{id}/edit", cfg.Posts.Edit)
		r.Post("/posts/{id}/delete", cfg.Posts.Delete)
	})

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.With(optional).Get("/posts", cfg.API.ListPosts)
		r.With(optional).Get("/posts/{id}", cfg.API.GetPost)

		r.Group(func(r chi.Router) {
			r.Use(requiredAPI)

			r.Post("/posts", cfg.API.CreatePost)
			r.Put("/posts/{id}", cfg.API.UpdatePost)
			r.Delete("/posts/{id}", cfg.API.DeletePost)
		})
	})

	return r
}
