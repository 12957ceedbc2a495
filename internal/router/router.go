package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"minisocial/internal/config"
	"minisocial/internal/handler"
	"minisocial/internal/middleware"
)

type Handlers struct {
	Auth   *handler.AuthHandler
	Post   *handler.PostHandler
	Media  *handler.MediaHandler
	Health *handler.HealthHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, handlers Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", handlers.Health.Check)

	r.Route("/auth", func(auth chi.Router) {
		auth.Use(middleware.Timeout(cfg.RequestTimeout))

		auth.Post("/register", handlers.Auth.Register)
		auth.Post("/login", handlers.Auth.Login)
		auth.With(authMiddleware.RequireAuth).Get("/me", handlers.Auth.Me)
	})

	r.Route("/posts", func(posts chi.Router) {
		posts.Use(middleware.Timeout(cfg.RequestTimeout))

		posts.Get("/", handlers.Post.List)
		posts.With(authMiddleware.RequireAuth).Post("/", handlers.Post.Create)
		posts.Get("/{postID}", handlers.Post.Get)
		posts.Get("/{postID}/comments", handlers.Post.ListComments)
		posts.With(authMiddleware.RequireAuth).Post("/{postID}/comments", handlers.Post.CreateComment)
	})

	r.With(middleware.Timeout(cfg.RequestTimeout), authMiddleware.RequireAuth).
		Post("/media/presign", handlers.Media.Presign)

	return r
}
