package handlers

import (
	"RestAPIFurb/internal/config"
	"RestAPIFurb/internal/metrics"
	"RestAPIFurb/internal/middleware"
	"RestAPIFurb/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	comandaService *service.ComandaService,
	m *metrics.Metrics,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	if m != nil {
		r.Use(m.Middleware)
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	// Handlers
	userHandler := NewUserHandler(userService, logger)
	comandaHandler := NewComandaHandler(comandaService, logger)

	if docs, err := apiDocs(config.BasePath); err != nil {
		logger.Errorw("api docs disabled", "error", err)
	} else {
		r.Get("/api-docs", docs)
	}

	routes := func(r chi.Router) {
		// User routes
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.With(middleware.WithAuth(userService)).Get("/protected", userHandler.Protected)
		})

		// Comanda routes
		r.Route("/comandas", func(r chi.Router) {
			r.Post("/", comandaHandler.Create)
			r.Get("/", comandaHandler.List)
			r.Get("/{id}", comandaHandler.Get)
			r.Put("/{id}", comandaHandler.Update)
			r.Delete("/{id}", comandaHandler.Delete)
		})
	}

	// пустой префикс: chi не монтирует роутер на ""
	if config.BasePath == "" {
		routes(r)
	} else {
		r.Route(config.BasePath, routes)
	}

	return &Handler{Router: r}
}
