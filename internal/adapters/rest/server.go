package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	core_port "github.com/Akergez/2572371-six-cities-4/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps lists everything the router is assembled from. Metrics and
// Gatherer are optional.
type RouterDeps struct {
	Logger             core_port.LoggerPort
	Auth               *AuthMiddleware
	OfferLoader        *OfferMiddleware
	Favorites          *FavoritesHandler
	Offers             *OffersHandler
	Comments           *CommentsHandler
	Users              *UsersHandler
	Metrics            *Metrics
	Gatherer           prometheus.Gatherer
	CorsAllowedOrigins []string
}

// NewRouter builds the HTTP routes.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(middleware.Recoverer)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		ExposedHeaders:   []string{"X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	auth := deps.Auth
	requireOffer := deps.OfferLoader.RequireOffer

	r.Route("/favorites", func(r chi.Router) {
		r.With(auth.Authenticate).Get("/", deps.Favorites.GetFavorites)
		// status is validated first, then the caller, then the offer
		r.With(RequireFavoriteStatus, auth.Authenticate, requireOffer).
			Post("/{offerId}/{status}", deps.Favorites.ToggleFavorite)
	})

	r.Route("/offers", func(r chi.Router) {
		r.With(auth.OptionalAuthenticate).Get("/", deps.Offers.ListOffers)
		r.With(auth.Authenticate).Post("/", deps.Offers.CreateOffer)
		r.With(auth.OptionalAuthenticate, requireOffer).Get("/{offerId}", deps.Offers.GetOffer)
	})

	r.Route("/comments/{offerId}", func(r chi.Router) {
		r.With(requireOffer).Get("/", deps.Comments.ListComments)
		r.With(auth.Authenticate, requireOffer).Post("/", deps.Comments.CreateComment)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", deps.Users.Register)
		r.Post("/login", deps.Users.Login)
		r.With(auth.Authenticate).Get("/login", deps.Users.CheckAuth)
		r.With(auth.Authenticate).Delete("/logout", deps.Users.Logout)
		r.With(auth.Authenticate).Post("/avatar", deps.Users.UpdateAvatar)
	})

	return r
}

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string, handler http.Handler, baseLogger core_port.LoggerPort) *Server {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start blocks until the server stops. A graceful Stop is not an error.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
