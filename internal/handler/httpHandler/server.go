// Package httpHandler exposes the catalog over JSON/HTTP for the browser
// front end.
package httpHandler

import (
	"context"
	"net/http"

	"file-catalog/internal/service/catalogService"
	"file-catalog/pkg/logger"
	"file-catalog/pkg/metrics"
	"file-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// maxUploadMemory bounds the part of a multipart upload kept in memory;
// the rest spills to temporary files.
const maxUploadMemory = 32 << 20

// Tokens authenticates requests and revokes tokens on logout.
type Tokens interface {
	middleware.Authenticator
	Revoke(ctx context.Context, token string) error
}

type Server struct {
	service *catalogService.CatalogService
	tokens  Tokens
	router  *chi.Mux
}

func NewServer(service *catalogService.CatalogService, tokens Tokens, log *logger.Logger, m *metrics.Metrics) *Server {
	s := &Server{
		service: service,
		tokens:  tokens,
		router:  chi.NewRouter(),
	}
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(middleware.Logger(log, m))
	s.router.Use(chimw.Recoverer)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	s.router.Handle("/metrics", m.Handler())

	s.router.Route("/api", func(r chi.Router) {
		r.Use(middleware.HTTPAuth(tokens))

		r.Post("/auth/logout", s.handleLogout)

		r.Get("/items", s.handleListItems)
		r.Post("/items", s.handleAddItem)
		r.Route("/items/{itemID}", func(r chi.Router) {
			r.Get("/", s.handleGetItem)
			r.Patch("/", s.handleRenameItem)
			r.Delete("/", s.handleDeleteItem)
			r.Put("/visibility", s.handleSetVisibility)
			r.Put("/subscription", s.handleSetSubscribed)
			r.Post("/subscription/toggle", s.handleToggleSubscription)
			r.Get("/download", s.handleDownload)

			r.Post("/versions", s.handleAddVersion)
			r.Put("/versions/{versionID}/current", s.handleSetCurrentVersion)
			r.Delete("/versions/{versionID}", s.handleDeleteVersion)
			r.Get("/versions/{versionID}/content", s.handleVersionContent)
		})

		r.Get("/users", s.handleListUsers)
		r.Get("/notifications", s.handleNotifications)

		r.Get("/ui", s.handleUIState)
		r.Put("/ui/selection", s.handleSelectItem)
		r.Put("/ui/add-dialog", s.handleSetAddDialog)
		r.Put("/ui/admin", s.handleSetAdmin)
	})
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
