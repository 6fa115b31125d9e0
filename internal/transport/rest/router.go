package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/vocabflash-backend/internal/config"
	"github.com/heartmarshall/vocabflash-backend/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Vocabulary    *VocabularyHandler
	Learning      *LearningHandler
	Health        *HealthHandler
	Auth          middleware.Middleware
	UploadLimiter *middleware.RateLimiter
	UploadsPerMin int
	CORS          config.CORSConfig
	Logger        *slog.Logger
}

// NewRouter builds the HTTP surface. Probes are served without auth; every
// /api route runs behind the bearer token middleware.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.CORS(d.CORS))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(d.Auth)
		r.Use(middleware.Logger(d.Logger))

		r.Route("/lists", func(r chi.Router) {
			r.Post("/", d.Vocabulary.CreateList)
			r.Get("/", d.Vocabulary.GetLists)

			r.Route("/{listID}", func(r chi.Router) {
				r.Get("/", d.Vocabulary.GetList)
				r.Delete("/", d.Vocabulary.DeleteList)
				r.Post("/items", d.Vocabulary.AddItems)
				r.Get("/items", d.Vocabulary.GetItems)
				r.Get("/stats", d.Learning.GetStats)
				r.Get("/records", d.Learning.GetRecords)

				r.Route("/upload", func(r chi.Router) {
					if d.UploadLimiter != nil && d.UploadsPerMin > 0 {
						r.Use(d.UploadLimiter.Limit(d.UploadsPerMin))
					}
					r.Post("/text", d.Vocabulary.UploadText)
					r.Post("/pdf", d.Vocabulary.UploadPDF)
				})
			})
		})

		r.Delete("/items/{itemID}", d.Vocabulary.DeleteItem)
		r.Post("/items/{itemID}/check", d.Learning.CheckAnswer)
		r.Post("/records", d.Learning.RecordResult)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
