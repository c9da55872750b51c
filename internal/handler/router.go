package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	gql "github.com/graphql-go/graphql"

	"github.com/zhouzirui/people/backend/internal/handler/graphql"
	"github.com/zhouzirui/people/backend/internal/handler/person"
	personModel "github.com/zhouzirui/people/backend/internal/model/person"
	"github.com/zhouzirui/people/backend/pkg/utils"
)

// Options tunes the router.
type Options struct {
	AllowedOrigins []string
	// Schema is nil when the GraphQL endpoint is disabled.
	Schema *gql.Schema
}

// NewRouter wires HTTP routes to the people store.
func NewRouter(people personModel.Store, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"people": people.Len(),
		})
	})

	personHandler := person.New(people)

	r.Route("/api", func(api chi.Router) {
		personHandler.RegisterRoutes(api)

		if opts.Schema != nil {
			graphql.New(*opts.Schema).RegisterRoutes(api)
		}
	})

	return r
}
