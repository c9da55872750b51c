package graphql

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	gql "github.com/graphql-go/graphql"

	"github.com/zhouzirui/people/backend/internal/graph"
	"github.com/zhouzirui/people/backend/pkg/utils"
)

// maxBodyBytes caps a single GraphQL request body.
const maxBodyBytes = 1 << 20

// Handler GraphQL查询的HTTP处理器
type Handler struct {
	schema gql.Schema
}

// New 创建GraphQL处理器
func New(schema gql.Schema) *Handler {
	return &Handler{schema: schema}
}

// RegisterRoutes 注册GraphQL路由，GET 与 POST 均可
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/graphql", h.handleGet)
	r.Post("/graphql", h.handlePost)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := graph.Request{
		Query:         q.Get("query"),
		OperationName: q.Get("operationName"),
	}

	if raw := q.Get("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "variables must be a JSON object")
			return
		}
	}

	h.execute(w, r, req)
}

func (h *Handler) handlePost(w http.ResponseWriter, r *http.Request) {
	var req graph.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.execute(w, r, req)
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, req graph.Request) {
	if req.Query == "" {
		utils.RespondError(w, http.StatusBadRequest, "query is required")
		return
	}

	result := graph.Execute(r.Context(), h.schema, req)
	if result.HasErrors() {
		log.Printf("[graphql] query returned %d error(s): %v", len(result.Errors), result.Errors)
	}

	utils.RespondJSON(w, http.StatusOK, result)
}
