package person

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/people/backend/internal/model/person"
	"github.com/zhouzirui/people/backend/pkg/utils"
)

// Handler 人员查询的HTTP处理器
type Handler struct {
	people person.Store
}

// New 创建人员处理器
func New(people person.Store) *Handler {
	return &Handler{people: people}
}

// RegisterRoutes 注册人员相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/people", h.handleListPeople)
	r.Get("/people/{id}", h.handleGetPerson)
}

// handleListPeople 按定义顺序列出所有人员
func (h *Handler) handleListPeople(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.people.List())
}

// handleGetPerson 按ID查询单个人员
func (h *Handler) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	found, ok := h.people.FindByID(id)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "person not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, found)
}
