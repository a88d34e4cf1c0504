package handler

import (
	"encoding/json"
	"net/http"

	"github.com/recipeshare/api/internal/application/stage"
	"github.com/recipeshare/api/internal/domain"
	"github.com/recipeshare/api/internal/pkg/validate"
)

// StageHandler handles stage endpoints, including the reorder
// operation.
type StageHandler struct {
	svc stage.Service
}

func NewStageHandler(svc stage.Service) *StageHandler { return &StageHandler{svc: svc} }

// Reorder opens a hole in the recipe's stage sequence: every stage with
// order >= start_order is shifted up by one. Both fields are required;
// a missing field is a 400 with no mutation performed.
func (h *StageHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req domain.ReorderStagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.RecipeID == nil || req.StartOrder == nil {
		writeError(w, http.StatusBadRequest, "recipe_id and start_order are required.")
		return
	}
	if _, err := h.svc.ReorderFrom(r.Context(), *req.RecipeID, *req.StartOrder); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Stages reordered successfully."})
}

func (h *StageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *StageHandler) List(w http.ResponseWriter, r *http.Request) {
	stages, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stages)
}

func (h *StageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid stage id")
		return
	}
	st, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *StageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid stage id")
		return
	}
	var req domain.UpdateStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *StageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid stage id")
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "stage deleted"})
}
