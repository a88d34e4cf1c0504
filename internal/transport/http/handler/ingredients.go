package handler

import (
	"encoding/json"
	"net/http"

	"github.com/recipeshare/api/internal/application/ingredient"
	"github.com/recipeshare/api/internal/domain"
	"github.com/recipeshare/api/internal/pkg/validate"
)

// IngredientHandler handles ingredient endpoints.
type IngredientHandler struct {
	svc ingredient.Service
}

func NewIngredientHandler(svc ingredient.Service) *IngredientHandler {
	return &IngredientHandler{svc: svc}
}

func (h *IngredientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateIngredientRequest
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

func (h *IngredientHandler) List(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ingredients)
}

func (h *IngredientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid ingredient id")
		return
	}
	ing, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ing)
}

func (h *IngredientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid ingredient id")
		return
	}
	var req domain.UpdateIngredientRequest
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

func (h *IngredientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid ingredient id")
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "ingredient deleted"})
}
