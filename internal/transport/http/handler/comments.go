package handler

import (
	"encoding/json"
	"net/http"

	"github.com/recipeshare/api/internal/application/comment"
	"github.com/recipeshare/api/internal/domain"
	"github.com/recipeshare/api/internal/pkg/validate"
	"github.com/recipeshare/api/internal/transport/http/middleware"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	svc comment.Service
}

func NewCommentHandler(svc comment.Service) *CommentHandler { return &CommentHandler{svc: svc} }

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.AuthorIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.Create(r.Context(), authorID, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid comment id")
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.AuthorIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid comment id")
		return
	}
	var req domain.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.svc.Update(r.Context(), authorID, id, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.AuthorIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid comment id")
		return
	}
	if err := h.svc.Delete(r.Context(), authorID, id); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "comment deleted"})
}
