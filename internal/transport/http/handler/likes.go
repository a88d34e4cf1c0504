package handler

import (
	"net/http"

	"github.com/recipeshare/api/internal/application/social"
	"github.com/recipeshare/api/internal/domain"
	"github.com/recipeshare/api/internal/transport/http/middleware"
)

// LikeHandler handles like counts and like/unlike on recipes and
// comments.
type LikeHandler struct {
	svc social.Service
}

func NewLikeHandler(svc social.Service) *LikeHandler { return &LikeHandler{svc: svc} }

func (h *LikeHandler) RecipeLikes(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.AuthorIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid recipe id")
		return
	}
	summary, err := h.svc.RecipeLikes(r.Context(), id, authorID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *LikeHandler) CommentLikes(w http.ResponseWriter, r *http.Request) {
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
	summary, err := h.svc.CommentLikes(r.Context(), id, authorID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *LikeHandler) LikeRecipe(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, domain.LikeTargetRecipe, true)
}

func (h *LikeHandler) UnlikeRecipe(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, domain.LikeTargetRecipe, false)
}

func (h *LikeHandler) LikeComment(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, domain.LikeTargetComment, true)
}

func (h *LikeHandler) UnlikeComment(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, domain.LikeTargetComment, false)
}

func (h *LikeHandler) mutate(w http.ResponseWriter, r *http.Request, target domain.LikeTarget, like bool) {
	authorID, ok := middleware.AuthorIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var err error
	if like {
		err = h.svc.Like(r.Context(), target, id, authorID)
	} else {
		err = h.svc.Unlike(r.Context(), target, id, authorID)
	}
	if err != nil {
		httpError(w, err)
		return
	}
	msg := "liked"
	if !like {
		msg = "unliked"
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: msg})
}
