package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"minisocial/internal/middleware"
	"minisocial/internal/model"
	"minisocial/internal/service"
	"minisocial/pkg/apierror"
)

type PostHandler struct {
	service *service.PostService
}

func NewPostHandler(service *service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	account, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadJSON(w)
		return
	}

	post, err := h.service.Create(r.Context(), account.ID, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.Get(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	account, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadJSON(w)
		return
	}

	comment, err := h.service.AddComment(r.Context(), chi.URLParam(r, "postID"), account.ID, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (h *PostHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.ListComments(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}
