package handler

import (
	"net/http"

	"minisocial/internal/service"
)

type MediaHandler struct {
	service *service.MediaService
}

func NewMediaHandler(service *service.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

func (h *MediaHandler) Presign(w http.ResponseWriter, r *http.Request) {
	presigned, err := h.service.PresignUpload(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, presigned)
}
