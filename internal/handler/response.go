package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"minisocial/internal/model"
	"minisocial/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError flattens internal error variants to the public response.
// All identity failures share one 401 body so callers cannot tell a bad
// signature from an expired token or a deleted account.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := model.APIErrorBody{
		Code:    "INTERNAL_ERROR",
		Message: "Unexpected server error",
	}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
		body.Details = apiErr.Details
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Invalid credentials"
	case errors.Is(err, model.ErrAuthMissing),
		errors.Is(err, model.ErrTokenInvalid),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrUserNotFound):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "invalid or expired credentials"
	case errors.Is(err, model.ErrUserAlreadyExists):
		status = http.StatusBadRequest
		body.Code = "ALREADY_EXISTS"
		body.Message = "Username or email already exists"
	case errors.Is(err, model.ErrPostNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Post not found"
	case errors.Is(err, model.ErrCommentNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Comment not found"
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "Invalid input"
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, model.ErrorResponse{Error: body})
}

func writeBadJSON(w http.ResponseWriter) {
	writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
}
