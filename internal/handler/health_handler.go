package handler

import (
	"context"
	"net/http"

	"minisocial/internal/model"
	"minisocial/pkg/apierror"
)

type healthChecker interface {
	Health(ctx context.Context) error
}

type namedCheck struct {
	name  string
	check healthChecker
}

type HealthHandler struct {
	checks []namedCheck
}

func NewHealthHandler(db healthChecker, docs healthChecker, objs healthChecker) *HealthHandler {
	return &HealthHandler{checks: []namedCheck{
		{name: "postgres", check: db},
		{name: "mongo", check: docs},
		{name: "s3", check: objs},
	}}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	for _, c := range h.checks {
		if err := c.check.Health(r.Context()); err != nil {
			writeError(w, apierror.New("UNAVAILABLE", c.name+" is unreachable", err.Error(), http.StatusServiceUnavailable))
			return
		}
	}

	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "ok"})
}
