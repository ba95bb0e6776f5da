package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/localcore/internal/core/service"
	"github.com/aussiebroadwan/localcore/internal/core/store"
	"github.com/aussiebroadwan/localcore/pkg/httpx"
	"github.com/aussiebroadwan/localcore/pkg/slogx"
)

// writeServiceError maps service and store errors onto status codes and
// error codes. Anything unrecognised is a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		httpx.WriteError(w, http.StatusUnauthorized, "not_authenticated", "No identity is signed in")
	case errors.Is(err, service.ErrInvalidCode):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_code", "The confirmation code is not valid")
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_credentials", err.Error())
	case errors.Is(err, service.ErrUnsupportedOperation):
		httpx.WriteError(w, http.StatusBadRequest, "unsupported_operation", err.Error())
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Not found")
	case errors.Is(err, service.ErrOrphanExpenses):
		httpx.WriteError(w, http.StatusConflict, "orphan_expenses", err.Error())
	case errors.Is(err, service.ErrInvalidVariables),
		errors.Is(err, service.ErrInvalidKey),
		errors.Is(err, service.ErrInvalidSession),
		errors.Is(err, service.ErrInvalidMember),
		errors.Is(err, service.ErrDuplicateMember),
		errors.Is(err, service.ErrInvalidPayer),
		errors.Is(err, service.ErrInvalidAmount):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, context.Canceled):
		// Client went away; nobody is reading the response.
		slogx.FromContext(r.Context()).Debug("request cancelled")
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Internal server error")
	}
}
