package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/localcore/internal/core/store"
	"github.com/aussiebroadwan/localcore/pkg/coresdk"
	"github.com/aussiebroadwan/localcore/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness check returning status, uptime and version. Always 200 while the process runs.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	coresdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := coresdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness check verifying the KV store is reachable.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	coresdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	coresdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.KV) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &coresdk.HealthChecks{
			Storage: "ok",
			Backend: "mock",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Storage = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := coresdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
