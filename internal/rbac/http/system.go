package http

import (
	"net/http"
	"time"

	"github.com/pmguardian/guardian/internal/rbac/store"
	"github.com/pmguardian/guardian/pkg/httpx"
	"github.com/pmguardian/guardian/pkg/rbacsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness Probe
//	@Description	Always returns 200 OK while the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	rbacsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, rbacsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Probe
//	@Description	Returns 200 when the record store is reachable, 503 otherwise.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	rbacsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	rbacsdk.HealthResponse	"status, uptime, version, checks - not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &rbacsdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, rbacsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

// ConfigHandler godoc
//
//	@Summary		Runtime Configuration
//	@Description	Echoes the non-secret runtime configuration of this deployment.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	rbacsdk.ConfigResponse	"runtime configuration"
//	@Router			/config [get].
func ConfigHandler(cfg rbacsdk.ConfigResponse) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, cfg)
	}
}

// VersionHandler godoc
//
//	@Summary		Build Version
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	rbacsdk.VersionResponse	"version"
//	@Router			/version [get].
func VersionHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, rbacsdk.VersionResponse{Version: version})
	}
}
