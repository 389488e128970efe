package api

import (
	"encoding/json"
	"net/http"
	"time"

	"flightdesk/dispatch/internal/models/dtos"
)

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Verifies the server, database and cache are reachable.
// @Tags Misc
// @Success 200 {object} dtos.HealthCheckResponse
// @Failure 503 {object} dtos.HealthCheckResponse
// @Router /healthCheck [get]
func (h *Handlers) HealthCheckHandler(upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]dtos.ServiceStatus)

		pgstatus := "ok"
		pgDetails := "Database Connected"
		if err := h.deps.SQL.PingContext(r.Context()); err != nil {
			pgstatus = "down"
			pgDetails = err.Error()
		}
		services["database"] = dtos.ServiceStatus{
			Status:  pgstatus,
			Details: pgDetails,
		}

		cacheStatus := "ok"
		cacheDetails := "Cache reachable"
		if err := h.deps.Services.Cache.Ping(); err != nil {
			cacheStatus = "down"
			cacheDetails = err.Error()
		}
		services["cache"] = dtos.ServiceStatus{
			Status:  cacheStatus,
			Details: cacheDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		uptime := time.Since(upSince).Round(time.Second).String()

		resp := dtos.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			UpSince:  upSince.UTC(),
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		if overallStatus != "ok" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
