package api

import (
	"net/http"
	"strings"
	"time"

	"flightdesk/dispatch/internal/common"
	"flightdesk/dispatch/internal/models/dtos"
	"flightdesk/dispatch/internal/models/gorm"
)

// SyncAirportsHandler handles POST /api/v1/admin/airports/sync
// Upserts airport data from the configured airports dataset
func (h *Handlers) SyncAirportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		loader := h.deps.Services.AirportLoader

		count, err := loader.LoadFromSource(r.Context())
		if err != nil {
			common.RespondError(w, initTime, nil, "Failed to sync airports: "+err.Error(), http.StatusBadGateway)
			return
		}

		total, err := loader.Count(r.Context())
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to count airports")
			return
		}

		common.RespondSuccess(w, initTime, "Airports synced successfully", dtos.AirportSyncResponse{
			Imported: count,
			Total:    total,
		})
	}
}

// ListAirportsHandler handles GET /api/v1/airports
func (h *Handlers) ListAirportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airports, err := h.deps.Repo.Airports.List(r.Context())
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to list airports")
			return
		}

		out := make([]dtos.AirportResponse, 0, len(airports))
		for _, a := range airports {
			out = append(out, dtos.NewAirportResponse(a))
		}
		common.RespondSuccess(w, initTime, "Airports retrieved", out)
	}
}

// GetAirportHandler handles GET /api/v1/airports/{id}
func (h *Handlers) GetAirportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		airport, err := h.deps.Repo.Airports.FindByID(r.Context(), id)
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to load airport")
			return
		}
		if airport == nil {
			common.RespondError(w, initTime, nil, "Airport not found", http.StatusNotFound)
			return
		}
		common.RespondSuccess(w, initTime, "Airport retrieved", dtos.NewAirportResponse(*airport))
	}
}

// CreateAirportHandler handles POST /api/v1/airports
func (h *Handlers) CreateAirportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirportRequest
		if err := decodeBody(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		airport := &gorm.Airport{}
		applyAirportRequest(airport, req)
		if err := h.deps.Repo.Airports.Create(r.Context(), airport); err != nil {
			respondStoreError(w, initTime, err, "Failed to create airport")
			return
		}
		h.deps.Services.Coordinates.Invalidate(airport.IATA)
		common.RespondSuccess(w, initTime, "Airport created", dtos.NewAirportResponse(*airport), http.StatusCreated)
	}
}

// UpdateAirportHandler handles PUT /api/v1/airports/{id}
func (h *Handlers) UpdateAirportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		var req dtos.AirportRequest
		if err := decodeBody(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		airport, err := h.deps.Repo.Airports.FindByID(r.Context(), id)
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to load airport")
			return
		}
		if airport == nil {
			common.RespondError(w, initTime, nil, "Airport not found", http.StatusNotFound)
			return
		}

		previous := airport.IATA
		applyAirportRequest(airport, req)
		if err := h.deps.Repo.Airports.Update(r.Context(), airport); err != nil {
			respondStoreError(w, initTime, err, "Failed to update airport")
			return
		}
		h.deps.Services.Coordinates.Invalidate(previous)
		h.deps.Services.Coordinates.Invalidate(airport.IATA)
		common.RespondSuccess(w, initTime, "Airport updated", dtos.NewAirportResponse(*airport))
	}
}

// DeleteAirportHandler handles DELETE /api/v1/airports/{id}
func (h *Handlers) DeleteAirportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		airport, err := h.deps.Repo.Airports.FindByID(r.Context(), id)
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to load airport")
			return
		}
		if airport == nil {
			common.RespondError(w, initTime, nil, "Airport not found", http.StatusNotFound)
			return
		}

		if err := h.deps.Repo.Airports.Delete(r.Context(), id); err != nil {
			respondStoreError(w, initTime, err, "Failed to delete airport")
			return
		}
		h.deps.Services.Coordinates.Invalidate(airport.IATA)
		common.RespondSuccess(w, initTime, "Airport deleted", nil)
	}
}

func applyAirportRequest(a *gorm.Airport, req dtos.AirportRequest) {
	a.IATA = common.NormalizeIATA(req.IATA)
	a.ICAO = strings.ToUpper(strings.TrimSpace(req.ICAO))
	a.Name = strings.TrimSpace(req.Name)
	a.City = strings.TrimSpace(req.City)
	a.Country = strings.TrimSpace(req.Country)
	a.Latitude = req.Latitude
	a.Longitude = req.Longitude
	a.Timezone = strings.TrimSpace(req.Timezone)
}
