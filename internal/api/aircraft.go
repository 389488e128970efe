package api

import (
	"net/http"
	"strings"
	"time"

	"flightdesk/dispatch/internal/common"
	"flightdesk/dispatch/internal/models/dtos"
	"flightdesk/dispatch/internal/models/gorm"
)

// ListAircraftHandler handles GET /api/v1/aircraft
func (h *Handlers) ListAircraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		fleet, err := h.deps.Repo.Aircraft.List(r.Context())
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to list aircraft")
			return
		}

		out := make([]dtos.AircraftResponse, 0, len(fleet))
		for _, a := range fleet {
			out = append(out, dtos.NewAircraftResponse(a))
		}
		common.RespondSuccess(w, initTime, "Aircraft retrieved", out)
	}
}

// GetAircraftHandler handles GET /api/v1/aircraft/{id}
func (h *Handlers) GetAircraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		aircraft, err := h.deps.Repo.Aircraft.FindByID(r.Context(), id)
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to load aircraft")
			return
		}
		if aircraft == nil {
			common.RespondError(w, initTime, nil, "Aircraft not found", http.StatusNotFound)
			return
		}
		common.RespondSuccess(w, initTime, "Aircraft retrieved", dtos.NewAircraftResponse(*aircraft))
	}
}

// CreateAircraftHandler handles POST /api/v1/aircraft
func (h *Handlers) CreateAircraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AircraftRequest
		if err := decodeBody(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		aircraft := &gorm.Aircraft{}
		applyAircraftRequest(aircraft, req)
		if err := h.deps.Repo.Aircraft.Create(r.Context(), aircraft); err != nil {
			respondStoreError(w, initTime, err, "Failed to create aircraft")
			return
		}
		common.RespondSuccess(w, initTime, "Aircraft created", dtos.NewAircraftResponse(*aircraft), http.StatusCreated)
	}
}

// UpdateAircraftHandler handles PUT /api/v1/aircraft/{id}
func (h *Handlers) UpdateAircraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		var req dtos.AircraftRequest
		if err := decodeBody(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		aircraft, err := h.deps.Repo.Aircraft.FindByID(r.Context(), id)
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to load aircraft")
			return
		}
		if aircraft == nil {
			common.RespondError(w, initTime, nil, "Aircraft not found", http.StatusNotFound)
			return
		}

		applyAircraftRequest(aircraft, req)
		if err := h.deps.Repo.Aircraft.Update(r.Context(), aircraft); err != nil {
			respondStoreError(w, initTime, err, "Failed to update aircraft")
			return
		}
		common.RespondSuccess(w, initTime, "Aircraft updated", dtos.NewAircraftResponse(*aircraft))
	}
}

// DeleteAircraftHandler handles DELETE /api/v1/aircraft/{id}
func (h *Handlers) DeleteAircraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		aircraft, err := h.deps.Repo.Aircraft.FindByID(r.Context(), id)
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to load aircraft")
			return
		}
		if aircraft == nil {
			common.RespondError(w, initTime, nil, "Aircraft not found", http.StatusNotFound)
			return
		}

		if err := h.deps.Repo.Aircraft.Delete(r.Context(), id); err != nil {
			respondStoreError(w, initTime, err, "Failed to delete aircraft")
			return
		}
		common.RespondSuccess(w, initTime, "Aircraft deleted", nil)
	}
}

func applyAircraftRequest(a *gorm.Aircraft, req dtos.AircraftRequest) {
	a.Registration = strings.ToUpper(strings.TrimSpace(req.Registration))
	a.Model = strings.TrimSpace(req.Model)
	a.Manufacturer = strings.TrimSpace(req.Manufacturer)
	a.SeatCapacity = req.SeatCapacity
}
