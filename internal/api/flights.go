package api

import (
	"errors"
	"net/http"
	"time"

	"flightdesk/dispatch/internal/common"
	"flightdesk/dispatch/internal/models/dtos"
	"flightdesk/dispatch/internal/scheduling"
	"flightdesk/dispatch/internal/services"
)

// ListFlightsHandler handles GET /api/v1/flights?from=&to=
// With both bounds set, only flights overlapping [from, to] are returned.
func (h *Handlers) ListFlightsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var window *scheduling.TimeWindow
		from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
		if from != "" || to != "" {
			start, err := common.ParseTimestamp(from)
			if err != nil {
				common.RespondError(w, initTime, nil, "Invalid from timestamp", http.StatusBadRequest)
				return
			}
			end, err := common.ParseTimestamp(to)
			if err != nil {
				common.RespondError(w, initTime, nil, "Invalid to timestamp", http.StatusBadRequest)
				return
			}
			win := scheduling.NewTimeWindow(start, end)
			if !win.Valid() {
				common.RespondError(w, initTime, nil, "to must be after from", http.StatusBadRequest)
				return
			}
			window = &win
		}

		flights, err := h.deps.Repo.Flights.List(r.Context(), window)
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to list flights")
			return
		}

		out := make([]dtos.FlightResponse, 0, len(flights))
		for _, f := range flights {
			out = append(out, dtos.NewFlightResponse(f))
		}
		common.RespondSuccess(w, initTime, "Flights retrieved", out)
	}
}

// GetFlightHandler handles GET /api/v1/flights/{id}
func (h *Handlers) GetFlightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		flight, err := h.deps.Repo.Flights.FindByID(r.Context(), id)
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to load flight")
			return
		}
		if flight == nil {
			common.RespondError(w, initTime, nil, "Flight not found", http.StatusNotFound)
			return
		}
		common.RespondSuccess(w, initTime, "Flight retrieved", dtos.NewFlightResponse(*flight))
	}
}

// CreateFlightHandler handles POST /api/v1/flights
// The flight is saved only if it passes creation validation.
func (h *Handlers) CreateFlightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.FlightRequest
		if err := decodeBody(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		flight, res, err := h.deps.Services.Flights.Schedule(r.Context(), req.Proposal())
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to create flight")
			return
		}
		if !res.OK {
			respondRejected(w, initTime, res)
			return
		}
		common.RespondSuccess(w, initTime, "Flight created", dtos.NewFlightResponse(*flight), http.StatusCreated)
	}
}

// UpdateFlightHandler handles PUT /api/v1/flights/{id}
func (h *Handlers) UpdateFlightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		var req dtos.FlightRequest
		if err := decodeBody(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		flight, res, err := h.deps.Services.Flights.Reschedule(r.Context(), id, req.Proposal())
		if errors.Is(err, services.ErrFlightNotFound) {
			common.RespondError(w, initTime, nil, "Flight not found", http.StatusNotFound)
			return
		}
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to update flight")
			return
		}
		if !res.OK {
			respondRejected(w, initTime, res)
			return
		}
		common.RespondSuccess(w, initTime, "Flight updated", dtos.NewFlightResponse(*flight))
	}
}

// DeleteFlightHandler handles DELETE /api/v1/flights/{id}
func (h *Handlers) DeleteFlightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		exists, err := h.deps.Repo.Flights.Exists(r.Context(), id)
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to load flight")
			return
		}
		if !exists {
			common.RespondError(w, initTime, nil, "Flight not found", http.StatusNotFound)
			return
		}

		if err := h.deps.Repo.Flights.Delete(r.Context(), id); err != nil {
			respondStoreError(w, initTime, err, "Failed to delete flight")
			return
		}
		common.RespondSuccess(w, initTime, "Flight deleted", nil)
	}
}

func respondRejected(w http.ResponseWriter, initTime time.Time, res scheduling.Result) {
	common.RespondError(w, initTime, nil, res.Reason, http.StatusBadRequest)
}
