package api

import (
	"net/http"
	"strconv"
	"time"

	"flightdesk/dispatch/internal/common"
)

// ArrivalForecastHandler handles GET /api/v1/forecast/arrival
// Query: departure, arrival (IATA), departureTime (RFC3339) and either
// aircraftModel or aircraftId. Responds 422 when an airport cannot be resolved.
func (h *Handlers) ArrivalForecastHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		departureIATA := common.NormalizeIATA(q.Get("departure"))
		arrivalIATA := common.NormalizeIATA(q.Get("arrival"))
		if departureIATA == "" || arrivalIATA == "" {
			common.RespondError(w, initTime, nil, "departure and arrival are required", http.StatusBadRequest)
			return
		}

		departureTime, err := common.ParseTimestamp(q.Get("departureTime"))
		if err != nil {
			common.RespondError(w, initTime, nil, "Invalid departureTime", http.StatusBadRequest)
			return
		}

		model := q.Get("aircraftModel")
		if raw := q.Get("aircraftId"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				common.RespondError(w, initTime, nil, "Invalid aircraftId", http.StatusBadRequest)
				return
			}
			aircraft, err := h.deps.Repo.Aircraft.FindByID(r.Context(), uint(id))
			if err != nil {
				respondStoreError(w, initTime, err, "Failed to load aircraft")
				return
			}
			if aircraft == nil {
				common.RespondError(w, initTime, nil, "Aircraft not found", http.StatusNotFound)
				return
			}
			model = aircraft.Model
		}

		estimate, ok := h.deps.Services.Forecast.EstimateArrival(r.Context(), departureIATA, arrivalIATA, model, departureTime)
		if !ok {
			common.RespondError(w, initTime, nil, "Arrival time cannot be estimated for "+departureIATA+"-"+arrivalIATA, http.StatusUnprocessableEntity)
			return
		}
		common.RespondSuccess(w, initTime, "Arrival estimated", estimate)
	}
}
