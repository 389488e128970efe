package api

import (
	"net/http"
	"strconv"
	"time"

	"flightdesk/dispatch/internal/common"
	"flightdesk/dispatch/internal/models/dtos"
	"flightdesk/dispatch/internal/scheduling"

	"github.com/go-chi/chi/v5"
)

// AvailabilityHandler handles GET /api/v1/availability/{kind}/{id}?start=&end=&excludeFlightId=
// Used by the dashboard to pre-check an aircraft or crew member before submit.
func (h *Handlers) AvailabilityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		kind, ok := scheduling.ParseResourceKind(chi.URLParam(r, "kind"))
		if !ok {
			common.RespondError(w, initTime, nil, "Resource kind must be aircraft or crew", http.StatusBadRequest)
			return
		}
		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		q := r.URL.Query()
		start, err := common.ParseTimestamp(q.Get("start"))
		if err != nil {
			common.RespondError(w, initTime, nil, "Invalid start timestamp", http.StatusBadRequest)
			return
		}
		end, err := common.ParseTimestamp(q.Get("end"))
		if err != nil {
			common.RespondError(w, initTime, nil, "Invalid end timestamp", http.StatusBadRequest)
			return
		}
		window := scheduling.NewTimeWindow(start, end)
		if !window.Valid() {
			common.RespondError(w, initTime, nil, scheduling.MsgArrivalBeforeDeparture, http.StatusBadRequest)
			return
		}

		var exclude *uint
		if raw := q.Get("excludeFlightId"); raw != "" {
			n, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				common.RespondError(w, initTime, nil, "Invalid excludeFlightId", http.StatusBadRequest)
				return
			}
			flightID := uint(n)
			exclude = &flightID
		}

		available, err := h.deps.Services.Availability.IsAvailable(r.Context(), kind, id, window, exclude)
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to check availability")
			return
		}

		common.RespondSuccess(w, initTime, "Availability checked", dtos.AvailabilityResponse{
			Kind:       string(kind),
			ResourceID: id,
			Start:      window.Start,
			End:        window.End,
			Available:  available,
		})
	}
}
