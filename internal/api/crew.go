package api

import (
	"net/http"
	"time"

	"flightdesk/dispatch/internal/common"
	"flightdesk/dispatch/internal/models/dtos"
	"flightdesk/dispatch/internal/models/gorm"
	"flightdesk/dispatch/internal/scheduling"
)

// ListCrewHandler handles GET /api/v1/crew?role=pilot
func (h *Handlers) ListCrewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		role := r.URL.Query().Get("role")
		if role != "" {
			parsed, ok := scheduling.ParseCrewRole(role)
			if !ok {
				common.RespondError(w, initTime, nil, "Unknown crew role "+role, http.StatusBadRequest)
				return
			}
			role = string(parsed)
		}

		crew, err := h.deps.Repo.Crew.List(r.Context(), role)
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to list crew")
			return
		}

		out := make([]dtos.CrewMemberResponse, 0, len(crew))
		for _, c := range crew {
			out = append(out, dtos.NewCrewMemberResponse(c))
		}
		common.RespondSuccess(w, initTime, "Crew retrieved", out)
	}
}

// GetCrewMemberHandler handles GET /api/v1/crew/{id}
func (h *Handlers) GetCrewMemberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		member, err := h.deps.Repo.Crew.FindByID(r.Context(), id)
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to load crew member")
			return
		}
		if member == nil {
			common.RespondError(w, initTime, nil, "Crew member not found", http.StatusNotFound)
			return
		}
		common.RespondSuccess(w, initTime, "Crew member retrieved", dtos.NewCrewMemberResponse(*member))
	}
}

// CreateCrewMemberHandler handles POST /api/v1/crew
func (h *Handlers) CreateCrewMemberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CrewMemberRequest
		if err := decodeBody(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		member := &gorm.CrewMember{FirstName: req.FirstName, LastName: req.LastName, Role: req.Role}
		if err := h.deps.Repo.Crew.Create(r.Context(), member); err != nil {
			respondStoreError(w, initTime, err, "Failed to create crew member")
			return
		}
		common.RespondSuccess(w, initTime, "Crew member created", dtos.NewCrewMemberResponse(*member), http.StatusCreated)
	}
}

// UpdateCrewMemberHandler handles PUT /api/v1/crew/{id}
func (h *Handlers) UpdateCrewMemberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		var req dtos.CrewMemberRequest
		if err := decodeBody(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		member, err := h.deps.Repo.Crew.FindByID(r.Context(), id)
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to load crew member")
			return
		}
		if member == nil {
			common.RespondError(w, initTime, nil, "Crew member not found", http.StatusNotFound)
			return
		}

		member.FirstName = req.FirstName
		member.LastName = req.LastName
		member.Role = req.Role
		if err := h.deps.Repo.Crew.Update(r.Context(), member); err != nil {
			respondStoreError(w, initTime, err, "Failed to update crew member")
			return
		}
		common.RespondSuccess(w, initTime, "Crew member updated", dtos.NewCrewMemberResponse(*member))
	}
}

// DeleteCrewMemberHandler handles DELETE /api/v1/crew/{id}
func (h *Handlers) DeleteCrewMemberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		member, err := h.deps.Repo.Crew.FindByID(r.Context(), id)
		if err != nil {
			respondStoreError(w, initTime, err, "Failed to load crew member")
			return
		}
		if member == nil {
			common.RespondError(w, initTime, nil, "Crew member not found", http.StatusNotFound)
			return
		}

		if err := h.deps.Repo.Crew.Delete(r.Context(), id); err != nil {
			respondStoreError(w, initTime, err, "Failed to delete crew member")
			return
		}
		common.RespondSuccess(w, initTime, "Crew member deleted", nil)
	}
}
