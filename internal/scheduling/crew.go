package scheduling

import (
	"fmt"
	"strings"
)

// CrewRole is the function a crew member performs on board.
type CrewRole string

const (
	RolePilot           CrewRole = "pilot"
	RoleCopilot         CrewRole = "copilot"
	RoleFlightAttendant CrewRole = "flightattendant"
)

// ParseCrewRole normalises a role name, case-insensitively.
func ParseCrewRole(s string) (CrewRole, bool) {
	switch r := CrewRole(strings.ToLower(strings.TrimSpace(s))); r {
	case RolePilot, RoleCopilot, RoleFlightAttendant:
		return r, true
	}
	return "", false
}

// CrewMember is a resolved roster entry.
type CrewMember struct {
	ID        uint
	Role      string
	FirstName string
	LastName  string
}

// DisplayName is "First Last", or "ID:<id>" when no name is on record.
func (c CrewMember) DisplayName() string {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name == "" {
		return CrewFallbackName(c.ID)
	}
	return name
}

// CrewFallbackName labels a crew member whose record could not be found.
func CrewFallbackName(id uint) string {
	return fmt.Sprintf("ID:%d", id)
}

// CheckRoster requires at least one pilot and one copilot among the resolved
// members. Roles compare case-insensitively; flight attendants are neither
// required nor counted. A missing pilot is reported ahead of a missing copilot.
func CheckRoster(members []CrewMember) Result {
	var pilots, copilots int
	for _, m := range members {
		switch CrewRole(strings.ToLower(m.Role)) {
		case RolePilot:
			pilots++
		case RoleCopilot:
			copilots++
		}
	}
	if pilots == 0 {
		return Fail(MsgPilotRequired)
	}
	if copilots == 0 {
		return Fail(MsgCoPilotRequired)
	}
	return Pass()
}
