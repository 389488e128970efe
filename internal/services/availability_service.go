package services

import (
	"context"

	"flightdesk/dispatch/internal/scheduling"
)

// ReservationStore counts persisted flights that overlap a window for one
// aircraft or crew member.
type ReservationStore interface {
	CountConflicting(ctx context.Context, kind scheduling.ResourceKind, resourceID uint, window scheduling.TimeWindow, excludeFlightID *uint) (int64, error)
}

// AvailabilityService answers whether a resource is free for a window. It only
// reads; two concurrent callers can both see a resource as free.
type AvailabilityService struct {
	store ReservationStore
}

func NewAvailabilityService(store ReservationStore) *AvailabilityService {
	return &AvailabilityService{store: store}
}

// IsAvailable returns false when any persisted flight other than
// excludeFlightID holds resourceID during window. Store errors are returned
// as is.
func (s *AvailabilityService) IsAvailable(
	ctx context.Context,
	kind scheduling.ResourceKind,
	resourceID uint,
	window scheduling.TimeWindow,
	excludeFlightID *uint,
) (bool, error) {
	count, err := s.store.CountConflicting(ctx, kind, resourceID, window, excludeFlightID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
