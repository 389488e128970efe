package services

import (
	"context"
	"sync"

	"flightdesk/dispatch/internal/common"
	"flightdesk/dispatch/internal/models/gorm"
	"flightdesk/dispatch/internal/scheduling"
)

// reservationBook is an in-memory ReservationStore backed by a list of
// reservations per resource kind.
type reservationBook struct {
	mu       sync.Mutex
	aircraft []scheduling.Reservation
	crew     []scheduling.Reservation
	calls    []string
	err      error
}

func (b *reservationBook) CountConflicting(_ context.Context, kind scheduling.ResourceKind, resourceID uint, window scheduling.TimeWindow, excludeFlightID *uint) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, string(kind))
	if b.err != nil {
		return 0, b.err
	}

	list := b.aircraft
	if kind == scheduling.ResourceCrew {
		list = b.crew
	}
	var count int64
	for _, r := range list {
		if r.ConflictsWith(resourceID, window, excludeFlightID) {
			count++
		}
	}
	return count, nil
}

type mockCrewResolver struct {
	resolveFunc func(ctx context.Context, ids []uint) ([]scheduling.CrewMember, error)
	calls       int
}

func (m *mockCrewResolver) ResolveCrewMembers(ctx context.Context, ids []uint) ([]scheduling.CrewMember, error) {
	m.calls++
	return m.resolveFunc(ctx, ids)
}

// rosterOf resolves ids against a fixed set of members, dropping unknown ids.
func rosterOf(members ...scheduling.CrewMember) *mockCrewResolver {
	byID := make(map[uint]scheduling.CrewMember, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	return &mockCrewResolver{
		resolveFunc: func(_ context.Context, ids []uint) ([]scheduling.CrewMember, error) {
			var out []scheduling.CrewMember
			for _, id := range ids {
				if m, ok := byID[id]; ok {
					out = append(out, m)
				}
			}
			return out, nil
		},
	}
}

type mockCoordinateResolver struct {
	resolveFunc func(ctx context.Context, iata string) (*common.AirportCoordinate, error)
}

func (m *mockCoordinateResolver) ResolveAirportCoordinates(ctx context.Context, iata string) (*common.AirportCoordinate, error) {
	return m.resolveFunc(ctx, iata)
}

func coordinatesOf(coords ...common.AirportCoordinate) *mockCoordinateResolver {
	byCode := make(map[string]common.AirportCoordinate, len(coords))
	for _, c := range coords {
		byCode[c.IATA] = c
	}
	return &mockCoordinateResolver{
		resolveFunc: func(_ context.Context, iata string) (*common.AirportCoordinate, error) {
			c, ok := byCode[common.NormalizeIATA(iata)]
			if !ok {
				return nil, nil
			}
			return &c, nil
		},
	}
}

type mockAirportLookup struct {
	mu       sync.Mutex
	airports map[string]*gorm.Airport
	calls    int
	err      error

	// when release is set, lookups signal started and block until release is
	// closed or their ctx ends
	started chan struct{}
	release chan struct{}
}

func (m *mockAirportLookup) FindByIATA(ctx context.Context, iata string) (*gorm.Airport, error) {
	if m.release != nil {
		select {
		case m.started <- struct{}{}:
		default:
		}
		select {
		case <-m.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.airports[iata], nil
}

type mockFlightStore struct {
	flights map[uint]*gorm.Flight
	crew    map[uint][]uint
	nextID  uint
	writes  int
}

func newMockFlightStore() *mockFlightStore {
	return &mockFlightStore{
		flights: make(map[uint]*gorm.Flight),
		crew:    make(map[uint][]uint),
		nextID:  1,
	}
}

func (m *mockFlightStore) FindByID(_ context.Context, id uint) (*gorm.Flight, error) {
	f, ok := m.flights[id]
	if !ok {
		return nil, nil
	}
	copied := *f
	return &copied, nil
}

func (m *mockFlightStore) Create(_ context.Context, flight *gorm.Flight, crewIDs []uint) error {
	m.writes++
	if flight.ID == 0 {
		flight.ID = m.nextID
		m.nextID++
	}
	copied := *flight
	m.flights[flight.ID] = &copied
	m.crew[flight.ID] = crewIDs
	return nil
}

func (m *mockFlightStore) Update(_ context.Context, flight *gorm.Flight, crewIDs []uint) error {
	m.writes++
	copied := *flight
	m.flights[flight.ID] = &copied
	m.crew[flight.ID] = crewIDs
	return nil
}
