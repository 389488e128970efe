package services

import (
	"context"

	"flightdesk/dispatch/internal/scheduling"
)

// CrewResolver loads crew records for ids. Ids without a record are left out
// of the result.
type CrewResolver interface {
	ResolveCrewMembers(ctx context.Context, ids []uint) ([]scheduling.CrewMember, error)
}

type CrewCompositionService struct {
	resolver CrewResolver
}

func NewCrewCompositionService(resolver CrewResolver) *CrewCompositionService {
	return &CrewCompositionService{resolver: resolver}
}

// ValidateComposition checks that the roster has at least one pilot and one
// copilot. An empty roster fails without touching the resolver.
func (s *CrewCompositionService) ValidateComposition(ctx context.Context, crewIDs []uint) (scheduling.Result, error) {
	res, _, err := s.resolveAndCheck(ctx, crewIDs)
	return res, err
}

func (s *CrewCompositionService) resolveAndCheck(ctx context.Context, crewIDs []uint) (scheduling.Result, []scheduling.CrewMember, error) {
	if len(crewIDs) == 0 {
		return scheduling.Fail(scheduling.MsgCrewEmpty), nil, nil
	}

	members, err := s.resolver.ResolveCrewMembers(ctx, crewIDs)
	if err != nil {
		return scheduling.Result{}, nil, err
	}
	return scheduling.CheckRoster(members), members, nil
}
