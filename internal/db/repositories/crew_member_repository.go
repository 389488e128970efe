package repositories

import (
	"context"
	"errors"
	"fmt"

	"flightdesk/dispatch/internal/models/gorm"
	"flightdesk/dispatch/internal/scheduling"

	gormlib "gorm.io/gorm"
)

type CrewMemberRepository struct {
	db *gormlib.DB
}

func NewCrewMemberRepository(db *gormlib.DB) *CrewMemberRepository {
	return &CrewMemberRepository{db: db}
}

// FindByID returns nil, nil when the crew member does not exist
func (r *CrewMemberRepository) FindByID(ctx context.Context, id uint) (*gorm.CrewMember, error) {
	var member gorm.CrewMember

	err := r.db.WithContext(ctx).First(&member, id).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

// List returns crew ordered by last name, optionally filtered by role
func (r *CrewMemberRepository) List(ctx context.Context, role string) ([]gorm.CrewMember, error) {
	var crew []gorm.CrewMember
	q := r.db.WithContext(ctx).Order("last_name, first_name")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	err := q.Find(&crew).Error
	return crew, err
}

// ResolveCrewMembers loads the given ids in input order. Ids with no record
// are left out rather than reported; duplicates collapse to one entry.
func (r *CrewMemberRepository) ResolveCrewMembers(ctx context.Context, ids []uint) ([]scheduling.CrewMember, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []gorm.CrewMember
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve crew members: %w", err)
	}

	byID := make(map[uint]gorm.CrewMember, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	resolved := make([]scheduling.CrewMember, 0, len(rows))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		row, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		resolved = append(resolved, scheduling.CrewMember{
			ID:        row.ID,
			Role:      row.Role,
			FirstName: row.FirstName,
			LastName:  row.LastName,
		})
	}
	return resolved, nil
}

func (r *CrewMemberRepository) Create(ctx context.Context, member *gorm.CrewMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *CrewMemberRepository) Update(ctx context.Context, member *gorm.CrewMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete removes a crew member unless they are rostered on a flight
func (r *CrewMemberRepository) Delete(ctx context.Context, id uint) error {
	var refs int64
	if err := r.db.WithContext(ctx).Model(&gorm.FlightCrewMember{}).Where("crew_member_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrInUse
	}
	return r.db.WithContext(ctx).Delete(&gorm.CrewMember{}, id).Error
}
