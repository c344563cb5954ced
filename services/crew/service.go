package crew

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	crewRepo "lawnly/database/repository/crew"
	"lawnly/models"
)

// ErrMemberNotFound is returned when a crew member id resolves to nothing.
var ErrMemberNotFound = errors.New("crew member not found")

// Service manages the crew roster used for appointment assignment.
type Service interface {
	List(ctx context.Context, includeInactive bool) ([]models.CrewMember, error)
	Get(ctx context.Context, id string) (*models.CrewMember, error)
	Create(ctx context.Context, member *models.CrewMember) error
	Update(ctx context.Context, member *models.CrewMember) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	Crew crewRepo.CrewRepository
}

// List returns the roster ordered by name.
func (s *DefaultService) List(ctx context.Context, includeInactive bool) ([]models.CrewMember, error) {
	members, err := s.Crew.List(ctx, !includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew: %w", err)
	}
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].LastName != members[j].LastName {
			return members[i].LastName < members[j].LastName
		}
		return members[i].FirstName < members[j].FirstName
	})
	return members, nil
}

// Get returns one crew member by id.
func (s *DefaultService) Get(ctx context.Context, id string) (*models.CrewMember, error) {
	member, err := s.Crew.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load crew member: %w", err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// Create validates and stores a new crew member, active by default.
func (s *DefaultService) Create(ctx context.Context, member *models.CrewMember) error {
	if err := validateMember(member); err != nil {
		return err
	}
	member.IsActive = true
	if err := s.Crew.Create(ctx, member); err != nil {
		return fmt.Errorf("failed to create crew member: %w", err)
	}
	return nil
}

// Update rewrites an existing crew member.
func (s *DefaultService) Update(ctx context.Context, member *models.CrewMember) error {
	if err := validateMember(member); err != nil {
		return err
	}
	if _, err := s.Get(ctx, member.ID); err != nil {
		return err
	}
	if err := s.Crew.Update(ctx, member); err != nil {
		return fmt.Errorf("failed to update crew member: %w", err)
	}
	return nil
}

// Deactivate takes a member off the assignable roster without losing the
// record. Past appointments keep referencing them.
func (s *DefaultService) Deactivate(ctx context.Context, id string) error {
	member, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	member.IsActive = false
	if err := s.Crew.Update(ctx, member); err != nil {
		return fmt.Errorf("failed to deactivate crew member: %w", err)
	}
	return nil
}

// Delete removes the record outright.
func (s *DefaultService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Crew.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete crew member: %w", err)
	}
	return nil
}

func validateMember(member *models.CrewMember) error {
	if strings.TrimSpace(member.FirstName) == "" {
		return models.Invalid("first name is required")
	}
	if strings.TrimSpace(member.LastName) == "" {
		return models.Invalid("last name is required")
	}
	return nil
}
