package property

import (
	"context"
	"errors"
	"fmt"

	propertyRepo "lawnly/database/repository/property"
	"lawnly/models"
	"lawnly/services/booking"
)

// ErrPropertyNotFound is returned when an id resolves to nothing the caller
// owns.
var ErrPropertyNotFound = errors.New("property not found")

// Service manages a customer's saved properties. Every operation is scoped
// to the owning user.
type Service interface {
	List(ctx context.Context, userID string) ([]models.Property, error)
	Get(ctx context.Context, userID, propertyID string) (*models.Property, error)
	Create(ctx context.Context, userID string, property *models.Property) error
	Update(ctx context.Context, userID string, property *models.Property) error
	SetPrimary(ctx context.Context, userID, propertyID string) error
	Delete(ctx context.Context, userID, propertyID string) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	Properties propertyRepo.PropertyRepository
}

// List returns the customer's properties, primary first.
func (s *DefaultService) List(ctx context.Context, userID string) ([]models.Property, error) {
	properties, err := s.Properties.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

// Get returns one property, owner-checked.
func (s *DefaultService) Get(ctx context.Context, userID, propertyID string) (*models.Property, error) {
	property, err := s.Properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if property == nil || property.UserID != userID {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

// Create validates and stores a new property. The customer's first property
// becomes primary automatically.
func (s *DefaultService) Create(ctx context.Context, userID string, property *models.Property) error {
	if errs := validate(property); errs != nil {
		return errs
	}

	count, err := s.Properties.CountByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to count properties: %w", err)
	}

	property.UserID = userID
	property.IsPrimary = count == 0
	if err := s.Properties.Create(ctx, property); err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

// Update rewrites an owned property. Ownership and primary flag are not
// editable through this path.
func (s *DefaultService) Update(ctx context.Context, userID string, property *models.Property) error {
	if errs := validate(property); errs != nil {
		return errs
	}

	existing, err := s.Get(ctx, userID, property.ID)
	if err != nil {
		return err
	}
	property.UserID = existing.UserID
	property.IsPrimary = existing.IsPrimary

	if err := s.Properties.Update(ctx, property); err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}
	return nil
}

// SetPrimary marks one property primary and demotes the rest.
func (s *DefaultService) SetPrimary(ctx context.Context, userID, propertyID string) error {
	target, err := s.Get(ctx, userID, propertyID)
	if err != nil {
		return err
	}

	properties, err := s.Properties.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list properties: %w", err)
	}
	for i := range properties {
		p := properties[i]
		want := p.ID == target.ID
		if p.IsPrimary == want {
			continue
		}
		p.IsPrimary = want
		if err := s.Properties.Update(ctx, &p); err != nil {
			return fmt.Errorf("failed to update property: %w", err)
		}
	}
	return nil
}

// Delete removes an owned property. When the primary is deleted the next
// remaining property is promoted so the customer always has one.
func (s *DefaultService) Delete(ctx context.Context, userID, propertyID string) error {
	target, err := s.Get(ctx, userID, propertyID)
	if err != nil {
		return err
	}

	if err := s.Properties.Delete(ctx, propertyID); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	if target.IsPrimary {
		remaining, err := s.Properties.GetByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list properties: %w", err)
		}
		if len(remaining) > 0 && !remaining[0].IsPrimary {
			promoted := remaining[0]
			promoted.IsPrimary = true
			if err := s.Properties.Update(ctx, &promoted); err != nil {
				return fmt.Errorf("failed to promote property: %w", err)
			}
		}
	}
	return nil
}

// validate applies the booking wizard's property field rules so a directly
// managed property obeys the same constraints as one entered mid-booking.
func validate(property *models.Property) error {
	form := models.BookingForm{
		Address: property.Address,
		City:    property.City,
		State:   property.State,
		ZipCode: property.ZipCode,
		LotSize: property.LotSize,
	}
	if errs := booking.ValidateStep(booking.StepProperty, form); len(errs) > 0 {
		return booking.FieldErrors(errs)
	}
	return nil
}
