package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	propertyRepo "lawnly/database/repository/property"
	"lawnly/models"
	"lawnly/services/pricing"
	"lawnly/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionKeyPrefix namespaces wizard session keys in the cache.
const SessionKeyPrefix = "bookingSession:"

// DefaultSessionTTL bounds how long an untouched wizard session survives.
const DefaultSessionTTL = 30 * time.Minute

// SessionService drives the server-side wizard session: step transitions,
// draft persistence, and debounced price recalculation.
type SessionService interface {
	Start(ctx context.Context, userID string) (*models.BookingSession, error)
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	UpdateForm(ctx context.Context, sessionID string, form models.BookingForm) (*models.BookingSession, error)
	SelectProperty(ctx context.Context, sessionID, propertyID string) (*models.BookingSession, error)
	Next(ctx context.Context, sessionID string) (*models.BookingSession, map[string]string, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	Cache      *redis.Client
	Drafts     DraftRepository
	Pricing    pricing.Service
	Properties propertyRepo.PropertyRepository
	TTL        time.Duration
	// RecalcWindow overrides the debounce window; zero means the default.
	RecalcWindow time.Duration

	mu      sync.Mutex
	recalcs map[string]*pricing.Recalculator
}

func (s *DefaultSessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultSessionTTL
}

// Start creates a new wizard session. When the customer already has saved
// properties the primary one prefills step 1; otherwise any persisted draft
// is restored so a reload does not lose progress.
func (s *DefaultSessionService) Start(ctx context.Context, userID string) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Step:      StepProperty,
		Form:      models.BookingForm{Frequency: models.FrequencyOneTime},
	}

	properties, err := s.Properties.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved properties: %w", err)
	}

	if len(properties) > 0 {
		// GetByUserID sorts primary first.
		prefillProperty(&session.Form, &properties[0])
	} else if draft, err := s.Drafts.Get(ctx, userID); err == nil && draft != nil {
		session.Form = *draft
		if session.Form.Frequency == "" {
			session.Form.Frequency = models.FrequencyOneTime
		}
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get retrieves a live session by id.
func (s *DefaultSessionService) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.load(ctx, sessionID)
}

// UpdateForm replaces the session's form. While a brand-new property is
// being described the draft is persisted on every change. Any change to the
// package, lot size, or add-on selection schedules a debounced breakdown
// recalculation.
func (s *DefaultSessionService) UpdateForm(ctx context.Context, sessionID string, form models.BookingForm) (*models.BookingSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	pricingChanged := pricingInputChanged(session.Form, form)
	session.Form = form

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	if !form.UsesSavedProperty() {
		if err := s.Drafts.Save(ctx, session.UserID, form); err != nil {
			utils.GetLogger().Warn("failed to persist booking draft", zap.Error(err))
		}
	}

	if pricingChanged && form.ServicePackageID != "" && form.LotSize > 0 {
		s.recalculator(sessionID).Trigger(context.WithoutCancel(ctx), pricing.RecalcInput{
			PackageID: form.ServicePackageID,
			LotSize:   form.LotSize,
			AddOnIDs:  form.AddOnServiceIDs,
		})
	}
	return session, nil
}

// SelectProperty prefills step 1 from a saved property and clears the
// draft; drafts only track brand-new property entry.
func (s *DefaultSessionService) SelectProperty(ctx context.Context, sessionID, propertyID string) (*models.BookingSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	property, err := s.Properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if property == nil || property.UserID != session.UserID {
		return nil, fmt.Errorf("property %s not found", propertyID)
	}

	prefillProperty(&session.Form, property)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	if err := s.Drafts.Clear(ctx, session.UserID); err != nil {
		utils.GetLogger().Warn("failed to clear booking draft", zap.Error(err))
	}

	if session.Form.ServicePackageID != "" && session.Form.LotSize > 0 {
		s.recalculator(sessionID).Trigger(context.WithoutCancel(ctx), pricing.RecalcInput{
			PackageID: session.Form.ServicePackageID,
			LotSize:   session.Form.LotSize,
			AddOnIDs:  session.Form.AddOnServiceIDs,
		})
	}
	return session, nil
}

// Next validates the current step and advances when clean. The returned
// map carries the blocking field errors otherwise.
func (s *DefaultSessionService) Next(ctx context.Context, sessionID string) (*models.BookingSession, map[string]string, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	_, errs := Next(session)
	if err := s.save(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, errs, nil
}

// Back moves one step back.
func (s *DefaultSessionService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	Back(session)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Cancel discards the session. The draft survives so a new session can
// restore it.
func (s *DefaultSessionService) Cancel(ctx context.Context, sessionID string) error {
	s.dropRecalculator(sessionID)
	if err := s.Cache.Del(ctx, SessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to discard booking session: %w", err)
	}
	return nil
}

func (s *DefaultSessionService) load(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, SessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}

	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultSessionService) save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, SessionKeyPrefix+session.SessionID, data, s.ttl()).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

// recalculator returns the per-session debouncer, creating it on first use.
// Its sink writes the computed breakdown back into the cached session.
func (s *DefaultSessionService) recalculator(sessionID string) *pricing.Recalculator {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recalcs == nil {
		s.recalcs = make(map[string]*pricing.Recalculator)
	}
	if r, ok := s.recalcs[sessionID]; ok {
		return r
	}

	r := pricing.NewRecalculator(s.RecalcWindow,
		func(ctx context.Context, input pricing.RecalcInput) (*models.PriceBreakdown, error) {
			return s.Pricing.CalculatePrice(ctx, input.PackageID, input.LotSize, input.AddOnIDs)
		},
		func(input pricing.RecalcInput, breakdown *models.PriceBreakdown, err error) {
			if err != nil {
				utils.GetLogger().Warn("price recalculation failed",
					zap.String("sessionID", sessionID), zap.Error(err))
				return
			}
			s.storeBreakdown(sessionID, input, *breakdown)
		},
	)
	s.recalcs[sessionID] = r
	return r
}

func (s *DefaultSessionService) dropRecalculator(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.recalcs[sessionID]; ok {
		r.Stop()
		delete(s.recalcs, sessionID)
	}
}

// storeBreakdown persists a completed recalculation, unless the session's
// pricing input has moved on since the computation was triggered.
func (s *DefaultSessionService) storeBreakdown(sessionID string, input pricing.RecalcInput, breakdown models.PriceBreakdown) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return
	}
	if session.Form.ServicePackageID != input.PackageID || session.Form.LotSize != input.LotSize ||
		!sameAddOnSet(session.Form.AddOnServiceIDs, input.AddOnIDs) {
		return
	}
	session.Breakdown = breakdown
	if err := s.save(ctx, session); err != nil {
		utils.GetLogger().Warn("failed to store recalculated breakdown",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}

func prefillProperty(form *models.BookingForm, property *models.Property) {
	form.PropertyID = property.ID
	form.Address = property.Address
	form.City = property.City
	form.State = property.State
	form.ZipCode = property.ZipCode
	form.LotSize = property.LotSize
	form.HasBackyard = property.HasBackyard
	form.HasDogs = property.HasDogs
	form.GateCode = property.GateCode
}

func pricingInputChanged(prev, next models.BookingForm) bool {
	if prev.ServicePackageID != next.ServicePackageID || prev.LotSize != next.LotSize {
		return true
	}
	return !sameAddOnSet(prev.AddOnServiceIDs, next.AddOnServiceIDs)
}

func sameAddOnSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, id := range a {
		seen[id] = true
	}
	for _, id := range b {
		if !seen[id] {
			return false
		}
	}
	return true
}
