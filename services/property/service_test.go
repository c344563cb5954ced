package property

import (
	"context"
	"strconv"
	"testing"

	"lawnly/models"
	"lawnly/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPropertyRepo struct {
	properties map[string]models.Property
	order      []string
	nextID     int
}

func newMemPropertyRepo() *memPropertyRepo {
	return &memPropertyRepo{properties: map[string]models.Property{}}
}

func (r *memPropertyRepo) Create(ctx context.Context, p *models.Property) error {
	r.nextID++
	p.ID = "prop-" + strconv.Itoa(r.nextID)
	r.properties[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memPropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	if p, ok := r.properties[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *memPropertyRepo) GetByUserID(ctx context.Context, userID string) ([]models.Property, error) {
	var primary, rest []models.Property
	for _, id := range r.order {
		p, ok := r.properties[id]
		if !ok || p.UserID != userID {
			continue
		}
		if p.IsPrimary {
			primary = append(primary, p)
		} else {
			rest = append(rest, p)
		}
	}
	return append(primary, rest...), nil
}

func (r *memPropertyRepo) Update(ctx context.Context, p *models.Property) error {
	r.properties[p.ID] = *p
	return nil
}

func (r *memPropertyRepo) Delete(ctx context.Context, id string) error {
	delete(r.properties, id)
	return nil
}

func (r *memPropertyRepo) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var n int64
	for _, p := range r.properties {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

func validProperty() *models.Property {
	return &models.Property{
		Address: "123 Oak Lane",
		City:    "Austin",
		State:   "TX",
		ZipCode: "78701",
		LotSize: 7000,
	}
}

func TestCreate_FirstPropertyBecomesPrimary(t *testing.T) {
	repo := newMemPropertyRepo()
	svc := &DefaultService{Properties: repo}
	ctx := context.Background()

	first := validProperty()
	require.NoError(t, svc.Create(ctx, "user-1", first))
	assert.True(t, repo.properties[first.ID].IsPrimary)

	second := validProperty()
	second.Address = "456 Pine St"
	require.NoError(t, svc.Create(ctx, "user-1", second))
	assert.False(t, repo.properties[second.ID].IsPrimary)
}

func TestCreate_ValidationUsesWizardRules(t *testing.T) {
	svc := &DefaultService{Properties: newMemPropertyRepo()}

	bad := validProperty()
	bad.State = "Texas"
	bad.LotSize = 0

	err := svc.Create(context.Background(), "user-1", bad)
	require.Error(t, err)
	fields, ok := booking.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields, "state")
	assert.Contains(t, fields, "lotSize")
}

func TestGet_OwnershipEnforced(t *testing.T) {
	repo := newMemPropertyRepo()
	svc := &DefaultService{Properties: repo}
	ctx := context.Background()

	p := validProperty()
	require.NoError(t, svc.Create(ctx, "user-1", p))

	_, err := svc.Get(ctx, "user-2", p.ID)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestUpdate_CannotChangeOwnerOrPrimary(t *testing.T) {
	repo := newMemPropertyRepo()
	svc := &DefaultService{Properties: repo}
	ctx := context.Background()

	p := validProperty()
	require.NoError(t, svc.Create(ctx, "user-1", p))

	edit := validProperty()
	edit.ID = p.ID
	edit.UserID = "intruder"
	edit.IsPrimary = false
	edit.Address = "789 Elm Ave"
	require.NoError(t, svc.Update(ctx, "user-1", edit))

	stored := repo.properties[p.ID]
	assert.Equal(t, "user-1", stored.UserID)
	assert.True(t, stored.IsPrimary)
	assert.Equal(t, "789 Elm Ave", stored.Address)
}

func TestSetPrimary_DemotesOthers(t *testing.T) {
	repo := newMemPropertyRepo()
	svc := &DefaultService{Properties: repo}
	ctx := context.Background()

	first := validProperty()
	require.NoError(t, svc.Create(ctx, "user-1", first))
	second := validProperty()
	second.Address = "456 Pine St"
	require.NoError(t, svc.Create(ctx, "user-1", second))

	require.NoError(t, svc.SetPrimary(ctx, "user-1", second.ID))
	assert.False(t, repo.properties[first.ID].IsPrimary)
	assert.True(t, repo.properties[second.ID].IsPrimary)
}

func TestDelete_PromotesNextProperty(t *testing.T) {
	repo := newMemPropertyRepo()
	svc := &DefaultService{Properties: repo}
	ctx := context.Background()

	first := validProperty()
	require.NoError(t, svc.Create(ctx, "user-1", first))
	second := validProperty()
	second.Address = "456 Pine St"
	require.NoError(t, svc.Create(ctx, "user-1", second))

	require.NoError(t, svc.Delete(ctx, "user-1", first.ID))
	assert.True(t, repo.properties[second.ID].IsPrimary)
}
