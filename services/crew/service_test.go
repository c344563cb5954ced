package crew

import (
	"context"
	"strconv"
	"testing"

	"lawnly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCrewRepo struct {
	members map[string]models.CrewMember
	nextID  int
}

func newMemCrewRepo() *memCrewRepo {
	return &memCrewRepo{members: map[string]models.CrewMember{}}
}

func (r *memCrewRepo) Create(ctx context.Context, m *models.CrewMember) error {
	r.nextID++
	m.ID = "crew-" + strconv.Itoa(r.nextID)
	r.members[m.ID] = *m
	return nil
}

func (r *memCrewRepo) GetByID(ctx context.Context, id string) (*models.CrewMember, error) {
	if m, ok := r.members[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *memCrewRepo) List(ctx context.Context, activeOnly bool) ([]models.CrewMember, error) {
	var out []models.CrewMember
	for _, m := range r.members {
		if !activeOnly || m.IsActive {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memCrewRepo) Update(ctx context.Context, m *models.CrewMember) error {
	r.members[m.ID] = *m
	return nil
}

func (r *memCrewRepo) Delete(ctx context.Context, id string) error {
	delete(r.members, id)
	return nil
}

func TestCreate_ActivatesAndValidates(t *testing.T) {
	repo := newMemCrewRepo()
	svc := &DefaultService{Crew: repo}
	ctx := context.Background()

	assert.Error(t, svc.Create(ctx, &models.CrewMember{FirstName: "", LastName: "Rios"}))
	assert.Error(t, svc.Create(ctx, &models.CrewMember{FirstName: "Sam", LastName: " "}))

	member := &models.CrewMember{FirstName: "Sam", LastName: "Rios", Role: "technician"}
	require.NoError(t, svc.Create(ctx, member))
	assert.True(t, repo.members[member.ID].IsActive)
}

func TestList_SortedByNameAndFiltered(t *testing.T) {
	svc := &DefaultService{Crew: newMemCrewRepo()}
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &models.CrewMember{FirstName: "Sam", LastName: "Rios"}))
	require.NoError(t, svc.Create(ctx, &models.CrewMember{FirstName: "Lee", LastName: "Park"}))
	inactive := &models.CrewMember{FirstName: "Ana", LastName: "Cole"}
	require.NoError(t, svc.Create(ctx, inactive))
	require.NoError(t, svc.Deactivate(ctx, inactive.ID))

	active, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Park", active[0].LastName)
	assert.Equal(t, "Rios", active[1].LastName)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeactivate_KeepsRecord(t *testing.T) {
	repo := newMemCrewRepo()
	svc := &DefaultService{Crew: repo}
	ctx := context.Background()

	member := &models.CrewMember{FirstName: "Sam", LastName: "Rios"}
	require.NoError(t, svc.Create(ctx, member))
	require.NoError(t, svc.Deactivate(ctx, member.ID))

	got, err := svc.Get(ctx, member.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestDelete_UnknownMember(t *testing.T) {
	svc := &DefaultService{Crew: newMemCrewRepo()}
	assert.ErrorIs(t, svc.Delete(context.Background(), "nope"), ErrMemberNotFound)
}
