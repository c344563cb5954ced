package booking

import (
	"context"
	"testing"
	"time"

	"lawnly/models"
	"lawnly/services/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T) (*DefaultSessionService, *fakePropertyRepo) {
	t.Helper()
	cache := testRedis(t)
	props := newFakePropertyRepo()
	return &DefaultSessionService{
		Cache:        cache,
		Drafts:       NewRedisDraftRepository(cache),
		Pricing:      &fakePricing{total: 75},
		Properties:   props,
		RecalcWindow: 10 * time.Millisecond,
	}, props
}

func TestSessionStart_PrefillsPrimaryProperty(t *testing.T) {
	svc, props := newTestSessionService(t)
	ctx := context.Background()

	primary := &models.Property{UserID: "user-1", Address: "1 Main", City: "Austin", State: "TX", ZipCode: "78701", LotSize: 6500, IsPrimary: true, GateCode: "1234"}
	require.NoError(t, props.Create(ctx, primary))

	session, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, StepProperty, session.Step)
	assert.Equal(t, primary.ID, session.Form.PropertyID)
	assert.Equal(t, "1 Main", session.Form.Address)
	assert.Equal(t, 6500, session.Form.LotSize)
	assert.Equal(t, "1234", session.Form.GateCode)
	assert.Equal(t, models.FrequencyOneTime, session.Form.Frequency)
}

func TestSessionStart_RestoresDraftWithoutSavedProperties(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	draft := validForm()
	draft.Address = "77 Draft Street"
	require.NoError(t, svc.Drafts.Save(ctx, "user-1", draft))

	session, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "77 Draft Street", session.Form.Address)
	assert.Empty(t, session.Form.PropertyID)
}

func TestSessionStart_SavedPropertyWinsOverDraft(t *testing.T) {
	svc, props := newTestSessionService(t)
	ctx := context.Background()

	require.NoError(t, props.Create(ctx, &models.Property{UserID: "user-1", Address: "1 Main", IsPrimary: true}))
	draft := validForm()
	draft.Address = "77 Draft Street"
	require.NoError(t, svc.Drafts.Save(ctx, "user-1", draft))

	session, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "1 Main", session.Form.Address)
}

func TestSessionUpdateForm_PersistsDraftForNewProperty(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)

	form := validForm()
	_, err = svc.UpdateForm(ctx, session.SessionID, form)
	require.NoError(t, err)

	draft, err := svc.Drafts.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, form.Address, draft.Address)
}

func TestSessionUpdateForm_NoDraftWhenSavedPropertySelected(t *testing.T) {
	svc, props := newTestSessionService(t)
	ctx := context.Background()

	saved := &models.Property{UserID: "user-1", Address: "1 Main"}
	require.NoError(t, props.Create(ctx, saved))

	session, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)

	form := validForm()
	form.PropertyID = saved.ID
	_, err = svc.UpdateForm(ctx, session.SessionID, form)
	require.NoError(t, err)

	draft, err := svc.Drafts.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, draft)
}

func TestSessionUpdateForm_DebouncedBreakdownLandsInSession(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.UpdateForm(ctx, session.SessionID, validForm())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		current, err := svc.Get(ctx, session.SessionID)
		return err == nil && current.Breakdown.GrandTotal == 75
	}, time.Second, 5*time.Millisecond, "recalculated breakdown should be stored on the session")
}

func TestSessionUpdateForm_UnchangedPricingInputDoesNotRecalculate(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)

	form := validForm()
	_, err = svc.UpdateForm(ctx, session.SessionID, form)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		current, err := svc.Get(ctx, session.SessionID)
		return err == nil && current.Breakdown.GrandTotal == 75
	}, time.Second, 5*time.Millisecond)

	// A contact-only edit leaves the debouncer idle.
	svc.Pricing = &fakePricing{total: 999}
	form.SpecialInstructions = "ring twice"
	_, err = svc.UpdateForm(ctx, session.SessionID, form)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	current, err := svc.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 75.0, current.Breakdown.GrandTotal)
}

func TestStoreBreakdown_StaleAddOnSelectionNotPersisted(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)

	form := validForm()
	form.AddOnServiceIDs = []string{"addon-1", "addon-2"}
	session.Form = form
	require.NoError(t, svc.save(ctx, session))

	// Computed against an add-on selection the session has moved past.
	svc.storeBreakdown(session.SessionID, pricing.RecalcInput{
		PackageID: form.ServicePackageID,
		LotSize:   form.LotSize,
		AddOnIDs:  []string{"addon-1"},
	}, models.PriceBreakdown{GrandTotal: 999})

	current, err := svc.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Zero(t, current.Breakdown.GrandTotal)

	svc.storeBreakdown(session.SessionID, pricing.RecalcInput{
		PackageID: form.ServicePackageID,
		LotSize:   form.LotSize,
		AddOnIDs:  []string{"addon-2", "addon-1"},
	}, models.PriceBreakdown{GrandTotal: 120})

	current, err = svc.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, current.Breakdown.GrandTotal)
}

func TestSessionSelectProperty_PrefillsAndClearsDraft(t *testing.T) {
	svc, props := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)
	_, err = svc.UpdateForm(ctx, session.SessionID, validForm())
	require.NoError(t, err)

	saved := &models.Property{UserID: "user-1", Address: "9 Elm", City: "Dallas", State: "TX", ZipCode: "75201", LotSize: 12000}
	require.NoError(t, props.Create(ctx, saved))

	updated, err := svc.SelectProperty(ctx, session.SessionID, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.Form.PropertyID)
	assert.Equal(t, "9 Elm", updated.Form.Address)
	assert.Equal(t, 12000, updated.Form.LotSize)

	draft, err := svc.Drafts.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, draft)
}

func TestSessionSelectProperty_ForeignPropertyRejected(t *testing.T) {
	svc, props := newTestSessionService(t)
	ctx := context.Background()

	other := &models.Property{UserID: "someone-else"}
	require.NoError(t, props.Create(ctx, other))

	session, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.SelectProperty(ctx, session.SessionID, other.ID)
	assert.Error(t, err)
}

func TestSessionNext_AdvancesAndReportsErrors(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)

	// Empty form blocks step 1.
	current, errs, err := svc.Next(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepProperty, current.Step)
	assert.Contains(t, errs, "address")

	_, err = svc.UpdateForm(ctx, session.SessionID, validForm())
	require.NoError(t, err)

	current, errs, err = svc.Next(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, StepService, current.Step)

	// The advance survives a reload.
	reloaded, err := svc.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepService, reloaded.Step)
}

func TestSessionBack_FlooredAtFirstStep(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)

	current, err := svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepProperty, current.Step)
}

func TestSessionCancel_DiscardsSessionKeepsDraft(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)
	_, err = svc.UpdateForm(ctx, session.SessionID, validForm())
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, session.SessionID))

	_, err = svc.Get(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	draft, err := svc.Drafts.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.NotNil(t, draft, "cancelling the session keeps the draft")
}

func TestSessionGet_UnknownSession(t *testing.T) {
	svc, _ := newTestSessionService(t)

	_, err := svc.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
