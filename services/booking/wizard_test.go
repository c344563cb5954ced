package booking

import (
	"testing"

	"lawnly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() models.BookingForm {
	return models.BookingForm{
		Address:          "123 Oak Lane",
		City:             "Austin",
		State:            "TX",
		ZipCode:          "78701",
		LotSize:          7000,
		ServicePackageID: "pkg-basic",
		ScheduledDate:    "2026-04-01",
		ScheduledTime:    "09:00",
		Frequency:        models.FrequencyOneTime,
	}
}

func TestNext_EmptyAddressBlocksStepOne(t *testing.T) {
	form := validForm()
	form.Address = ""
	session := &models.BookingSession{Step: StepProperty, Form: form}

	step, errs := Next(session)

	assert.Equal(t, StepProperty, step)
	assert.Equal(t, StepProperty, session.Step)
	require.Contains(t, errs, "address")
	assert.Equal(t, "Address is required", errs["address"])
}

func TestNext_ValidPropertyAdvancesToService(t *testing.T) {
	session := &models.BookingSession{Step: StepProperty, Form: validForm()}

	step, errs := Next(session)

	assert.Empty(t, errs)
	assert.Equal(t, StepService, step)
}

func TestNext_SavedPropertySkipsFieldChecks(t *testing.T) {
	session := &models.BookingSession{
		Step: StepProperty,
		Form: models.BookingForm{PropertyID: "prop-1"},
	}

	step, errs := Next(session)

	assert.Empty(t, errs)
	assert.Equal(t, StepService, step)
}

func TestNext_StopsAtReview(t *testing.T) {
	session := &models.BookingSession{Step: StepReview, Form: validForm()}

	step, errs := Next(session)

	assert.Empty(t, errs)
	assert.Equal(t, StepReview, step)
}

func TestBack_LinearAndFloored(t *testing.T) {
	session := &models.BookingSession{Step: StepSchedule}

	assert.Equal(t, StepService, Back(session))
	assert.Equal(t, StepProperty, Back(session))
	assert.Equal(t, StepProperty, Back(session))
}

func TestValidateStep_PropertyFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BookingForm)
		field  string
	}{
		{"missing city", func(f *models.BookingForm) { f.City = "" }, "city"},
		{"lowercase state", func(f *models.BookingForm) { f.State = "tx" }, "state"},
		{"bad zip", func(f *models.BookingForm) { f.ZipCode = "787" }, "zipCode"},
		{"lot too small", func(f *models.BookingForm) { f.LotSize = 50 }, "lotSize"},
		{"lot too large", func(f *models.BookingForm) { f.LotSize = 2_000_000 }, "lotSize"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			errs := ValidateStep(StepProperty, form)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateStep_ScheduleRules(t *testing.T) {
	form := validForm()
	form.ScheduledDate = "not-a-date"
	form.ScheduledTime = "07:30"
	form.Frequency = "fortnightly"

	errs := ValidateStep(StepSchedule, form)

	assert.Contains(t, errs, "scheduledDate")
	assert.Contains(t, errs, "scheduledTime")
	assert.Contains(t, errs, "frequency")
}

func TestValidateStep_ContactNeverBlocks(t *testing.T) {
	errs := ValidateStep(StepContact, models.BookingForm{})
	assert.Empty(t, errs)
}

func TestValidateForm_InstructionsLengthCap(t *testing.T) {
	form := validForm()
	long := make([]byte, MaxSpecialInstructions+1)
	for i := range long {
		long[i] = 'x'
	}
	form.SpecialInstructions = string(long)

	errs := ValidateForm(form)

	assert.Contains(t, errs, "specialInstructions")
}

func TestIsValidTimeSlot(t *testing.T) {
	assert.True(t, IsValidTimeSlot("08:00"))
	assert.True(t, IsValidTimeSlot("17:00"))
	assert.False(t, IsValidTimeSlot("18:00"))
	assert.False(t, IsValidTimeSlot("9:00"))
}
