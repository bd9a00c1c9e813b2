package validators

import (
	"dealership/cmd/internal/schedule"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type form struct {
	Date string `json:"date" validate:"required,calendardate"`
	Hour string `json:"hour" validate:"required,hourslot"`
	Type string `json:"type" validate:"required,vehicletype"`
	Make string `json:"make" validate:"required,vehiclemake"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, Register(v, schedule.DefaultWeek()))
	return v
}

func TestRegister_AcceptsValidForm(t *testing.T) {
	v := newValidate(t)
	err := v.Struct(&form{Date: "2025-01-07", Hour: "18:00", Type: "used", Make: "Mercedes"})
	assert.NoError(t, err)

	err = v.Struct(&form{Date: "01/07/25", Hour: "08:00", Type: "New", Make: "acura"})
	assert.NoError(t, err)
}

func TestRegister_ReportsJSONNamesAndTags(t *testing.T) {
	v := newValidate(t)
	err := v.Struct(&form{Date: "next tuesday", Hour: "19:00", Type: "Leased", Make: "Lada"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	got := map[string]string{}
	for _, fe := range verrs {
		got[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, map[string]string{
		"date": "calendardate",
		"hour": "hourslot",
		"type": "vehicletype",
		"make": "vehiclemake",
	}, got)
}

func TestRegister_RequiredBeforeCustomTags(t *testing.T) {
	v := newValidate(t)
	err := v.Struct(&form{})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 4)
	for _, fe := range verrs {
		assert.Equal(t, "required", fe.Tag(), fe.Field())
	}
}

func TestHourSlot_UsesConfiguredWeek(t *testing.T) {
	week, err := schedule.NewWeek(schedule.DefaultWeek().Start, 5, 9, 3)
	require.NoError(t, err)

	v := validator.New()
	require.NoError(t, Register(v, week))

	assert.NoError(t, v.Var("10:00", "hourslot"))
	assert.Error(t, v.Var("08:00", "hourslot"))
	assert.Error(t, v.Var("12:00", "hourslot"))
	assert.Error(t, v.Var("+10:00", "hourslot"))
}
