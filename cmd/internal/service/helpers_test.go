package service

import (
	"dealership/cmd/internal/domain/sqlite"
	"dealership/cmd/internal/domain/sqlite/repository"
	"dealership/cmd/internal/schedule"
	"dealership/cmd/internal/utils/apierror"
	"dealership/cmd/internal/utils/validators"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"testing"
)

type testDeps struct {
	apptRepo *repository.DefaultAppointmentRepository
	invRepo  *repository.DefaultInventoryRepository
	validate *validator.Validate
	week     schedule.Week
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	db, err := sqlite.Init(sqlite.MemoryDSN)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	week := schedule.DefaultWeek()
	validate := validator.New()
	require.NoError(t, validators.Register(validate, week))

	return &testDeps{
		apptRepo: repository.NewAppointmentRepository(db),
		invRepo:  repository.NewInventoryRepository(db),
		validate: validate,
		week:     week,
	}
}

func requireKind(t *testing.T, resp apierror.ErrorResponse, status int, kind string) {
	t.Helper()
	require.NotNil(t, resp)
	apiErr, ok := resp.(*apierror.APIError)
	require.True(t, ok, "unexpected error type %T", resp)
	require.Equal(t, status, apiErr.Code(), apiErr.Message)
	require.Equal(t, kind, apiErr.Kind, apiErr.Message)
}
