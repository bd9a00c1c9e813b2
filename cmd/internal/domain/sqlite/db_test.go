package sqlite

import (
	"dealership/cmd/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestInit_MigratesInMemory(t *testing.T) {
	db, err := Init("")
	require.NoError(t, err)

	for _, model := range []any{
		&entity.ServiceAppointment{},
		&entity.SalesAppointment{},
		&entity.InventoryItem{},
		&entity.FinancingOption{},
	} {
		assert.True(t, db.Migrator().HasTable(model), "%T", model)
	}

	require.NoError(t, db.Create(&entity.SalesAppointment{Customer: "Ada", Hour: "08:00", Salesman: "Zach"}).Error)

	var count int64
	require.NoError(t, db.Model(&entity.SalesAppointment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestInit_SeparateStores(t *testing.T) {
	first, err := Init(MemoryDSN)
	require.NoError(t, err)
	second, err := Init(MemoryDSN)
	require.NoError(t, err)

	require.NoError(t, first.Create(&entity.InventoryItem{Type: "New", Make: "Audi", Model: "A4", Year: "2024", VIN: "V1", Price: "1"}).Error)

	var count int64
	require.NoError(t, second.Model(&entity.InventoryItem{}).Count(&count).Error)
	assert.Zero(t, count)
}
