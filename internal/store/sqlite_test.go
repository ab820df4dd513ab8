package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plasma-forge/ellingham-cli/internal/model"
)

func testCompound(name string) model.CompoundRecord {
	return model.CompoundRecord{
		Name:         name,
		Formula:      "HfO2",
		Element:      "Hf",
		Category:     model.CategoryOxide,
		Coefficients: model.Coefficients{-1088.0, 0.1773, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 2000},
		Electrons:    4,
		PhononWork:   21,
		Custom:       true,
	}
}

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSQLite_SaveLoad(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testCompound("HfO2")))
	require.NoError(t, s.Save(ctx, testCompound("Y2O3")))

	records, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Ordered by name.
	assert.Equal(t, "HfO2", records[0].Name)
	assert.Equal(t, "Y2O3", records[1].Name)
	assert.Equal(t, model.Coefficients{-1088.0, 0.1773, 0, 0}, records[0].Coefficients)
	assert.False(t, records[0].CreatedAt.IsZero())
}

func TestSQLite_SaveUpserts(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	rec := testCompound("HfO2")
	require.NoError(t, s.Save(ctx, rec))

	rec.PhononWork = 35
	require.NoError(t, s.Save(ctx, rec))

	records, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.InDelta(t, 35, records[0].PhononWork, 1e-12)
}

func TestSQLite_SaveAll(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	batch := []model.CompoundRecord{
		testCompound("HfO2"),
		testCompound("Y2O3"),
		testCompound("La2O3"),
	}
	require.NoError(t, s.SaveAll(ctx, batch))

	// Re-importing the same batch refreshes, not duplicates.
	batch[0].PhononWork = 40
	require.NoError(t, s.SaveAll(ctx, batch))

	records, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.InDelta(t, 40, records[0].PhononWork, 1e-12)
}

func TestSQLite_Delete(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testCompound("HfO2")))
	require.NoError(t, s.Delete(ctx, "HfO2"))

	records, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLite_DeleteMissing(t *testing.T) {
	s := newTestSQLite(t)

	err := s.Delete(context.Background(), "Unobtainium")
	assert.ErrorIs(t, err, model.ErrCompoundNotFound)
}
