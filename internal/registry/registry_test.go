package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/plasma-forge/ellingham-cli/internal/model"
)

func init() {
	// Replace global logger with a no-op to avoid nil pointer panics in tests.
	zap.ReplaceGlobals(zap.NewNop())
}

// fakeStore records store traffic in memory.
type fakeStore struct {
	records map[string]model.CompoundRecord
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]model.CompoundRecord{}}
}

func (s *fakeStore) Load(ctx context.Context) ([]model.CompoundRecord, error) {
	out := make([]model.CompoundRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	return out, nil
}

func (s *fakeStore) Save(ctx context.Context, rec model.CompoundRecord) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records[rec.Name] = rec
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, name string) error {
	delete(s.records, name)
	return nil
}

func customRecord(name string) model.CompoundRecord {
	return model.CompoundRecord{
		Name:         name,
		Formula:      "HfO2",
		Element:      "Hf",
		Category:     model.CategoryOxide,
		Coefficients: model.Coefficients{-1088.0, 0.1773, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 2000},
		Electrons:    4,
		PhononWork:   21,
	}
}

func TestNew_Builtin(t *testing.T) {
	r, err := New(context.Background())
	require.NoError(t, err)

	rec, err := r.Get("TiO2")
	require.NoError(t, err)
	assert.Equal(t, "Ti", rec.Element)
	assert.False(t, rec.Custom)

	_, err = r.Get("Unobtainium")
	assert.ErrorIs(t, err, model.ErrCompoundNotFound)

	list := r.List()
	assert.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Name, list[i].Name, "list must be sorted")
	}
}

func TestListByCategory(t *testing.T) {
	r, err := New(context.Background())
	require.NoError(t, err)

	nitrides := r.ListByCategory(model.CategoryNitride)
	require.NotEmpty(t, nitrides)
	for _, s := range nitrides {
		assert.Equal(t, model.CategoryNitride, s.Category)
	}
}

func TestRegister(t *testing.T) {
	st := newFakeStore()
	r, err := New(context.Background(), WithStore(st))
	require.NoError(t, err)

	rec := customRecord("HfO2")
	require.NoError(t, r.Register(context.Background(), rec))

	got, err := r.Get("HfO2")
	require.NoError(t, err)
	assert.True(t, got.Custom)
	assert.Contains(t, st.records, "HfO2")
}

func TestRegister_InvalidLeavesRegistryUntouched(t *testing.T) {
	r, err := New(context.Background())
	require.NoError(t, err)
	before := len(r.List())

	rec := customRecord("Bad")
	rec.Electrons = 0
	rec.Formula = ""

	err = r.Register(context.Background(), rec)
	require.Error(t, err)

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)

	assert.Len(t, r.List(), before)
	_, err = r.Get("Bad")
	assert.ErrorIs(t, err, model.ErrCompoundNotFound)
}

func TestRegister_BuiltinConflict(t *testing.T) {
	r, err := New(context.Background())
	require.NoError(t, err)

	rec := customRecord("TiO2")
	err = r.Register(context.Background(), rec)
	require.Error(t, err)

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)

	// The builtin record is untouched.
	got, err := r.Get("TiO2")
	require.NoError(t, err)
	assert.False(t, got.Custom)
}

func TestRegister_ReplacesCustom(t *testing.T) {
	st := newFakeStore()
	r, err := New(context.Background(), WithStore(st))
	require.NoError(t, err)

	rec := customRecord("HfO2")
	require.NoError(t, r.Register(context.Background(), rec))

	rec.PhononWork = 30
	require.NoError(t, r.Register(context.Background(), rec))

	got, err := r.Get("HfO2")
	require.NoError(t, err)
	assert.InDelta(t, 30, got.PhononWork, 1e-12)
}

func TestRemove(t *testing.T) {
	st := newFakeStore()
	r, err := New(context.Background(), WithStore(st))
	require.NoError(t, err)

	require.NoError(t, r.Register(context.Background(), customRecord("HfO2")))
	require.NoError(t, r.Remove(context.Background(), "HfO2"))

	_, err = r.Get("HfO2")
	assert.ErrorIs(t, err, model.ErrCompoundNotFound)
	assert.NotContains(t, st.records, "HfO2")
}

func TestRemove_Builtin(t *testing.T) {
	r, err := New(context.Background())
	require.NoError(t, err)

	err = r.Remove(context.Background(), "TiO2")
	require.Error(t, err)

	_, err = r.Get("TiO2")
	assert.NoError(t, err)
}

func TestRemove_NotFound(t *testing.T) {
	r, err := New(context.Background())
	require.NoError(t, err)

	err = r.Remove(context.Background(), "Unobtainium")
	assert.ErrorIs(t, err, model.ErrCompoundNotFound)
}

func TestNew_StoredRecordsMerged(t *testing.T) {
	st := newFakeStore()
	st.records["HfO2"] = customRecord("HfO2")

	r, err := New(context.Background(), WithStore(st))
	require.NoError(t, err)

	got, err := r.Get("HfO2")
	require.NoError(t, err)
	assert.True(t, got.Custom)
}

func TestNew_DatasetFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.yaml")

	doc := `compounds:
  - name: HfO2
    formula: HfO2
    element: Hf
    category: oxide
    coefficients: [-1088.0, 0.1773, 0, 0]
    temp_range: {min: 298, max: 2000}
    electrons: 4
    phonon_work: 21
  - name: Broken
    formula: ""
    category: oxide
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	r, err := New(context.Background(), WithDatasetFile(path))
	require.NoError(t, err)

	// Valid record merged; invalid record skipped.
	_, err = r.Get("HfO2")
	assert.NoError(t, err)
	_, err = r.Get("Broken")
	assert.ErrorIs(t, err, model.ErrCompoundNotFound)
}

func TestNew_DatasetFileMissing(t *testing.T) {
	r, err := New(context.Background(), WithDatasetFile(filepath.Join(t.TempDir(), "absent.yaml")))
	require.NoError(t, err)
	assert.NotEmpty(t, r.List())
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r, err := New(context.Background())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = r.Register(context.Background(), customRecord("HfO2"))
			_ = r.Remove(context.Background(), "HfO2")
		}
	}()

	for i := 0; i < 2000; i++ {
		_, _ = r.Get("TiO2")
		_ = r.List()
	}
	<-done
}
