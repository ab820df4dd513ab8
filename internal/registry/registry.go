// Package registry holds the in-memory compound registry: the builtin JANAF
// dataset, an optional on-disk dataset file, and user-registered custom
// compounds persisted through a store.
package registry

import (
	"context"
	"os"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/plasma-forge/ellingham-cli/internal/model"
)

// Store persists custom compounds. The registry is the only writer; builtin
// records never reach the store.
type Store interface {
	Load(ctx context.Context) ([]model.CompoundRecord, error)
	Save(ctx context.Context, rec model.CompoundRecord) error
	Delete(ctx context.Context, name string) error
}

// snapshot is an immutable view of the registry. Reads never lock: lookups go
// against the snapshot current at call time, and writers swap in a complete
// replacement, so a partially updated registry is never visible.
type snapshot struct {
	byName map[string]*model.CompoundRecord
	order  []string
}

// Registry is the constructed-once compound registry. Evaluation paths read
// concurrently without coordination; Register and Remove serialize on a
// writer mutex and replace the snapshot wholesale.
type Registry struct {
	current atomic.Pointer[snapshot]
	writeMu sync.Mutex
	store   Store // optional
}

// Option configures registry construction.
type Option func(*options)

type options struct {
	datasetPath string
	store       Store
}

// WithDatasetFile merges a YAML dataset file over the builtin table. A
// missing file is not an error; records failing validation are skipped.
func WithDatasetFile(path string) Option {
	return func(o *options) { o.datasetPath = path }
}

// WithStore attaches a custom-compound store. Stored records are merged at
// construction and registration writes through.
func WithStore(s Store) Option {
	return func(o *options) { o.store = s }
}

// New builds the registry from the builtin dataset plus configured sources.
func New(ctx context.Context, opts ...Option) (*Registry, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	records := Builtin()

	if o.datasetPath != "" {
		fromFile, err := loadDatasetFile(o.datasetPath)
		if err != nil {
			return nil, err
		}
		records = append(records, fromFile...)
	}

	if o.store != nil {
		stored, err := o.store.Load(ctx)
		if err != nil {
			return nil, eris.Wrap(err, "registry: load custom compounds")
		}
		for i := range stored {
			stored[i].Custom = true
		}
		records = append(records, stored...)
	}

	r := &Registry{store: o.store}
	r.current.Store(buildSnapshot(records))

	zap.L().Info("registry: loaded",
		zap.Int("compounds", len(r.current.Load().order)),
		zap.String("dataset_file", o.datasetPath),
		zap.Bool("store_attached", o.store != nil),
	)
	return r, nil
}

func buildSnapshot(records []model.CompoundRecord) *snapshot {
	s := &snapshot{byName: make(map[string]*model.CompoundRecord, len(records))}
	for i := range records {
		rec := records[i]
		if _, dup := s.byName[rec.Name]; !dup {
			s.order = append(s.order, rec.Name)
		}
		s.byName[rec.Name] = &rec
	}
	sort.Strings(s.order)
	return s
}

func loadDatasetFile(path string) ([]model.CompoundRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "registry: read dataset %s", path)
	}

	var doc struct {
		Compounds []model.CompoundRecord `yaml:"compounds"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrapf(err, "registry: parse dataset %s", path)
	}

	valid := doc.Compounds[:0]
	for _, rec := range doc.Compounds {
		if err := rec.Validate(); err != nil {
			zap.L().Warn("registry: skipping invalid dataset record",
				zap.String("name", rec.Name),
				zap.Error(err),
			)
			continue
		}
		valid = append(valid, rec)
	}
	return valid, nil
}

// Get returns the record for the given name.
func (r *Registry) Get(name string) (*model.CompoundRecord, error) {
	if rec, ok := r.current.Load().byName[name]; ok {
		return rec, nil
	}
	return nil, eris.Wrapf(model.ErrCompoundNotFound, "%q", name)
}

// List returns summaries of every compound, sorted by name.
func (r *Registry) List() []model.Summary {
	snap := r.current.Load()
	out := make([]model.Summary, 0, len(snap.order))
	for _, name := range snap.order {
		out = append(out, snap.byName[name].Summary())
	}
	return out
}

// ListByCategory returns summaries filtered to one category.
func (r *Registry) ListByCategory(cat model.Category) []model.Summary {
	var out []model.Summary
	for _, s := range r.List() {
		if s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}

// Register validates and inserts a custom compound, writing through to the
// attached store. On any validation failure the registry is left untouched
// and the full field-level details are returned.
func (r *Registry) Register(ctx context.Context, rec model.CompoundRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	snap := r.current.Load()
	if existing, ok := snap.byName[rec.Name]; ok && !existing.Custom {
		verr := &model.ValidationError{Name: rec.Name}
		verr.Add("name", "conflicts with a builtin compound")
		return verr
	}

	rec.Custom = true
	if r.store != nil {
		if err := r.store.Save(ctx, rec); err != nil {
			return eris.Wrapf(err, "registry: persist %q", rec.Name)
		}
	}

	r.current.Store(snap.with(rec))
	zap.L().Info("registry: compound registered", zap.String("name", rec.Name))
	return nil
}

// Remove deletes a custom compound from the registry and the attached store.
// Builtin records are read-only.
func (r *Registry) Remove(ctx context.Context, name string) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	snap := r.current.Load()
	rec, ok := snap.byName[name]
	if !ok {
		return eris.Wrapf(model.ErrCompoundNotFound, "%q", name)
	}
	if !rec.Custom {
		return eris.Errorf("registry: %q is a builtin compound and cannot be removed", name)
	}

	if r.store != nil {
		if err := r.store.Delete(ctx, name); err != nil {
			return eris.Wrapf(err, "registry: delete %q", name)
		}
	}

	r.current.Store(snap.without(name))
	zap.L().Info("registry: compound removed", zap.String("name", name))
	return nil
}

func (s *snapshot) with(rec model.CompoundRecord) *snapshot {
	records := s.records()
	replaced := false
	for i := range records {
		if records[i].Name == rec.Name {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, rec)
	}
	return buildSnapshot(records)
}

func (s *snapshot) without(name string) *snapshot {
	records := s.records()
	kept := records[:0]
	for _, rec := range records {
		if rec.Name != name {
			kept = append(kept, rec)
		}
	}
	return buildSnapshot(kept)
}

func (s *snapshot) records() []model.CompoundRecord {
	out := make([]model.CompoundRecord, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, *s.byName[name])
	}
	return out
}
