// Package recipe holds the ordered, vnum-keyed recipe registry.
package recipe

import (
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/metrics"
)

// DefaultNameCacheSize bounds the name-resolution cache
const DefaultNameCacheSize = 256

// Store is an ordered associative map from vnum to Recipe. Listing follows
// insertion order so output is deterministic.
type Store struct {
	mu      sync.RWMutex
	byVNUM  map[domain.VNUM]*domain.Recipe
	order   []domain.VNUM
	changed map[domain.VNUM]struct{}

	// name (lowercased) -> vnum; purged on every structural change or Touch
	names *lru.Cache[string, domain.VNUM]
}

// Option configures a Store
type Option func(*storeOptions)

type storeOptions struct {
	cacheSize int
}

// WithNameCacheSize sets the capacity of the name-resolution cache
func WithNameCacheSize(size int) Option {
	return func(o *storeOptions) {
		if size > 0 {
			o.cacheSize = size
		}
	}
}

// NewStore creates an empty recipe store
func NewStore(opts ...Option) *Store {
	o := storeOptions{cacheSize: DefaultNameCacheSize}
	for _, opt := range opts {
		opt(&o)
	}
	names, err := lru.New[string, domain.VNUM](o.cacheSize)
	if err != nil {
		// Only returned for non-positive sizes, which the option guards against
		panic(fmt.Sprintf("recipe: name cache: %v", err))
	}
	return &Store{
		byVNUM:  make(map[domain.VNUM]*domain.Recipe),
		changed: make(map[domain.VNUM]struct{}),
		names:   names,
	}
}

// Add registers a recipe. Fails when the vnum is unset, already present, or
// the record does not validate.
func (s *Store) Add(r *domain.Recipe) error {
	if r == nil || r.VNUM == domain.VNUMNone {
		return domain.ErrInvalidVNUM
	}
	if err := Validate(r); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byVNUM[r.VNUM]; exists {
		return fmt.Errorf("recipe %d: %w", r.VNUM, domain.ErrDuplicateVNUM)
	}
	s.byVNUM[r.VNUM] = r
	s.order = append(s.order, r.VNUM)
	s.names.Purge()
	metrics.RecipesRegistered.Set(float64(len(s.order)))
	return nil
}

// Remove deletes a recipe by vnum. Returns false, with no side effect, when
// the vnum is not registered.
func (s *Store) Remove(vnum domain.VNUM) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byVNUM[vnum]; !exists {
		return false
	}
	delete(s.byVNUM, vnum)
	delete(s.changed, vnum)
	for i, v := range s.order {
		if v == vnum {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.names.Purge()
	metrics.RecipesRegistered.Set(float64(len(s.order)))
	return true
}

// Get returns the recipe registered under vnum
func (s *Store) Get(vnum domain.VNUM) (*domain.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byVNUM[vnum]
	return r, ok
}

// GetByName resolves a recipe by name: exact case-insensitive match across
// all entries first, then prefix match. First hit in insertion order wins.
func (s *Store) GetByName(name string) (*domain.Recipe, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, false
	}

	if vnum, ok := s.names.Get(key); ok {
		if r, found := s.Get(vnum); found {
			return r, true
		}
	}

	r, ok := s.Find(key, nil)
	if ok {
		s.names.Add(key, r.VNUM)
	}
	return r, ok
}

// Resolve finds a recipe by name among those accepted by the predicate.
// The unfiltered resolution goes through the name cache; when that hit is
// rejected the filtered scan runs instead. Both give the same answer
// whenever the cached hit is accepted.
func (s *Store) Resolve(name string, accept func(*domain.Recipe) bool) (*domain.Recipe, bool) {
	if r, ok := s.GetByName(name); ok && (accept == nil || accept(r)) {
		return r, true
	}
	return s.Find(name, accept)
}

// NameCacheLen reports how many name resolutions are cached
func (s *Store) NameCacheLen() int {
	return s.names.Len()
}

// Find resolves name like GetByName but only among recipes accepted by the
// predicate. A nil predicate accepts everything. Results are not cached.
func (s *Store) Find(name string, accept func(*domain.Recipe) bool) (*domain.Recipe, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, vnum := range s.order {
		r := s.byVNUM[vnum]
		if strings.EqualFold(r.Name, name) && (accept == nil || accept(r)) {
			return r, true
		}
	}
	lower := strings.ToLower(name)
	for _, vnum := range s.order {
		r := s.byVNUM[vnum]
		if strings.HasPrefix(strings.ToLower(r.Name), lower) && (accept == nil || accept(r)) {
			return r, true
		}
	}
	return nil, false
}

// List returns every recipe in insertion order
func (s *Store) List() []*domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Recipe, 0, len(s.order))
	for _, vnum := range s.order {
		out = append(out, s.byVNUM[vnum])
	}
	return out
}

// Len returns the number of registered recipes
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Touch records that a registered recipe was modified in place and drops
// cached name resolutions.
func (s *Store) Touch(vnum domain.VNUM) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byVNUM[vnum]; !exists {
		return fmt.Errorf("recipe %d: %w", vnum, domain.ErrRecipeNotRegistered)
	}
	s.changed[vnum] = struct{}{}
	s.names.Purge()
	return nil
}

// Changed returns the vnums touched since the last ClearChanged, in
// insertion order. Persistence code uses this to decide what to save.
func (s *Store) Changed() []domain.VNUM {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.VNUM
	for _, vnum := range s.order {
		if _, ok := s.changed[vnum]; ok {
			out = append(out, vnum)
		}
	}
	return out
}

// ClearChanged empties the changed set
func (s *Store) ClearChanged() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.changed)
}

// Update applies fn to a registered recipe under the write lock and marks it
// changed when fn succeeds. Edits made through Update are never observed
// half-applied by Snapshot readers.
func (s *Store) Update(vnum domain.VNUM, fn func(r *domain.Recipe) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, exists := s.byVNUM[vnum]
	if !exists {
		return fmt.Errorf("recipe %d: %w", vnum, domain.ErrRecipeNotRegistered)
	}
	if err := fn(r); err != nil {
		return err
	}
	s.changed[vnum] = struct{}{}
	s.names.Purge()
	return nil
}

// Snapshot returns deep copies of every recipe in insertion order
func (s *Store) Snapshot() []*domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Recipe, 0, len(s.order))
	for _, vnum := range s.order {
		out = append(out, s.byVNUM[vnum].Clone())
	}
	return out
}

// SnapshotOf returns a deep copy of the recipe registered under vnum
func (s *Store) SnapshotOf(vnum domain.VNUM) (*domain.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byVNUM[vnum]
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}
