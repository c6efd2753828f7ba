package listing

import (
	"errors"
	"sync"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
)

// ErrNoMoreResults signals that an appended page came back empty. It is a
// sentinel for the caller, not a failure.
var ErrNoMoreResults = errors.New("no more results")

// Store holds the current page and the accumulated load-more list.
// Derived views read from the current page and never mutate stored state.
type Store struct {
	mu          sync.RWMutex
	current     []deals.Deal
	accumulated []deals.Deal
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{}
}

// ReplacePage makes records the current page and resets the accumulated list to it.
func (s *Store) ReplacePage(records []deals.Deal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = clone(records)
	s.accumulated = clone(records)
}

// AppendPage makes records the current page and appends them to the accumulated list.
// An empty page leaves the store untouched and returns ErrNoMoreResults.
func (s *Store) AppendPage(records []deals.Deal) error {
	if len(records) == 0 {
		return ErrNoMoreResults
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = clone(records)
	s.accumulated = append(s.accumulated, records...)
	return nil
}

// Current returns a copy of the current page.
func (s *Store) Current() []deals.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.current)
}

// Accumulated returns a copy of every record loaded since the last ReplacePage.
func (s *Store) Accumulated() []deals.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.accumulated)
}

// SortedBy returns the current page ordered by criterion.
func (s *Store) SortedBy(criterion Criterion) []deals.Deal {
	return Sort(s.Current(), criterion)
}

// FilteredByStore returns the current page restricted to storeID.
func (s *Store) FilteredByStore(storeID string) []deals.Deal {
	return FilterByStore(s.Current(), storeID)
}

// SearchedByTitle returns the current page restricted to titles matching query.
func (s *Store) SearchedByTitle(query string) []deals.Deal {
	return SearchByTitle(s.Current(), query)
}

// View returns the current page with every criterion applied.
func (s *Store) View(c Criteria) []deals.Deal {
	return Apply(s.Current(), c)
}

// Find looks a deal up by ID, preferring the accumulated list over the current page.
func (s *Store) Find(dealID string) (deals.Deal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, list := range [][]deals.Deal{s.accumulated, s.current} {
		for _, d := range list {
			if d.DealID != "" && d.DealID == dealID {
				return d, true
			}
		}
	}
	return deals.Deal{}, false
}
