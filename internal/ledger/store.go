// Package ledger owns the ordered transaction collection and keeps it in
// sync with its persistent slot. Every mutation rewrites the full blob;
// there is no append log and no partial persistence.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"saldo/internal/core"
	"saldo/internal/kv"
)

// Store is the single mutator of the ledger. The mutex serializes HTTP
// handlers; each mutation still runs to completion before the next.
type Store struct {
	mu    sync.Mutex
	slot  kv.Slot
	key   string
	items []core.Transaction
	now   func() time.Time
}

func NewStore(slot kv.Slot, key string) *Store {
	return &Store{slot: slot, key: key, now: time.Now}
}

// Load reads the persisted collection. Called once at startup. A missing
// key yields an empty ledger; a blob that fails to decode is discarded and
// logged, never surfaced to the user.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.slot.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("read ledger slot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(data) == 0 {
		s.items = nil
		return nil
	}

	var items []core.Transaction
	if err := json.Unmarshal(data, &items); err != nil {
		slog.WarnContext(ctx, "Discarding malformed ledger data", "key", s.key, "error", err)
		s.items = nil
		return nil
	}

	s.items = items
	slog.InfoContext(ctx, "Ledger loaded", "key", s.key, "count", len(items))
	return nil
}

// Add assigns a fresh id, appends the record in insertion order and
// rewrites the persisted blob. Ids come from the wall clock in
// milliseconds as in the original build; two adds within the same
// millisecond collide. That risk is documented, not defended against.
func (s *Store) Add(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.now().UnixMilli()
	s.items = append(s.items, t)
	if err := s.persist(ctx); err != nil {
		// The in-memory record stays; memory and storage now diverge
		// with no reconciliation path.
		return core.Transaction{}, err
	}

	slog.InfoContext(ctx, "Transaction added",
		"id", t.ID,
		"type", t.Type,
		"category", t.Category,
		"date", t.Date)
	return t, nil
}

// Remove filters out the record with the given id and rewrites the blob.
// An unknown id is a silent no-op; the rewrite happens either way.
func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]core.Transaction, 0, len(s.items))
	for _, t := range s.items {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	removed := len(filtered) < len(s.items)
	s.items = filtered

	if err := s.persist(ctx); err != nil {
		return err
	}

	if removed {
		slog.InfoContext(ctx, "Transaction removed", "id", id)
	}
	return nil
}

// List returns a copy of the collection ordered by date descending. The
// sort is stable, so records sharing a date keep their insertion order.
func (s *Store) List() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Transaction, len(s.items))
	copy(out, s.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Summary recomputes the aggregate triple over the current collection.
func (s *Store) Summary() core.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Summarize(s.items)
}

func (s *Store) persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []core.Transaction{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := s.slot.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("write ledger slot: %w", err)
	}
	return nil
}
