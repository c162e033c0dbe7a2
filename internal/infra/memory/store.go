package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"citas-unidades/internal/infra/store"
)

// Store keeps records in process. It backs unit tests and the "memory"
// STORE_DRIVER for local development, and follows the same row-position
// convention as the sheets adapter so the two stay interchangeable.
type Store struct {
	mu   sync.Mutex
	rows []store.Record
}

func New() *Store {
	return &Store{}
}

// Reset drops every record. Test harnesses call it between cases.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
}

func (s *Store) ListAll(ctx context.Context) ([]store.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]store.Record, len(s.rows))
	for i, r := range s.rows {
		out[i] = maps.Clone(r)
	}
	return out, nil
}

func (s *Store) Append(ctx context.Context, rec store.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = append(s.rows, maps.Clone(rec))
	return nil
}

func (s *Store) FindPosition(ctx context.Context, keyField, keyValue string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	want := store.NormalizeCell(keyValue)
	for i, r := range s.rows {
		if store.NormalizeCell(r[keyField]) == want {
			return store.PositionOf(i), nil
		}
	}
	return 0, store.NewErr(store.KindNotFound, fmt.Sprintf("no record with %s=%q", keyField, keyValue))
}

func (s *Store) UpdateField(ctx context.Context, position int, field, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := position - store.DataStartRow
	if idx < 0 || idx >= len(s.rows) {
		return store.NewErr(store.KindNotFound, fmt.Sprintf("no row at position %d", position))
	}
	s.rows[idx][field] = value
	return nil
}

func (s *Store) UpdateFieldBatch(ctx context.Context, updates []store.FieldUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range updates {
		idx := u.Position - store.DataStartRow
		if idx < 0 || idx >= len(s.rows) {
			return store.NewErr(store.KindNotFound, fmt.Sprintf("no row at position %d", u.Position))
		}
	}
	for _, u := range updates {
		s.rows[u.Position-store.DataStartRow][u.Field] = u.Value
	}
	return nil
}
