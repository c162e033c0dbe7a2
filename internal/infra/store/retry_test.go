//go:build unit

package store_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"citas-unidades/internal/infra/store"
	"citas-unidades/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedStore returns one scripted outcome per call; the last entry
// repeats. A nil entry means success.
type scriptedStore struct {
	script []error
	calls  int
	rows   []store.Record
}

func (s *scriptedStore) step() error {
	i := s.calls
	s.calls++
	if len(s.script) == 0 {
		return nil
	}
	if i >= len(s.script) {
		i = len(s.script) - 1
	}
	return s.script[i]
}

func (s *scriptedStore) ListAll(ctx context.Context) ([]store.Record, error) {
	if err := s.step(); err != nil {
		return nil, err
	}
	return s.rows, nil
}

func (s *scriptedStore) Append(ctx context.Context, rec store.Record) error {
	return s.step()
}

func (s *scriptedStore) FindPosition(ctx context.Context, keyField, keyValue string) (int, error) {
	if err := s.step(); err != nil {
		return 0, err
	}
	return store.DataStartRow, nil
}

func (s *scriptedStore) UpdateField(ctx context.Context, position int, field, value string) error {
	return s.step()
}

func (s *scriptedStore) UpdateFieldBatch(ctx context.Context, updates []store.FieldUpdate) error {
	return s.step()
}

func newRetrying(next store.RecordStore) *store.Retrying {
	cfg := config.RetryConfig{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		Multiplier:      1.0,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return store.NewRetrying(next, cfg, logger)
}

func TestRetrying(t *testing.T) {
	ctx := context.Background()
	rateLimited := store.NewErr(store.KindRateLimited, "quota exhausted")
	unavailable := store.NewErr(store.KindUnavailable, "backend down")
	notFound := store.NewErr(store.KindNotFound, "no such row")

	t.Run("success: first attempt needs no retry", func(t *testing.T) {
		next := &scriptedStore{rows: []store.Record{{store.FieldTicketID: "TKT-00000001"}}}
		r := newRetrying(next)

		recs, err := r.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, recs, 1)
		assert.Equal(t, 1, next.calls)
	})

	t.Run("success: transient failure retried until it clears", func(t *testing.T) {
		next := &scriptedStore{script: []error{rateLimited, unavailable, nil}}
		r := newRetrying(next)

		_, err := r.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, next.calls)
	})

	t.Run("success: writes go through the same retry path", func(t *testing.T) {
		next := &scriptedStore{script: []error{rateLimited, nil}}
		r := newRetrying(next)

		err := r.UpdateField(ctx, store.DataStartRow, store.FieldStatus, "SERVED")
		require.NoError(t, err)
		assert.Equal(t, 2, next.calls)
	})

	t.Run("error: non-transient failure propagates on the first attempt", func(t *testing.T) {
		next := &scriptedStore{script: []error{notFound}}
		r := newRetrying(next)

		_, err := r.FindPosition(ctx, store.FieldTicketID, "TKT-00000001")
		require.Error(t, err)
		assert.True(t, store.IsKind(err, store.KindNotFound))
		assert.Equal(t, 1, next.calls)
	})

	t.Run("error: untyped failure is not retried", func(t *testing.T) {
		next := &scriptedStore{script: []error{errors.New("boom")}}
		r := newRetrying(next)

		err := r.Append(ctx, store.Record{})
		require.EqualError(t, err, "boom")
		assert.Equal(t, 1, next.calls)
	})

	t.Run("error: budget exhausted surfaces the original error", func(t *testing.T) {
		next := &scriptedStore{script: []error{unavailable}}
		r := newRetrying(next)

		err := r.UpdateFieldBatch(ctx, []store.FieldUpdate{
			{Position: store.DataStartRow, Field: store.FieldStatus, Value: "SERVED"},
		})
		require.Error(t, err)
		assert.True(t, store.IsKind(err, store.KindUnavailable))
		// Initial attempt plus MaxRetries.
		assert.Equal(t, 4, next.calls)
	})
}

func TestIsTransient(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		transient bool
	}{
		{name: "rate limited", err: store.NewErr(store.KindRateLimited, "x"), transient: true},
		{name: "unavailable", err: store.NewErr(store.KindUnavailable, "x"), transient: true},
		{name: "not found", err: store.NewErr(store.KindNotFound, "x"), transient: false},
		{name: "permission", err: store.NewErr(store.KindPermission, "x"), transient: false},
		{name: "invalid", err: store.NewErr(store.KindInvalid, "x"), transient: false},
		{name: "plain error", err: errors.New("x"), transient: false},
		{name: "wrapped store error still matches", err: fmt.Errorf("call failed: %w", store.NewErr(store.KindRateLimited, "x")), transient: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.transient, store.IsTransient(tc.err))
		})
	}
}
