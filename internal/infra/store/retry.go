package store

import (
	"context"
	"log/slog"
	"time"

	"citas-unidades/internal/pkg/config"

	"github.com/cenkalti/backoff/v4"
)

// Retrying wraps a RecordStore with bounded exponential-backoff retry for
// transient failures. Non-transient errors propagate on the first attempt;
// after the budget is spent the original error surfaces unchanged.
type Retrying struct {
	next            RecordStore
	maxRetries      uint64
	initialInterval time.Duration
	multiplier      float64
	logger          *slog.Logger
}

func NewRetrying(next RecordStore, cfg config.RetryConfig, logger *slog.Logger) *Retrying {
	return &Retrying{
		next:            next,
		maxRetries:      uint64(cfg.MaxRetries),
		initialInterval: cfg.InitialInterval,
		multiplier:      cfg.Multiplier,
		logger:          logger,
	}
}

func (r *Retrying) ListAll(ctx context.Context) ([]Record, error) {
	var out []Record
	err := r.do(ctx, "list_all", func() error {
		var err error
		out, err = r.next.ListAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Retrying) Append(ctx context.Context, rec Record) error {
	return r.do(ctx, "append", func() error {
		return r.next.Append(ctx, rec)
	})
}

func (r *Retrying) FindPosition(ctx context.Context, keyField, keyValue string) (int, error) {
	var pos int
	err := r.do(ctx, "find_position", func() error {
		var err error
		pos, err = r.next.FindPosition(ctx, keyField, keyValue)
		return err
	})
	if err != nil {
		return 0, err
	}
	return pos, nil
}

func (r *Retrying) UpdateField(ctx context.Context, position int, field, value string) error {
	return r.do(ctx, "update_field", func() error {
		return r.next.UpdateField(ctx, position, field, value)
	})
}

func (r *Retrying) UpdateFieldBatch(ctx context.Context, updates []FieldUpdate) error {
	return r.do(ctx, "update_field_batch", func() error {
		return r.next.UpdateFieldBatch(ctx, updates)
	})
}

func (r *Retrying) do(ctx context.Context, op string, fn func() error) error {
	attempt := 0
	return backoff.Retry(func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if !IsTransient(err) {
			return backoff.Permanent(err)
		}
		attempt++
		r.logger.Warn("transient store error, retrying",
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
		return err
	}, r.policy(ctx))
}

func (r *Retrying) policy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.Multiplier = r.multiplier
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, r.maxRetries), ctx)
}
