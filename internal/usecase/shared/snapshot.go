package shared

import (
	"context"
	"log/slog"

	"citas-unidades/internal/domain/booking"
	"citas-unidades/internal/infra/store"
)

// RecordSource is the read side of the record store.
type RecordSource interface {
	ListAll(ctx context.Context) ([]store.Record, error)
}

// LoadBookings reads the full record set and decodes it into a snapshot.
// Rows the codec refuses are logged and dropped rather than failing the
// whole read; hand-edited sheets accumulate such rows over time.
//
// The snapshot is stale the moment it is returned. Capacity decisions must
// re-read immediately before writing, never reuse an earlier snapshot.
func LoadBookings(ctx context.Context, src RecordSource, codec *store.Codec, logger *slog.Logger) ([]booking.Booking, error) {
	recs, err := src.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	bookings, skipped := codec.DecodeAll(recs)
	if skipped > 0 {
		logger.Warn("skipped unparsable records", slog.Int("count", skipped))
	}
	return bookings, nil
}
