package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"citas-unidades/internal/infra/memory"
	"citas-unidades/internal/infra/sheets"
	"citas-unidades/internal/infra/store"
	"citas-unidades/internal/pkg/config"
	"citas-unidades/internal/usecase/commands"
	"citas-unidades/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			NewRecordStore,
			fx.As(new(store.RecordStore)),
			fx.As(new(commands.BookingStore)),
			fx.As(new(commands.StatusStore)),
			fx.As(new(shared.RecordSource)),
		),
		NewCodec,
	),
)

// NewRecordStore builds the configured backend wrapped in the retry layer.
// For the sheets driver, schema checks run as a start hook so a broken
// spreadsheet fails the boot instead of the first request.
func NewRecordStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*store.Retrying, error) {
	var base store.RecordStore

	switch cfg.Store.Driver {
	case "memory":
		base = memory.New()
	default:
		client, err := sheets.New(context.Background(), cfg.Sheets, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return client.EnsureSchema(ctx)
			},
		})
		base = client
	}

	return store.NewRetrying(base, cfg.Retry, logger), nil
}

func NewCodec(cfg config.Config) (*store.Codec, error) {
	loc, err := time.LoadLocation(cfg.Booking.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", cfg.Booking.TimeZone, err)
	}
	return store.NewCodec(loc), nil
}
