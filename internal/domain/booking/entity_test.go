//go:build unit

package booking_test

import (
	"testing"
	"time"

	"citas-unidades/internal/domain/booking"
	"citas-unidades/internal/domain/slot"
	"citas-unidades/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "TKT-0A1B2C3D", actual.TicketID())
		assert.Equal(t, "08:00-10:00", actual.SlotName())
		assert.Equal(t, slot.NewDate(2025, time.March, 3), actual.Date())
		assert.Equal(t, "ABC-123", actual.PlatePrimary())
		assert.Equal(t, "Juan Perez", actual.DriverName())
		assert.Equal(t, "Maria Lopez", actual.RegistrarName())
		assert.Equal(t, booking.StatusQueued, actual.Status())
		assert.False(t, actual.CreatedAt().IsZero())
	})

	t.Run("必須フィールド検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "チケットIDなしNG",
				mutate: func(b *builder.BookingBuilder) { b.TicketID = "" },
				errIs:  booking.ErrMissingTicketID,
			},
			{
				name:   "チケットID空白のみNG",
				mutate: func(b *builder.BookingBuilder) { b.TicketID = "   " },
				errIs:  booking.ErrMissingTicketID,
			},
			{
				name:   "スロット名なしNG",
				mutate: func(b *builder.BookingBuilder) { b.SlotName = "" },
				errIs:  booking.ErrMissingSlot,
			},
			{
				name:   "日付なしNG",
				mutate: func(b *builder.BookingBuilder) { b.Date = slot.Date{} },
				errIs:  booking.ErrMissingDate,
			},
			{
				name:   "主プレートなしNG",
				mutate: func(b *builder.BookingBuilder) { b.PlatePrimary = "" },
				errIs:  booking.ErrMissingPlate,
			},
			{
				name:   "運転手名なしNG",
				mutate: func(b *builder.BookingBuilder) { b.DriverName = "" },
				errIs:  booking.ErrMissingDriver,
			},
			{
				name:   "登録者名なしNG",
				mutate: func(b *builder.BookingBuilder) { b.RegistrarName = "" },
				errIs:  booking.ErrMissingRegistrar,
			},
		})
	})

	t.Run("任意フィールド検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "従プレートなしOK",
				mutate: func(b *builder.BookingBuilder) { b.PlateSecondary = "" },
			},
			{
				name:   "免許なしOK",
				mutate: func(b *builder.BookingBuilder) { b.License = "" },
			},
			{
				name:   "運送会社なしOK",
				mutate: func(b *builder.BookingBuilder) { b.Carrier = "" },
			},
			{
				name: "作業種別と備考なしOK",
				mutate: func(b *builder.BookingBuilder) {
					b.OperationType = ""
					b.Note = ""
				},
			},
		})
	})

	t.Run("前後空白はトリムされる", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.PlatePrimary = "  ABC-123  "
			b.DriverName = "  Juan Perez  "
			b.Note = "  urgente  "
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "ABC-123", actual.PlatePrimary())
		assert.Equal(t, "Juan Perez", actual.DriverName())
		assert.Equal(t, "urgente", actual.Note())
	})

	t.Run("作成直後はQUEUED", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithStatus(booking.StatusServed).BuildDomain()
		require.NoError(t, err)

		// New always starts the lifecycle at QUEUED regardless of input.
		assert.Equal(t, booking.StatusQueued, actual.Status())
		assert.False(t, actual.IsCancelled())
		assert.True(t, actual.CountsAgainstCapacity())
	})
}

func TestValidateRequest(t *testing.T) {
	t.Run("チケットID未採番でも通る", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		b.TicketID = ""
		params := b.BuildParams()

		// ValidateRequest runs before the ticket is minted.
		require.NoError(t, booking.ValidateRequest(params))
	})

	t.Run("必須フィールド欠落NG", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		b.DriverName = "   "
		require.ErrorIs(t, booking.ValidateRequest(b.BuildParams()), booking.ErrMissingDriver)
	})
}

func TestReconstruct(t *testing.T) {
	t.Run("保存済みの状態をそのまま復元する", func(t *testing.T) {
		actual := builder.NewBookingBuilder().AsCancelled().BuildReconstructed()

		assert.Equal(t, booking.StatusCancelled, actual.Status())
		assert.True(t, actual.IsCancelled())
		assert.False(t, actual.CountsAgainstCapacity())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
