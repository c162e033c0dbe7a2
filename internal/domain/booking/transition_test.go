//go:build unit

package booking_test

import (
	"testing"

	"citas-unidades/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	t.Run("empty spec allows everything", func(t *testing.T) {
		policy, err := booking.ParsePolicy("")
		require.NoError(t, err)

		assert.False(t, policy.IsRestrictive())
		assert.True(t, policy.Allows(booking.StatusServed, booking.StatusQueued))
	})

	t.Run("whitespace-only spec allows everything", func(t *testing.T) {
		policy, err := booking.ParsePolicy("   ")
		require.NoError(t, err)
		assert.False(t, policy.IsRestrictive())
	})

	t.Run("parses comma-separated pairs", func(t *testing.T) {
		policy, err := booking.ParsePolicy("QUEUED>IN_PROGRESS, IN_PROGRESS>SERVED")
		require.NoError(t, err)

		assert.True(t, policy.IsRestrictive())
		assert.True(t, policy.Allows(booking.StatusQueued, booking.StatusInProgress))
		assert.True(t, policy.Allows(booking.StatusInProgress, booking.StatusServed))
		assert.False(t, policy.Allows(booking.StatusQueued, booking.StatusServed))
		assert.False(t, policy.Allows(booking.StatusServed, booking.StatusQueued))
	})

	t.Run("tokens are parsed case-insensitively", func(t *testing.T) {
		policy, err := booking.ParsePolicy("queued>cancelled")
		require.NoError(t, err)
		assert.True(t, policy.Allows(booking.StatusQueued, booking.StatusCancelled))
	})

	t.Run("malformed specs rejected", func(t *testing.T) {
		cases := []struct {
			name string
			spec string
		}{
			{name: "missing separator", spec: "QUEUED IN_PROGRESS"},
			{name: "unknown from token", spec: "PENDING>SERVED"},
			{name: "unknown to token", spec: "QUEUED>DONE"},
			{name: "trailing comma leaves empty pair", spec: "QUEUED>SERVED,"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.ParsePolicy(tc.spec)
				require.Error(t, err)
			})
		}
	})
}

func TestPolicyAllows(t *testing.T) {
	t.Run("zero policy allows any transition", func(t *testing.T) {
		var policy booking.Policy
		assert.True(t, policy.Allows(booking.StatusCancelled, booking.StatusQueued))
		assert.False(t, policy.IsRestrictive())
	})

	t.Run("explicit policy only allows listed pairs", func(t *testing.T) {
		policy := booking.NewPolicy(
			booking.Transition{From: booking.StatusQueued, To: booking.StatusInProgress},
		)

		assert.True(t, policy.Allows(booking.StatusQueued, booking.StatusInProgress))
		assert.False(t, policy.Allows(booking.StatusInProgress, booking.StatusQueued))
		assert.True(t, policy.IsRestrictive())
	})

	t.Run("empty explicit policy denies everything", func(t *testing.T) {
		policy := booking.NewPolicy()
		assert.True(t, policy.IsRestrictive())
		assert.False(t, policy.Allows(booking.StatusQueued, booking.StatusInProgress))
	})
}
