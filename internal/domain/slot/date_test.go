//go:build unit

package slot_test

import (
	"testing"
	"time"

	"citas-unidades/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("正常な日付OK", func(t *testing.T) {
		d, err := slot.ParseDate("2025-03-03")
		require.NoError(t, err)

		assert.Equal(t, 2025, d.Year())
		assert.Equal(t, time.March, d.Month())
		assert.Equal(t, 3, d.Day())
	})

	t.Run("不正な入力NG", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
		}{
			{name: "空文字列", input: ""},
			{name: "スラッシュ区切り", input: "2025/03/03"},
			{name: "日付以外の文字列", input: "not-a-date"},
			{name: "存在しない日", input: "2025-02-30"},
			{name: "時刻付き", input: "2025-03-03 10:00:00"},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := slot.ParseDate(c.input)
				require.ErrorIs(t, err, slot.ErrInvalidDate)
			})
		}
	})

	t.Run("うるう年OK", func(t *testing.T) {
		d, err := slot.ParseDate("2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, 29, d.Day())
	})
}

func TestDateWeekday(t *testing.T) {
	cases := []struct {
		date    string
		weekday time.Weekday
	}{
		{date: "2025-03-02", weekday: time.Sunday},
		{date: "2025-03-03", weekday: time.Monday},
		{date: "2025-03-08", weekday: time.Saturday},
	}
	for _, c := range cases {
		t.Run(c.date, func(t *testing.T) {
			d, err := slot.ParseDate(c.date)
			require.NoError(t, err)
			assert.Equal(t, c.weekday, d.Weekday())
		})
	}
}

func TestDateString(t *testing.T) {
	t.Run("文字列化はParseDateと往復する", func(t *testing.T) {
		d, err := slot.ParseDate("2025-12-31")
		require.NoError(t, err)
		assert.Equal(t, "2025-12-31", d.String())
	})

	t.Run("一桁の月日はゼロ埋め", func(t *testing.T) {
		d := slot.NewDate(2025, time.January, 5)
		assert.Equal(t, "2025-01-05", d.String())
	})
}

func TestDateOf(t *testing.T) {
	t.Run("時刻成分を落とす", func(t *testing.T) {
		ts := time.Date(2025, time.March, 3, 23, 59, 59, 0, time.UTC)
		d := slot.DateOf(ts)
		assert.Equal(t, slot.NewDate(2025, time.March, 3), d)
	})

	t.Run("その場所の暦日で切り捨てる", func(t *testing.T) {
		lima := time.FixedZone("America/Lima", -5*60*60)
		// 01:00 UTC on the 4th is still the 3rd in Lima.
		ts := time.Date(2025, time.March, 4, 1, 0, 0, 0, time.UTC).In(lima)
		d := slot.DateOf(ts)
		assert.Equal(t, slot.NewDate(2025, time.March, 3), d)
	})
}

func TestDateZero(t *testing.T) {
	var zero slot.Date
	assert.True(t, zero.IsZero())

	d := slot.NewDate(2025, time.March, 3)
	assert.False(t, d.IsZero())
	assert.True(t, d.Equal(slot.NewDate(2025, time.March, 3)))
	assert.False(t, d.Equal(zero))
}
