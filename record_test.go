package nic_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lankaid/nic"
)

func TestRecord_BirthDate(t *testing.T) {
	t.Parallel()

	t.Run("regular day", func(t *testing.T) {
		t.Parallel()
		rec, err := nic.Parse("199812345V")
		require.NoError(t, err)

		d, err := rec.BirthDate()
		require.NoError(t, err)
		assert.Equal(t, time.Date(1998, time.May, 3, 0, 0, 0, 0, time.UTC), d, "day 123 of 1998")
	})

	t.Run("leap day in a leap year", func(t *testing.T) {
		t.Parallel()
		rec, err := nic.Parse("200036645V")
		require.NoError(t, err)

		d, err := rec.BirthDate()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2000, time.December, 31, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("day 366 in a non leap year", func(t *testing.T) {
		t.Parallel()
		rec, err := nic.Parse("199936645V")
		require.NoError(t, err)

		_, err = rec.BirthDate()
		assert.ErrorIs(t, err, nic.ErrDayNotInYear)
	})

	t.Run("female offset already removed", func(t *testing.T) {
		t.Parallel()
		rec, err := nic.Parse("199850145X")
		require.NoError(t, err)

		d, err := rec.BirthDate()
		require.NoError(t, err)
		assert.Equal(t, time.Date(1998, time.January, 1, 0, 0, 0, 0, time.UTC), d)
	})
}

func TestRecord_Age(t *testing.T) {
	t.Parallel()

	rec, err := nic.Parse("199812345V") // born 1998-05-03
	require.NoError(t, err)

	t.Run("day before the birthday", func(t *testing.T) {
		t.Parallel()
		age, err := rec.Age(time.Date(2026, time.May, 2, 12, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, 27, age)
	})

	t.Run("on the birthday", func(t *testing.T) {
		t.Parallel()
		age, err := rec.Age(time.Date(2026, time.May, 3, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, 28, age)
	})

	t.Run("propagates calendar errors", func(t *testing.T) {
		t.Parallel()
		bad, err := nic.Parse("199936645V")
		require.NoError(t, err)

		_, err = bad.Age(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, nic.ErrDayNotInYear)
	})
}

func TestRecord_Mask(t *testing.T) {
	t.Parallel()

	t.Run("old format", func(t *testing.T) {
		t.Parallel()
		rec, err := nic.Parse("199812345V")
		require.NoError(t, err)
		masked := rec.Mask()
		assert.Equal(t, "*******45V", masked)
		assert.Len(t, masked, 10, "masked form keeps the original length")
	})

	t.Run("new format", func(t *testing.T) {
		t.Parallel()
		rec, err := nic.Parse("199812345678")
		require.NoError(t, err)
		masked := rec.Mask()
		assert.Equal(t, "*******45678", masked)
		assert.Len(t, masked, 12)
	})
}

func TestRecord_String(t *testing.T) {
	t.Parallel()

	rec, err := nic.Parse("199812345V")
	require.NoError(t, err)
	assert.Equal(t, "1998 day 123 male, serial 45, old format (V)", rec.String())

	rec, err = nic.Parse("200150154321")
	require.NoError(t, err)
	assert.Equal(t, "2001 day 1 female, serial 54321, new format", rec.String())
}

func TestRecord_JSONShape(t *testing.T) {
	t.Parallel()

	rec, err := nic.Parse("199812345678")
	require.NoError(t, err)

	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"year":1998,"day_of_year":123,"gender":"male","serial":"45678","format":"new"}`, string(raw))
	assert.NotContains(t, string(raw), "suffix", "empty suffix stays off the wire")
}
