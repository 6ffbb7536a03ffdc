//go:build unit

package booking_test

import (
	"testing"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(booking.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func rng(from, to string) booking.DateRange {
	return booking.RestoreDateRange(day(from), day(to))
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b booking.DateRange
		want bool
	}{
		{"checkout day is free", rng("2024-01-01", "2024-01-05"), rng("2024-01-05", "2024-01-08"), false},
		{"last night shared", rng("2024-01-01", "2024-01-05"), rng("2024-01-04", "2024-01-08"), true},
		{"contained", rng("2024-01-01", "2024-01-10"), rng("2024-01-03", "2024-01-04"), true},
		{"identical", rng("2024-01-01", "2024-01-02"), rng("2024-01-01", "2024-01-02"), true},
		{"disjoint", rng("2024-01-01", "2024-01-02"), rng("2024-02-01", "2024-02-02"), false},
		{"empty inside other", rng("2024-01-03", "2024-01-03"), rng("2024-01-01", "2024-01-10"), false},
		{"zero value", booking.DateRange{}, rng("2024-01-01", "2024-01-10"), false},
		{"inverted", rng("2024-01-05", "2024-01-01"), rng("2024-01-01", "2024-01-10"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.a.Overlaps(c.b))
			assert.Equal(t, c.want, c.b.Overlaps(c.a), "overlap must be symmetric")
		})
	}
}

func TestOverlapsSymmetricOverGrid(t *testing.T) {
	base := day("2024-03-01")
	var ranges []booking.DateRange
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			ranges = append(ranges, booking.RestoreDateRange(base.AddDate(0, 0, i), base.AddDate(0, 0, j)))
		}
	}
	for _, a := range ranges {
		assert.Equal(t, !a.IsEmpty(), a.Overlaps(a), "self overlap for %s", a)
		for _, b := range ranges {
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "%s vs %s", a, b)
		}
	}
}

func TestParseDateRange(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := booking.ParseDateRange("2024-01-01", "2024-01-05")
		require.NoError(t, err)
		assert.Equal(t, day("2024-01-01"), r.From())
		assert.Equal(t, day("2024-01-05"), r.To())
		assert.Equal(t, 4, r.Nights())
		assert.Equal(t, "[2024-01-01,2024-01-05)", r.String())
	})

	cases := []struct {
		name     string
		from, to string
		errIs    error
	}{
		{"missing from", "", "2024-01-05", booking.ErrInvalidDate},
		{"bad format", "01/01/2024", "2024-01-05", booking.ErrInvalidDate},
		{"bad to", "2024-01-01", "2024-13-01", booking.ErrInvalidDate},
		{"same day", "2024-01-01", "2024-01-01", booking.ErrInvalidDateRange},
		{"reversed", "2024-01-05", "2024-01-01", booking.ErrInvalidDateRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := booking.ParseDateRange(c.from, c.to)
			require.Error(t, err)
			assert.True(t, errs.Is(err, c.errIs))
			assert.True(t, errs.Is(err, errs.ErrInvalidInput))
		})
	}
}

func TestNewDateRangeTruncatesToDay(t *testing.T) {
	from := time.Date(2024, 1, 1, 15, 30, 0, 0, time.FixedZone("x", 3600))
	r, err := booking.NewDateRange(from, from.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, day("2024-01-01"), r.From())
	assert.Equal(t, day("2024-01-03"), r.To())
}

func TestNewOccupants(t *testing.T) {
	o, err := booking.NewOccupants([]string{" Ann ", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Bob"}, o.Names())
	assert.Equal(t, 2, o.Count())

	_, err = booking.NewOccupants(nil)
	assert.True(t, errs.Is(err, booking.ErrNoOccupants))

	_, err = booking.NewOccupants([]string{"Ann", "  "})
	assert.True(t, errs.Is(err, booking.ErrBlankOccupant))
}
