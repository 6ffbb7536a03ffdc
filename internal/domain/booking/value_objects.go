package booking

import (
	"strings"
	"time"

	"staybook/internal/pkg/errs"
)

// DateLayout is the wire format of stay dates. Dates are calendar days in UTC.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errs.NewKind("date must use the YYYY-MM-DD format", errs.ErrInvalidInput)
	ErrInvalidDateRange = errs.NewKind("dateFrom must be before dateTo", errs.ErrInvalidInput)
	ErrNoOccupants      = errs.NewKind("namesOfPeople must contain at least one name", errs.ErrInvalidInput)
	ErrBlankOccupant    = errs.NewKind("namesOfPeople must not contain blank names", errs.ErrInvalidInput)
)

// DateRange is the half-open interval [from, to). The checkout day is not occupied.
type DateRange struct {
	from time.Time
	to   time.Time
}

func NewDateRange(from, to time.Time) (DateRange, error) {
	r := RestoreDateRange(from, to)
	if !r.from.Before(r.to) {
		return DateRange{}, ErrInvalidDateRange
	}
	return r, nil
}

// ParseDateRange parses both ends with DateLayout.
func ParseDateRange(from, to string) (DateRange, error) {
	f, err := ParseDate(from)
	if err != nil {
		return DateRange{}, err
	}
	t, err := ParseDate(to)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(f, t)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// RestoreDateRange rebuilds a stored range without validation.
func RestoreDateRange(from, to time.Time) DateRange {
	return DateRange{from: truncateDay(from), to: truncateDay(to)}
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r DateRange) From() time.Time { return r.from }
func (r DateRange) To() time.Time   { return r.to }

func (r DateRange) IsEmpty() bool {
	return !r.from.Before(r.to)
}

func (r DateRange) Nights() int {
	if r.IsEmpty() {
		return 0
	}
	return int(r.to.Sub(r.from).Hours() / 24)
}

// Overlaps reports whether the two ranges share at least one day. Empty ranges
// never overlap anything, themselves included.
func (r DateRange) Overlaps(other DateRange) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.from.Before(other.to) && other.from.Before(r.to)
}

func (r DateRange) String() string {
	return "[" + r.from.Format(DateLayout) + "," + r.to.Format(DateLayout) + ")"
}

type Occupants struct {
	names []string
}

func NewOccupants(names []string) (Occupants, error) {
	if len(names) == 0 {
		return Occupants{}, ErrNoOccupants
	}
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return Occupants{}, ErrBlankOccupant
		}
		cleaned = append(cleaned, n)
	}
	return Occupants{names: cleaned}, nil
}

func (o Occupants) Names() []string {
	out := make([]string, len(o.names))
	copy(out, o.names)
	return out
}

func (o Occupants) Count() int { return len(o.names) }
