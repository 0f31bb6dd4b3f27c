package leaf

import (
	"fmt"
	"time"

	"github.com/goliatone/go-forgery/pkg/rng"
	"github.com/goliatone/go-forgery/pkg/schema"
)

// Default bounds used by the bare "date" and "datetime" kinds.
const (
	DefaultStartDate = "2000-01-01"
	DefaultEndDate   = "2030-12-31"
)

// Date draws a uniform day between start and end inclusive and formats it as
// YYYY-MM-DD. Both bounds must parse and start must not follow end.
func Date(src *rng.Source, start, end string) (string, error) {
	day, err := randomDay(src, start, end)
	if err != nil {
		return "", err
	}
	return day.Format(schema.ISODate), nil
}

// DateTime draws a uniform day like Date plus a uniform time of day,
// formatted as "YYYY-MM-DD HH:MM:SS".
func DateTime(src *rng.Source, start, end string) (string, error) {
	day, err := randomDay(src, start, end)
	if err != nil {
		return "", err
	}
	h := src.Int64Range(0, 23)
	m := src.Int64Range(0, 59)
	s := src.Int64Range(0, 59)
	return fmt.Sprintf("%s %02d:%02d:%02d", day.Format(schema.ISODate), h, m, s), nil
}

func randomDay(src *rng.Source, start, end string) (time.Time, error) {
	from, err := time.Parse(schema.ISODate, start)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid start date %q", schema.ErrInvalidDateRange, start)
	}
	to, err := time.Parse(schema.ISODate, end)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid end date %q", schema.ErrInvalidDateRange, end)
	}
	if from.After(to) {
		return time.Time{}, fmt.Errorf("%w: %s > %s", schema.ErrInvalidDateRange, start, end)
	}
	days := int64(to.Sub(from).Hours() / 24)
	offset := src.Int64Range(0, days)
	return from.AddDate(0, 0, int(offset)), nil
}
