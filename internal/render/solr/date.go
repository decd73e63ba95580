package solr

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// solrTime is the only timestamp form the index schema accepts.
const solrTime = "2006-01-02T15:04:05"

// NormalizeDate parses a loosely formatted date and renders it in UTC as
// 2006-01-02T15:04:05Z. A bare year means January 1 of that year.
func NormalizeDate(s string) (string, error) {
	if t, err := yearDate(s); err == nil {
		return formatTime(t), nil
	}
	t, err := cast.ToTimeE(s)
	if err != nil {
		return "", errors.Wrapf(err, "unable to parse date %q", s)
	}
	return formatTime(t), nil
}

// yearDate reads s as a bare year.
func yearDate(s string) (time.Time, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "%q is not a year", s)
	}
	if year < 1 || year > 9999 {
		return time.Time{}, errors.Errorf("year %d out of range", year)
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(solrTime) + "Z"
}
