package common

import (
	"fmt"
	"time"
)

// DateLayout
const (
	DateFormatYYYYMMDD                  = "2006-01-02"
	DateFormatYYYYMM                    = "2006-01"
	DateFormatYYYYMMDDWithoutDash       = "20060102"
	DateFormatYYYYMMDDHHMMSSWithoutDash = "20060102150405"
	DateFormatYYYYMMDDWithTime          = "2006-01-02 15:04:05"
	DateFormatYYYYMMDDWithTimeAndOffset = "2006-01-02T15:04:05-07:00" // same as RFC3339/ISO8601
)

const TimezoneSaoPaulo = "America/Sao_Paulo"

var location = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation(TimezoneSaoPaulo)
	if err != nil {
		return time.FixedZone(TimezoneSaoPaulo, -3*60*60)
	}
	return loc
}

// GetLocation returns the business timezone used for calendar dates.
func GetLocation() *time.Location {
	return location
}

func ParseStringToDatetime(layout, value string) (*time.Time, error) {
	t, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormatDate, value)
	}
	return &t, nil
}

// ParseCalendarDate parses YYYY-MM-DD as a UTC midnight, the form DATE columns round trip with.
func ParseCalendarDate(value string) (time.Time, error) {
	t, err := ParseStringToDatetime(DateFormatYYYYMMDD, value)
	if err != nil {
		return time.Time{}, err
	}
	return *t, nil
}
