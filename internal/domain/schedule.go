package domain

import (
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/types"
)

// OpeningHours is the open window of a single weekday.
// If Closed is true, Open and Close are ignored.
type OpeningHours struct {
	Open   types.TimeString `json:"open"`
	Close  types.TimeString `json:"close"`
	Closed bool             `json:"closed"`
}

// Window returns the open window in minutes since midnight
func (h OpeningHours) Window() Interval {
	if h.Closed {
		return Interval{}
	}
	return Interval{Start: h.Open.Minutes(), End: h.Close.Minutes()}
}

// WeeklySchedule maps time.Weekday (0 = Sunday) to opening hours
type WeeklySchedule [7]OpeningHours

// For returns the opening hours of the date's weekday
func (s WeeklySchedule) For(date time.Time) OpeningHours {
	return s[date.Weekday()]
}

// DateOnly strips the clock part and returns the civil date in UTC,
// so dates from different locations compare by calendar day
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether both times fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
