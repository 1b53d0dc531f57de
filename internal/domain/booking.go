package domain

import (
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusRequested BookingStatus = "requested"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
)

// ParseBookingStatus converts a raw string into a known status
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusRequested, StatusConfirmed, StatusCanceled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// Customer holds the contact data entered in the wizard
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Booking represents an appointment booking.
// AppointmentType is a snapshot taken at creation time, later catalog
// changes do not alter existing bookings.
type Booking struct {
	ID              string
	AppointmentType AppointmentType
	Date            time.Time // civil date, see DateOnly
	Time            types.TimeString
	Customer        Customer
	Status          BookingStatus
	CreatedAt       time.Time
}

// NewBooking is a booking before the store assigned ID and CreatedAt
type NewBooking struct {
	AppointmentType AppointmentType
	Date            time.Time
	Time            types.TimeString
	Customer        Customer
	Status          BookingStatus
}

// SlotCheck inspects the bookings of the target date inside the store's
// critical section. A non-nil error aborts the write and is returned as is.
type SlotCheck func(sameDay []*Booking) error

// StatusCheck inspects the booking being updated together with the other
// bookings of its date before the status change is written.
type StatusCheck func(current *Booking, sameDay []*Booking) error

// IsActive returns true if the booking blocks its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCanceled
}

// IsCanceled returns true if the booking has been canceled
func (b *Booking) IsCanceled() bool {
	return b.Status == StatusCanceled
}

// OccupiedInterval returns [time, time+duration+buffer) in minutes since midnight
func (b *Booking) OccupiedInterval() Interval {
	start := b.Time.Minutes()
	return Interval{Start: start, End: start + b.AppointmentType.TotalMinutes()}
}

// OnDate reports whether the booking is on the given calendar date
func (b *Booking) OnDate(date time.Time) bool {
	return SameDay(b.Date, date)
}

// DateString returns the booking date as YYYY-MM-DD
func (b *Booking) DateString() string {
	return b.Date.Format(DateFormat)
}

// BookingsFilter filter for the admin booking list
type BookingsFilter struct {
	Status *BookingStatus // nil = all statuses
	Date   *time.Time     // nil = all dates
}

// Matches reports whether the booking passes the filter
func (f BookingsFilter) Matches(b *Booking) bool {
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.Date != nil && !b.OnDate(*f.Date) {
		return false
	}
	return true
}
