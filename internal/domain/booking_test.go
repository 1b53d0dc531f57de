package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{name: "touching end", a: Interval{600, 630}, b: Interval{630, 660}, want: false},
		{name: "touching start", a: Interval{630, 660}, b: Interval{600, 630}, want: false},
		{name: "partial", a: Interval{600, 640}, b: Interval{630, 660}, want: true},
		{name: "contained", a: Interval{600, 700}, b: Interval{620, 640}, want: true},
		{name: "containing", a: Interval{620, 640}, b: Interval{600, 700}, want: true},
		{name: "disjoint", a: Interval{600, 610}, b: Interval{700, 710}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
		})
	}
}

func TestBooking_OccupiedIntervalIncludesBuffer(t *testing.T) {
	b := &Booking{
		AppointmentType: AppointmentType{DurationMinutes: 45, BufferMinutes: 10},
		Time:            "10:00",
	}

	assert.Equal(t, Interval{Start: 600, End: 655}, b.OccupiedInterval())
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusRequested}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCanceled}).IsActive())
}

func TestParseBookingStatus(t *testing.T) {
	status, ok := ParseBookingStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, status)

	_, ok = ParseBookingStatus("completed")
	assert.False(t, ok)
}

func TestWeeklySchedule_For(t *testing.T) {
	var s WeeklySchedule
	s[time.Sunday] = OpeningHours{Closed: true}
	s[time.Saturday] = OpeningHours{Open: "10:00", Close: "14:00"}

	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	assert.True(t, s.For(sunday).Closed)
	assert.Equal(t, Interval{Start: 600, End: 840}, s.For(saturday).Window())
}

func TestTimeSlot_Period(t *testing.T) {
	assert.Equal(t, PeriodMorning, TimeSlot{Time: "11:45"}.Period())
	assert.Equal(t, PeriodMidday, TimeSlot{Time: "12:00"}.Period())
	assert.Equal(t, PeriodMidday, TimeSlot{Time: "13:45"}.Period())
	assert.Equal(t, PeriodAfternoon, TimeSlot{Time: "14:00"}.Period())
}

func TestBookingsFilter_Matches(t *testing.T) {
	status := StatusConfirmed
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	f := BookingsFilter{Status: &status, Date: &date}

	assert.True(t, f.Matches(&Booking{Status: StatusConfirmed, Date: date}))
	assert.False(t, f.Matches(&Booking{Status: StatusRequested, Date: date}))
	assert.False(t, f.Matches(&Booking{Status: StatusConfirmed, Date: date.AddDate(0, 0, 1)}))
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	errs.Add(FieldName, "zu kurz")
	errs.Add(FieldPhone, "ungültig")

	assert.True(t, errs.HasField(FieldPhone))
	assert.False(t, errs.HasField(FieldEmail))
	assert.Equal(t, "zu kurz", errs.FieldMessage(FieldName))
	assert.Contains(t, errs.Error(), "phone: ungültig")
}
