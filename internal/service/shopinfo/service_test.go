package shopinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
)

func newTestService() *Service {
	weekday := domain.OpeningHours{Open: "10:00", Close: "18:00"}
	return NewService(Source{
		Business: Business{Name: "BikeWerkstatt Demo", City: "60311 Frankfurt am Main"},
		Schedule: domain.WeeklySchedule{
			time.Sunday:    {Closed: true},
			time.Monday:    weekday,
			time.Tuesday:   weekday,
			time.Wednesday: weekday,
			time.Thursday:  weekday,
			time.Friday:    weekday,
			time.Saturday:  {Open: "10:00", Close: "14:00"},
		},
		Catalog: domain.Catalog{
			{ID: "beratung", DurationMinutes: 45, BufferMinutes: 10},
			{ID: "reparatur", DurationMinutes: 30, BufferMinutes: 10},
		},
		Rules: Rules{SlotStepMinutes: 15, LeadTimeHours: 4, MaxDaysAhead: 30},
	})
}

func TestService_GetBusiness(t *testing.T) {
	resp := newTestService().GetBusiness()

	assert.Equal(t, "BikeWerkstatt Demo", resp.Name)
	require.Len(t, resp.OpeningHours, 7)

	assert.Equal(t, "Montag", resp.OpeningHours[0].Day)
	assert.Equal(t, "18:00", resp.OpeningHours[0].Close)

	assert.Equal(t, "Samstag", resp.OpeningHours[5].Day)
	assert.Equal(t, "14:00", resp.OpeningHours[5].Close)

	sunday := resp.OpeningHours[6]
	assert.Equal(t, 0, sunday.Weekday)
	assert.True(t, sunday.Closed)
	assert.Empty(t, sunday.Open)

	assert.Equal(t, 4, resp.Rules.LeadTimeHours)
}

func TestService_ListAppointmentTypes(t *testing.T) {
	svc := newTestService()

	resp := svc.ListAppointmentTypes()
	require.Len(t, resp.AppointmentTypes, 2)
	assert.Equal(t, "beratung", resp.AppointmentTypes[0].ID)

	resp.AppointmentTypes[0].ID = "changed"
	assert.Equal(t, "beratung", svc.ListAppointmentTypes().AppointmentTypes[0].ID, "catalog is not shared")
}
