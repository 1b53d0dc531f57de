package domain

import "github.com/m04kA/BikeWerkstatt-BookingService/pkg/types"

// SlotReason explains why a slot is unavailable
type SlotReason string

const (
	SlotReasonNone     SlotReason = ""
	SlotReasonLeadTime SlotReason = "lead_time"
	SlotReasonConflict SlotReason = "conflict"
)

// TimeSlot is a derived, never persisted candidate start time
type TimeSlot struct {
	Time      types.TimeString
	Available bool
	Reason    SlotReason
}

// Period returns the display bucket of the slot by start hour
func (s TimeSlot) Period() string {
	hour := s.Time.Hour()
	switch {
	case hour < MiddayStartHour:
		return PeriodMorning
	case hour < AfternoonStartHour:
		return PeriodMidday
	default:
		return PeriodAfternoon
	}
}

// SlotGroup is a display bucket of slots
type SlotGroup struct {
	Label string
	Slots []TimeSlot
}
