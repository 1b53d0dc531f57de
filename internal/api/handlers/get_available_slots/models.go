package get_available_slots

import (
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/BikeWerkstatt-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse слот в HTTP ответе
type SlotResponse struct {
	Time      string `json:"time"` // "10:00"
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"` // lead_time | conflict
}

// SlotGroupResponse доступные слоты периода дня
type SlotGroupResponse struct {
	Label string         `json:"label"`
	Slots []SlotResponse `json:"slots"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date              string              `json:"date"`
	AppointmentTypeID string              `json:"appointmentTypeId"`
	Open              string              `json:"open,omitempty"`
	Close             string              `json:"close,omitempty"`
	Closed            bool                `json:"closed"`
	Slots             []SlotResponse      `json:"slots"`
	Groups            []SlotGroupResponse `json:"groups"`
	AvailableCount    int                 `json:"availableCount"`
	NextAvailable     *string             `json:"nextAvailable,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Date:              resp.Date.Format(domain.DateFormat),
		AppointmentTypeID: resp.AppointmentType.ID,
		Open:              resp.OpeningHours.Open.String(),
		Close:             resp.OpeningHours.Close.String(),
		Closed:            resp.OpeningHours.Closed,
		Slots:             toSlots(resp.Slots),
		Groups:            make([]SlotGroupResponse, 0, len(resp.Groups)),
		AvailableCount:    resp.AvailableCount,
	}

	for _, g := range resp.Groups {
		out.Groups = append(out.Groups, SlotGroupResponse{Label: g.Label, Slots: toSlots(g.Slots)})
	}

	if resp.NextAvailable != nil {
		next := resp.NextAvailable.Time.String()
		out.NextAvailable = &next
	}

	return out
}

func toSlots(slots []domain.TimeSlot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{
			Time:      s.Time.String(),
			Available: s.Available,
			Reason:    string(s.Reason),
		})
	}
	return out
}
