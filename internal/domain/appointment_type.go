package domain

// AppointmentType is an entry of the static appointment catalog
type AppointmentType struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Icon            string `json:"icon"`
	DurationMinutes int    `json:"durationMinutes"`
	BufferMinutes   int    `json:"bufferMinutes"` // blocks time after the appointment only
}

// TotalMinutes returns duration plus trailing buffer
func (t AppointmentType) TotalMinutes() int {
	return t.DurationMinutes + t.BufferMinutes
}

// Catalog is the ordered list of bookable appointment types
type Catalog []AppointmentType

// Find returns the appointment type with the given id
func (c Catalog) Find(id string) (AppointmentType, bool) {
	for _, t := range c {
		if t.ID == id {
			return t, true
		}
	}
	return AppointmentType{}, false
}
