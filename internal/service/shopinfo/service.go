package shopinfo

import (
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/shopinfo/models"
)

var dayNames = [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"}

// Service отдает статическую информацию о мастерской: контакты, часы работы, каталог
type Service struct {
	source Source
}

// NewService создает новый экземпляр сервиса
func NewService(source Source) *Service {
	return &Service{source: source}
}

// GetBusiness возвращает контакты, недельное расписание (с понедельника) и правила
func (s *Service) GetBusiness() *models.BusinessResponse {
	resp := &models.BusinessResponse{
		Name:         s.source.Business.Name,
		Address:      s.source.Business.Address,
		City:         s.source.Business.City,
		Phone:        s.source.Business.Phone,
		Email:        s.source.Business.Email,
		OpeningHours: make([]models.DayHoursResponse, 0, len(dayNames)),
		Rules: models.RulesResponse{
			SlotStepMinutes: s.source.Rules.SlotStepMinutes,
			LeadTimeHours:   s.source.Rules.LeadTimeHours,
			MaxDaysAhead:    s.source.Rules.MaxDaysAhead,
		},
	}

	for i := 1; i <= len(dayNames); i++ {
		weekday := time.Weekday(i % 7)
		hours := s.source.Schedule[weekday]
		resp.OpeningHours = append(resp.OpeningHours, models.DayHoursResponse{
			Weekday: int(weekday),
			Day:     dayNames[weekday],
			Open:    hours.Open.String(),
			Close:   hours.Close.String(),
			Closed:  hours.Closed,
		})
	}

	return resp
}

// ListAppointmentTypes возвращает каталог типов записи в порядке конфигурации
func (s *Service) ListAppointmentTypes() *models.AppointmentTypesResponse {
	types := make([]domain.AppointmentType, len(s.source.Catalog))
	copy(types, s.source.Catalog)
	return &models.AppointmentTypesResponse{AppointmentTypes: types}
}
