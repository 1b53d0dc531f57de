package get_available_dates

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/availability"
)

// UseCase use case для получения дат, доступных в календаре записи
type UseCase struct {
	bookingRepo BookingRepository
	engine      *availability.Engine
	catalog     domain.Catalog
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	engine *availability.Engine,
	catalog domain.Catalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		engine:      engine,
		catalog:     catalog,
		logger:      logger,
	}
}

// Execute возвращает рабочие дни от сегодня до горизонта включительно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	dates := uc.engine.AvailableDates()
	resp := &Response{Dates: make([]Date, 0, len(dates))}

	typeID := strings.TrimSpace(req.AppointmentTypeID)
	if typeID == "" {
		for _, d := range dates {
			resp.Dates = append(resp.Dates, Date{Date: d, OpeningHours: uc.engine.OpeningHours(d)})
		}
		return resp, nil
	}

	// 1. Ищем тип записи
	appointmentType, ok := uc.catalog.Find(typeID)
	if !ok {
		uc.logger.Warn("GetAvailableDates: appointment type %q not found", typeID)
		return nil, ErrAppointmentTypeNotFound
	}

	// 2. Читаем бронирования один раз на весь горизонт
	bookings, err := uc.bookingRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 3. Считаем свободные слоты по каждому дню
	for _, d := range dates {
		count := availability.CountAvailable(uc.engine.GenerateSlots(d, appointmentType, availability.ActiveOnDate(bookings, d)))
		resp.Dates = append(resp.Dates, Date{
			Date:           d,
			OpeningHours:   uc.engine.OpeningHours(d),
			AvailableSlots: &count,
		})
	}

	return resp, nil
}
