package get_available_slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/availability"
)

// UseCase use case для получения слотов на дату
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

// Execute выполняет use case получения слотов
// Для выходного дня возвращается пустой список без ошибки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: type=%s, date=%s", req.AppointmentTypeID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	typeID := strings.TrimSpace(req.AppointmentTypeID)
	if typeID == "" || req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: type id and date are required")
		return nil, ErrInvalidInput
	}

	// 2. Ищем тип записи
	appointmentType, ok := uc.catalog.Find(typeID)
	if !ok {
		uc.logger.Warn("GetAvailableSlots: appointment type %q not found", typeID)
		return nil, ErrAppointmentTypeNotFound
	}

	// 3. Проверяем горизонт бронирования
	date := domain.DateOnly(req.Date)
	if uc.engine.IsDateInPast(date) {
		return nil, ErrDateInPast
	}
	if uc.engine.IsDateTooFarAhead(date) {
		return nil, ErrDateTooFarInFuture
	}

	// 4. Получаем бронирования на дату
	bookings, err := uc.bookingRepo.ListByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 5. Генерируем слоты
	slots := uc.engine.GenerateSlots(date, appointmentType, bookings)

	resp := &Response{
		Date:            date,
		AppointmentType: appointmentType,
		OpeningHours:    uc.engine.OpeningHours(date),
		Slots:           slots,
		Groups:          availability.GroupByPeriod(slots),
		AvailableCount:  availability.CountAvailable(slots),
	}
	if next, ok := availability.NextAvailable(slots); ok {
		resp.NextAvailable = &next
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available on %s",
		resp.AvailableCount, len(slots), date.Format(domain.DateFormat))

	return resp, nil
}
