package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/availability"
	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	engine      *availability.Engine
	catalog     domain.Catalog
	submitDelay time.Duration
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	bookingRepo BookingRepository,
	engine *availability.Engine,
	catalog domain.Catalog,
	submitDelay time.Duration,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		engine:      engine,
		catalog:     catalog,
		submitDelay: submitDelay,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Ошибки бизнес-валидации возвращаются как domain.ValidationErrors
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: type=%s, date=%s, time=%s", req.AppointmentTypeID, req.Date, req.Time)

	// 1. Ищем тип записи (пустой ID - ошибка валидации, неизвестный - not found)
	var appointmentType *domain.AppointmentType
	if typeID := strings.TrimSpace(req.AppointmentTypeID); typeID != "" {
		t, ok := uc.catalog.Find(typeID)
		if !ok {
			uc.logger.Warn("CreateBooking: appointment type %q not found", typeID)
			return nil, ErrAppointmentTypeNotFound
		}
		appointmentType = &t
	}

	// 2. Получаем бронирования на дату (если дата разбирается)
	var bookings []*domain.Booking
	date, dateErr := time.Parse(domain.DateFormat, strings.TrimSpace(req.Date))
	if dateErr == nil {
		var err error
		bookings, err = uc.bookingRepo.ListByDate(ctx, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings for %s: %v", req.Date, err)
			return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}
	}

	// 3. Полная валидация без досрочного выхода
	errs := uc.engine.ValidateBooking(availability.BookingInput{
		AppointmentType: appointmentType,
		Date:            req.Date,
		Time:            req.Time,
		Customer:        req.Customer,
	}, bookings)
	if len(errs) > 0 {
		for _, ve := range errs {
			uc.observeValidationFailed(ve.Field)
		}
		uc.logger.Warn("CreateBooking: validation failed: %v", errs)
		return nil, errs
	}

	// После успешной валидации время гарантированно разбирается
	start, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: parse validated time: %v", ErrInternal, err)
	}

	// 4. Косметическая задержка перед сохранением
	if err := uc.wait(ctx); err != nil {
		return nil, err
	}

	// 5. Повторно проверяем конфликт и сохраняем в одной критической секции хранилища
	booking, err := uc.bookingRepo.AppendIfFree(ctx, domain.NewBooking{
		AppointmentType: *appointmentType,
		Date:            date,
		Time:            start,
		Customer:        trimCustomer(req.Customer),
		Status:          domain.StatusRequested,
	}, func(sameDay []*domain.Booking) error {
		if blocking := availability.FindConflict(
			sameDay, date, start, appointmentType.DurationMinutes, appointmentType.BufferMinutes, "",
		); blocking != nil {
			uc.logger.Warn("CreateBooking: slot %s %s taken by booking %s", req.Date, start, blocking.ID)
			return ErrSlotNotAvailable
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			if uc.metrics != nil {
				uc.metrics.BookingConflict()
			}
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to save booking: %v", err)
		return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.BookingCreated(booking.AppointmentType.ID)
	}
	uc.logger.Info("CreateBooking: booking %s created (%s %s, %s)",
		booking.ID, booking.DateString(), booking.Time, booking.AppointmentType.ID)

	return toResponse(booking), nil
}

func (uc *UseCase) wait(ctx context.Context) error {
	if uc.submitDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(uc.submitDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return errors.Join(ErrInternal, ctx.Err())
	}
}

func (uc *UseCase) observeValidationFailed(field string) {
	if uc.metrics != nil {
		uc.metrics.ValidationFailed(field)
	}
}

func trimCustomer(c domain.Customer) domain.Customer {
	return domain.Customer{
		Name:  strings.TrimSpace(c.Name),
		Phone: strings.TrimSpace(c.Phone),
		Email: strings.TrimSpace(c.Email),
		Notes: strings.TrimSpace(c.Notes),
	}
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		AppointmentType: b.AppointmentType,
		Date:            b.Date,
		Time:            b.Time,
		Customer:        b.Customer,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}
}
