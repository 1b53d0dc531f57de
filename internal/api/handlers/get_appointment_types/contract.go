package get_appointment_types

import "github.com/m04kA/BikeWerkstatt-BookingService/internal/service/shopinfo/models"

type ShopInfoService interface {
	ListAppointmentTypes() *models.AppointmentTypesResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
