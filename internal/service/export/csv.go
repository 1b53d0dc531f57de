package export

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
)

const (
	// ContentType тип содержимого выгрузки
	ContentType = "text/csv; charset=utf-8"

	bom       = "\ufeff"
	separator = ";"
)

var (
	header = []string{
		"ID",
		"Terminart",
		"Datum",
		"Uhrzeit",
		"Dauer (Min)",
		"Name",
		"Telefon",
		"E-Mail",
		"Notizen",
		"Status",
		"Erstellt am",
	}

	statusLabels = map[domain.BookingStatus]string{
		domain.StatusRequested: "Angefragt",
		domain.StatusConfirmed: "Bestätigt",
		domain.StatusCanceled:  "Storniert",
	}

	lineBreaks = regexp.MustCompile(`[\r\n]+`)
)

// GenerateCSV формирует таблицу бронирований для Excel:
// BOM, разделитель ";", строки через "\n", ячейки данных в двойных кавычках
func GenerateCSV(bookings []*domain.Booking) []byte {
	var b strings.Builder

	b.WriteString(bom)
	b.WriteString(strings.Join(header, separator))

	for _, booking := range bookings {
		b.WriteByte('\n')
		for i, cell := range row(booking) {
			if i > 0 {
				b.WriteString(separator)
			}
			b.WriteString(quote(cell))
		}
	}

	return []byte(b.String())
}

// FileName имя файла выгрузки на дату
func FileName(now time.Time) string {
	return "bikewerkstatt_termine_" + now.Format(domain.DateFormat) + ".csv"
}

// StatusLabel немецкое название статуса
func StatusLabel(status domain.BookingStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

func row(b *domain.Booking) []string {
	return []string{
		b.ID,
		b.AppointmentType.Name,
		b.Date.Format(domain.DateFormatShort),
		b.Time.String(),
		strconv.Itoa(b.AppointmentType.DurationMinutes),
		b.Customer.Name,
		b.Customer.Phone,
		b.Customer.Email,
		lineBreaks.ReplaceAllString(b.Customer.Notes, " "),
		StatusLabel(b.Status),
		b.CreatedAt.Format(domain.DateFormatShort),
	}
}

func quote(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
