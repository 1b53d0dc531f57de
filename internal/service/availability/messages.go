package availability

// Сообщения валидации показываются клиенту рядом с полем формы
const (
	msgAppointmentTypeRequired = "Bitte wählen Sie einen Termintyp."
	msgDateRequired            = "Bitte wählen Sie ein Datum."
	msgDateInvalid             = "Das Datum hat ein ungültiges Format (erwartet JJJJ-MM-TT)."
	msgDateInPast              = "Das gewählte Datum liegt in der Vergangenheit."
	msgDateTooFarAhead         = "Termine können maximal %d Tage im Voraus gebucht werden."
	msgDateClosed              = "An diesem Tag ist die Werkstatt geschlossen."
	msgTimeRequired            = "Bitte wählen Sie eine Uhrzeit."
	msgTimeInvalid             = "Die Uhrzeit hat ein ungültiges Format (erwartet HH:MM)."
	msgTimeOffGrid             = "Bitte wählen Sie eine der angebotenen Uhrzeiten."
	msgTimeLeadTime            = "Termine müssen mindestens %d Stunden im Voraus gebucht werden."
	msgTimeConflict            = "Dieser Termin ist leider nicht mehr verfügbar."
	msgNameTooShort            = "Bitte geben Sie Ihren Namen ein (mindestens 2 Zeichen)."
	msgPhoneTooShort           = "Bitte geben Sie eine gültige Telefonnummer ein."
	msgPhoneInvalidChars       = "Die Telefonnummer enthält ungültige Zeichen."
	msgEmailInvalid            = "Bitte geben Sie eine gültige E-Mail-Adresse ein."
	msgNotesTooLong            = "Die Notizen dürfen maximal %d Zeichen lang sein."
)
