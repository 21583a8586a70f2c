package domain

// Default configuration values
const (
	DefaultAppointmentDurationMinutes = 60
	DefaultBufferMinutes              = 0
)

// Business validation constants
const (
	MinAppointmentDurationMinutes = 5
	MaxAppointmentDurationMinutes = 480 // 8 hours
	MaxBufferMinutes              = 240 // 4 hours
	MaxNotesLength                = 500
	MaxCancellationReasonLength   = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы консультаций, занимающих слот
// Единая политика для выдачи слотов и проверки конфликтов
var BlockingStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCompleted,
}

// ReleasedStatuses статусы консультаций, освобождающих слот
var ReleasedStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}
