package domain

import (
	"time"

	"github.com/avezht/NutriPlan-SchedulingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// IsValid returns true if the status is one of the known appointment statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// Appointment represents a consultation appointment with a patient
type Appointment struct {
	ID              int64
	NutritionistID  int64
	PatientID       int64
	AppointmentDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	PatientName string
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the appointment occupies its time slot
// (counts for conflict detection and slot availability)
func (a *Appointment) IsBlocking() bool {
	return a.Status == StatusScheduled || a.Status == StatusCompleted
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// CanChangeStatus returns true if the appointment status can transition to target
// Только запланированная консультация может быть завершена, отменена
// или помечена как неявка
func (a *Appointment) CanChangeStatus(target AppointmentStatus) bool {
	if a.Status != StatusScheduled {
		return false
	}
	return target == StatusCompleted || target == StatusCancelled || target == StatusNoShow
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// AppointmentsFilter фильтр для выборки консультаций нутрициолога
type AppointmentsFilter struct {
	NutritionistID  int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeReleased bool               // Включать ли отменённые и no-show консультации
}
