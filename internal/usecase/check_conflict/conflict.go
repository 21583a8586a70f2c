package check_conflict

import (
	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/types"
)

// conflict описывает найденное пересечение с существующей консультацией
type conflict struct {
	StartTime   types.TimeString
	PatientName string
}

// findConflict ищет первое пересечение предлагаемого интервала с существующими
// консультациями, занимающими слот (scheduled/completed)
//
// Интервалы полуоткрытые: [start, start+duration) и [eStart, eEnd) пересекаются,
// только если start < eEnd И eStart < end. Граничное касание конфликтом не является
func findConflict(
	startTime types.TimeString,
	durationMinutes int,
	appointments []*domain.Appointment,
) (*conflict, error) {
	proposedStart, err := startTime.Minutes()
	if err != nil {
		return nil, err
	}
	proposedEnd := proposedStart + durationMinutes

	for _, appointment := range appointments {
		// Отменённые и no-show консультации слот не занимают
		if !appointment.IsBlocking() {
			continue
		}

		existingStart, err := appointment.StartTime.Minutes()
		if err != nil {
			continue
		}

		existingDuration := appointment.DurationMinutes
		if existingDuration <= 0 {
			existingDuration = domain.DefaultAppointmentDurationMinutes
		}
		existingEnd := existingStart + existingDuration

		if proposedStart < existingEnd && existingStart < proposedEnd {
			return &conflict{
				StartTime:   appointment.StartTime,
				PatientName: appointment.PatientName,
			}, nil
		}
	}

	return nil, nil
}
