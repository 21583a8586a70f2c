package get_available_slots

import (
	"fmt"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/types"
)

// generateTimeSlots генерирует список всех возможных временных слотов на день
// Курсор идет от начала рабочего дня с фиксированным шагом duration+buffer,
// пока слот целиком помещается в рабочие часы (t + duration <= workEnd)
//
// Кандидат, пересекающийся с обеденным перерывом, пропускается, но курсор
// продвигается на тот же шаг - обеденный интервал не заполняется укороченным слотом
func generateTimeSlots(config *domain.ScheduleConfig) ([]types.TimeString, error) {
	workStart, err := config.WorkStart.Minutes()
	if err != nil {
		return nil, fmt.Errorf("invalid work start: %v", err)
	}

	workEnd, err := config.WorkEnd.Minutes()
	if err != nil {
		return nil, fmt.Errorf("invalid work end: %v", err)
	}

	duration := config.AppointmentDurationMinutes
	step := config.SlotStepMinutes()

	lunchStart, lunchEnd := 0, 0
	if config.LunchEnabled {
		lunchStart, err = config.LunchStart.Minutes()
		if err != nil {
			return nil, fmt.Errorf("invalid lunch start: %v", err)
		}
		lunchEnd, err = config.LunchEnd.Minutes()
		if err != nil {
			return nil, fmt.Errorf("invalid lunch end: %v", err)
		}
	}

	slots := make([]types.TimeString, 0)

	for t := workStart; t+duration <= workEnd; t += step {
		// Пересечение полуинтервалов [t, t+duration) и [lunchStart, lunchEnd)
		if config.LunchEnabled && t < lunchEnd && lunchStart < t+duration {
			continue
		}

		slot, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			return nil, fmt.Errorf("format slot at %d minutes: %v", t, err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// filterBookedSlots удаляет из списка слоты, время начала которых уже занято
// консультацией со статусом, занимающим слот (scheduled/completed)
// Отменённые и no-show консультации слот не занимают
func filterBookedSlots(slots []types.TimeString, appointments []*domain.Appointment) []types.TimeString {
	if len(appointments) == 0 {
		return slots
	}

	booked := make(map[types.TimeString]struct{}, len(appointments))
	for _, appointment := range appointments {
		if !appointment.IsBlocking() {
			continue
		}
		booked[appointment.StartTime] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, taken := booked[slot]; taken {
			continue
		}
		available = append(available, slot)
	}

	return available
}
