package domain

import "github.com/avezht/NutriPlan-SchedulingService/pkg/types"

// Slot represents a bookable appointment start time on a specific date.
// Slots are derived from a ScheduleConfig, never persisted.
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// EndTime returns the slot's end time
func (s *Slot) EndTime() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}
