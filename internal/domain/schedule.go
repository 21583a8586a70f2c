package domain

import (
	"strings"
	"time"

	"github.com/avezht/NutriPlan-SchedulingService/pkg/types"
)

// Weekday is a lowercase civil weekday name ("monday".."sunday")
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays содержит все дни недели в порядке понедельник..воскресенье
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsValid returns true if the weekday is one of the known weekday names
func (w Weekday) IsValid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	default:
		return false
	}
}

// WeekdayFromTime converts time.Weekday to the civil weekday name
func WeekdayFromTime(w time.Weekday) Weekday {
	return Weekday(strings.ToLower(w.String()))
}

// ScheduleConfig holds a nutritionist's working-time rules.
// Exactly one configuration exists per nutritionist (upsert semantics):
// saving a configuration for the same nutritionist replaces the previous one.
type ScheduleConfig struct {
	ID             int64
	NutritionistID int64

	WorkingDays []Weekday
	WorkStart   types.TimeString
	WorkEnd     types.TimeString

	LunchEnabled bool
	LunchStart   types.TimeString
	LunchEnd     types.TimeString

	AppointmentDurationMinutes int
	BufferMinutes              int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWorkingDay returns true if day is one of the configured working days
func (c *ScheduleConfig) IsWorkingDay(day Weekday) bool {
	for _, d := range c.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}

// SlotStepMinutes returns the distance between consecutive slot candidates
func (c *ScheduleConfig) SlotStepMinutes() int {
	return c.AppointmentDurationMinutes + c.BufferMinutes
}
