package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/types"
)

func testConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		NutritionistID:             1,
		WorkingDays:                []domain.Weekday{domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday},
		WorkStart:                  "09:00",
		WorkEnd:                    "17:00",
		AppointmentDurationMinutes: 60,
		BufferMinutes:              0,
	}
}

func slotStrings(slots []types.TimeString) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestGenerateTimeSlots_StandardDay(t *testing.T) {
	config := testConfig()

	slots, err := generateTimeSlots(config)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"},
		slotStrings(slots))
}

func TestGenerateTimeSlots_LunchBreakSkipped(t *testing.T) {
	config := testConfig()
	config.LunchEnabled = true
	config.LunchStart = "13:00"
	config.LunchEnd = "14:00"

	slots, err := generateTimeSlots(config)
	require.NoError(t, err)

	// 13:00 выпадает, курсор продолжает с 14:00 - обед не заполняется укороченным слотом
	assert.Equal(t,
		[]string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00"},
		slotStrings(slots))
}

func TestGenerateTimeSlots_PartialLunchOverlapSkipped(t *testing.T) {
	config := testConfig()
	config.AppointmentDurationMinutes = 90
	config.LunchEnabled = true
	config.LunchStart = "13:00"
	config.LunchEnd = "13:30"

	slots, err := generateTimeSlots(config)
	require.NoError(t, err)

	// Слот 12:00-13:30 пересекается с обедом 13:00-13:30 и выпадает
	assert.NotContains(t, slotStrings(slots), "12:00")
}

func TestGenerateTimeSlots_BufferSpacing(t *testing.T) {
	config := testConfig()
	config.WorkEnd = "10:00"
	config.AppointmentDurationMinutes = 30
	config.BufferMinutes = 15

	slots, err := generateTimeSlots(config)
	require.NoError(t, err)

	// 09:45 + 30 минут выходит за 10:00, поэтому остаётся только 09:00
	assert.Equal(t, []string{"09:00"}, slotStrings(slots))
}

func TestGenerateTimeSlots_SlotsFitWorkingHours(t *testing.T) {
	config := testConfig()
	config.WorkStart = "08:30"
	config.WorkEnd = "12:15"
	config.AppointmentDurationMinutes = 45
	config.BufferMinutes = 10

	slots, err := generateTimeSlots(config)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	workStart, err := config.WorkStart.Minutes()
	require.NoError(t, err)
	workEnd, err := config.WorkEnd.Minutes()
	require.NoError(t, err)

	prev := -1
	for _, slot := range slots {
		start, err := slot.Minutes()
		require.NoError(t, err)

		assert.GreaterOrEqual(t, start, workStart)
		assert.LessOrEqual(t, start+config.AppointmentDurationMinutes, workEnd)

		if prev >= 0 {
			assert.Equal(t, config.SlotStepMinutes(), start-prev)
		}
		prev = start
	}
}

func TestGenerateTimeSlots_DayTooShort(t *testing.T) {
	config := testConfig()
	config.WorkStart = "09:00"
	config.WorkEnd = "09:30"

	slots, err := generateTimeSlots(config)
	require.NoError(t, err)

	assert.Empty(t, slots)
}

func TestFilterBookedSlots_RemovesBookedStartTimes(t *testing.T) {
	slots := []types.TimeString{"09:00", "10:00", "11:00"}
	appointments := []*domain.Appointment{
		{StartTime: "10:00", Status: domain.StatusScheduled},
	}

	available := filterBookedSlots(slots, appointments)

	assert.Equal(t, []string{"09:00", "11:00"}, slotStrings(available))
}

func TestFilterBookedSlots_CompletedBlocksSlot(t *testing.T) {
	slots := []types.TimeString{"09:00", "10:00"}
	appointments := []*domain.Appointment{
		{StartTime: "09:00", Status: domain.StatusCompleted},
	}

	available := filterBookedSlots(slots, appointments)

	assert.Equal(t, []string{"10:00"}, slotStrings(available))
}

func TestFilterBookedSlots_ReleasedStatusesDoNotBlock(t *testing.T) {
	slots := []types.TimeString{"09:00", "10:00", "11:00"}
	appointments := []*domain.Appointment{
		{StartTime: "09:00", Status: domain.StatusCancelled},
		{StartTime: "10:00", Status: domain.StatusNoShow},
	}

	available := filterBookedSlots(slots, appointments)

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotStrings(available))
}

func TestFilterBookedSlots_NoAppointments(t *testing.T) {
	slots := []types.TimeString{"09:00", "10:00"}

	available := filterBookedSlots(slots, nil)

	assert.Equal(t, slots, available)
}
