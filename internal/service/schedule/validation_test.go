package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
)

func validConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		NutritionistID:             1,
		WorkingDays:                []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday},
		WorkStart:                  "09:00",
		WorkEnd:                    "17:00",
		AppointmentDurationMinutes: 60,
		BufferMinutes:              0,
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	assert.NoError(t, validateConfig(validConfig()))
}

func TestValidateConfig_ValidWithLunch(t *testing.T) {
	config := validConfig()
	config.LunchEnabled = true
	config.LunchStart = "13:00"
	config.LunchEnd = "14:00"

	assert.NoError(t, validateConfig(config))
}

func TestValidateConfig_EmptyWorkingDays(t *testing.T) {
	config := validConfig()
	config.WorkingDays = nil

	assert.ErrorIs(t, validateConfig(config), ErrEmptyWorkingDays)
}

func TestValidateConfig_UnknownWorkingDay(t *testing.T) {
	config := validConfig()
	config.WorkingDays = []domain.Weekday{domain.Monday, "someday"}

	assert.ErrorIs(t, validateConfig(config), ErrInvalidWorkingDay)
}

func TestValidateConfig_DuplicateWorkingDay(t *testing.T) {
	config := validConfig()
	config.WorkingDays = []domain.Weekday{domain.Monday, domain.Monday}

	assert.ErrorIs(t, validateConfig(config), ErrInvalidInput)
}

func TestValidateConfig_WorkStartAfterWorkEnd(t *testing.T) {
	config := validConfig()
	config.WorkStart = "18:00"
	config.WorkEnd = "09:00"

	assert.ErrorIs(t, validateConfig(config), ErrInvalidHoursOrder)
}

func TestValidateConfig_WorkStartEqualsWorkEnd(t *testing.T) {
	config := validConfig()
	config.WorkStart = "09:00"
	config.WorkEnd = "09:00"

	assert.ErrorIs(t, validateConfig(config), ErrInvalidHoursOrder)
}

func TestValidateConfig_InvalidTimeFormat(t *testing.T) {
	config := validConfig()
	config.WorkStart = "9:00"

	assert.ErrorIs(t, validateConfig(config), ErrInvalidInput)
}

func TestValidateConfig_LunchOutsideWorkingHours(t *testing.T) {
	config := validConfig()
	config.LunchEnabled = true
	config.LunchStart = "08:00"
	config.LunchEnd = "09:30"

	assert.ErrorIs(t, validateConfig(config), ErrLunchOutOfBounds)
}

func TestValidateConfig_LunchEndBeforeStart(t *testing.T) {
	config := validConfig()
	config.LunchEnabled = true
	config.LunchStart = "14:00"
	config.LunchEnd = "13:00"

	assert.ErrorIs(t, validateConfig(config), ErrLunchOutOfBounds)
}

func TestValidateConfig_LunchIgnoredWhenDisabled(t *testing.T) {
	config := validConfig()
	config.LunchEnabled = false
	config.LunchStart = "25:00"
	config.LunchEnd = "99:99"

	assert.NoError(t, validateConfig(config))
}

func TestValidateConfig_DurationTooShort(t *testing.T) {
	config := validConfig()
	config.AppointmentDurationMinutes = 3

	assert.ErrorIs(t, validateConfig(config), ErrInvalidDuration)
}

func TestValidateConfig_DurationTooLong(t *testing.T) {
	config := validConfig()
	config.AppointmentDurationMinutes = 500

	assert.ErrorIs(t, validateConfig(config), ErrInvalidDuration)
}

func TestValidateConfig_NegativeBuffer(t *testing.T) {
	config := validConfig()
	config.BufferMinutes = -5

	assert.ErrorIs(t, validateConfig(config), ErrInvalidInput)
}
