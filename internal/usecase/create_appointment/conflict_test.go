package create_appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/types"
)

func scheduled(start string, duration int) *domain.Appointment {
	return &domain.Appointment{
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		Status:          domain.StatusScheduled,
		PatientName:     "Анна Иванова",
	}
}

func TestFindConflict_Overlap(t *testing.T) {
	existing := []*domain.Appointment{scheduled("11:00", 60)}

	// Предложенный 11:30-12:30 пересекается с 11:00-12:00
	found, err := findConflict("11:30", 60, existing)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "11:00", found.StartTime.String())
	assert.Equal(t, "Анна Иванова", found.PatientName)
}

func TestFindConflict_ContainedInterval(t *testing.T) {
	existing := []*domain.Appointment{scheduled("10:00", 120)}

	// Предложенный 10:30-11:00 целиком внутри 10:00-12:00
	found, err := findConflict("10:30", 30, existing)
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestFindConflict_BoundaryTouchIsNotConflict(t *testing.T) {
	existing := []*domain.Appointment{scheduled("10:30", 60)}

	// Существующая заканчивается в 11:30, предложенная начинается в 11:30
	found, err := findConflict("11:30", 60, existing)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Предложенная заканчивается в 10:30, существующая начинается в 10:30
	found, err = findConflict("09:30", 60, existing)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindConflict_ReleasedStatusesIgnored(t *testing.T) {
	existing := []*domain.Appointment{
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusCancelled},
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusNoShow},
	}

	found, err := findConflict("10:00", 60, existing)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindConflict_CompletedBlocks(t *testing.T) {
	existing := []*domain.Appointment{
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusCompleted},
	}

	found, err := findConflict("10:30", 60, existing)
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestFindConflict_MissingDurationDefaultsTo60(t *testing.T) {
	existing := []*domain.Appointment{
		{StartTime: "10:00", DurationMinutes: 0, Status: domain.StatusScheduled},
	}

	// При нулевой длительности существующей записи считаем её 60-минутной
	found, err := findConflict("10:45", 30, existing)
	require.NoError(t, err)
	assert.NotNil(t, found)

	found, err = findConflict("11:00", 30, existing)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindConflict_InvalidProposedTime(t *testing.T) {
	_, err := findConflict("25:00", 60, nil)
	assert.Error(t, err)
}
