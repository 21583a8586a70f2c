package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	scheduleRepo "github.com/avezht/NutriPlan-SchedulingService/internal/infra/storage/schedule"
)

// Фейки зависимостей

type fakeScheduleRepo struct {
	config *domain.ScheduleConfig
	err    error
}

func (f *fakeScheduleRepo) GetByNutritionist(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.config, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	lastFilter   domain.AppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByNutritionistWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// monday возвращает понедельник 2025-10-13
func monday() time.Time {
	return time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
}

func TestExecute_FullDayAvailable(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{config: testConfig()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{NutritionistID: 1, Date: monday()})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t,
		[]string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"},
		slotStrings(resp.Slots))
}

func TestExecute_BookedSlotsRemoved(t *testing.T) {
	appointments := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartTime: "10:00", Status: domain.StatusScheduled},
			{StartTime: "14:00", Status: domain.StatusCompleted},
		},
	}
	uc := NewUseCase(appointments, &fakeScheduleRepo{config: testConfig()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{NutritionistID: 1, Date: monday()})
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"09:00", "11:00", "12:00", "13:00", "15:00", "16:00"},
		slotStrings(resp.Slots))
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	appointments := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartTime: "10:00", Status: domain.StatusCancelled},
			{StartTime: "11:00", Status: domain.StatusNoShow},
		},
	}
	uc := NewUseCase(appointments, &fakeScheduleRepo{config: testConfig()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{NutritionistID: 1, Date: monday()})
	require.NoError(t, err)

	assert.Contains(t, slotStrings(resp.Slots), "10:00")
	assert.Contains(t, slotStrings(resp.Slots), "11:00")
}

func TestExecute_NoConfigReturnsEmpty(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{NutritionistID: 1, Date: monday()})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, 0, resp.DurationMinutes)
}

func TestExecute_NonWorkingDayReturnsEmpty(t *testing.T) {
	config := testConfig()
	config.WorkingDays = []domain.Weekday{domain.Tuesday}

	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{config: config}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{NutritionistID: 1, Date: monday()})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_LunchSlotAbsent(t *testing.T) {
	config := testConfig()
	config.LunchEnabled = true
	config.LunchStart = "13:00"
	config.LunchEnd = "14:00"

	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{config: config}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{NutritionistID: 1, Date: monday()})
	require.NoError(t, err)

	assert.NotContains(t, slotStrings(resp.Slots), "13:00")
	assert.Contains(t, slotStrings(resp.Slots), "14:00")
}

func TestExecute_FilterRequestsSingleDay(t *testing.T) {
	appointments := &fakeAppointmentRepo{}
	uc := NewUseCase(appointments, &fakeScheduleRepo{config: testConfig()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{NutritionistID: 1, Date: monday()})
	require.NoError(t, err)

	require.NotNil(t, appointments.lastFilter.StartDate)
	require.NotNil(t, appointments.lastFilter.EndDate)
	assert.Equal(t, monday(), *appointments.lastFilter.StartDate)
	assert.Equal(t, monday(), *appointments.lastFilter.EndDate)
	assert.False(t, appointments.lastFilter.IncludeReleased)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{config: testConfig()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{NutritionistID: 0, Date: monday()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
