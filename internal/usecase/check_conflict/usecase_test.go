package check_conflict

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	scheduleRepo "github.com/avezht/NutriPlan-SchedulingService/internal/infra/storage/schedule"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/ptr"
)

// Фейки зависимостей

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByNutritionistWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRequest() *Request {
	return &Request{
		NutritionistID: 1,
		Date:           time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
	}
}

func TestCheckExecute_NoConflict(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.False(t, resp.HasConflict)
	assert.Nil(t, resp.ConflictingTime)
	assert.Nil(t, resp.ConflictingPatient)
}

func TestCheckExecute_ConflictReported(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartTime: "10:30", DurationMinutes: 60, Status: domain.StatusScheduled, PatientName: "Пётр Петров"},
		},
	}
	uc := NewUseCase(repo, &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.True(t, resp.HasConflict)
	require.NotNil(t, resp.ConflictingTime)
	assert.Equal(t, "10:30", resp.ConflictingTime.String())
	require.NotNil(t, resp.ConflictingPatient)
	assert.Equal(t, "Пётр Петров", *resp.ConflictingPatient)
}

func TestCheckExecute_BoundaryTouchNoConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartTime: "09:00", DurationMinutes: 60, Status: domain.StatusScheduled},
		},
	}
	uc := NewUseCase(repo, &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.False(t, resp.HasConflict)
}

func TestCheckExecute_DurationFromConfig(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartTime: "11:30", DurationMinutes: 60, Status: domain.StatusScheduled},
		},
	}
	schedule := &fakeScheduleRepo{config: &domain.ScheduleConfig{AppointmentDurationMinutes: 120}}
	uc := NewUseCase(repo, schedule, nopLogger{})

	// 10:00 + 120 минут из конфигурации пересекается с 11:30
	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.True(t, resp.HasConflict)
}

func TestCheckExecute_ExplicitDurationOverrides(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartTime: "11:30", DurationMinutes: 60, Status: domain.StatusScheduled},
		},
	}
	schedule := &fakeScheduleRepo{config: &domain.ScheduleConfig{AppointmentDurationMinutes: 120}}
	uc := NewUseCase(repo, schedule, nopLogger{})

	req := testRequest()
	req.DurationMinutes = ptr.Ptr(60)

	// 10:00-11:00 не достает до 11:30
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.HasConflict)
}

func TestCheckExecute_ReleasedStatusesIgnored(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusCancelled},
			{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusNoShow},
		},
	}
	uc := NewUseCase(repo, &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.False(t, resp.HasConflict)
}

func TestCheckExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound}, nopLogger{})

	req := testRequest()
	req.NutritionistID = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
