package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	appointmentRepo "github.com/avezht/NutriPlan-SchedulingService/internal/infra/storage/appointment"
	scheduleRepo "github.com/avezht/NutriPlan-SchedulingService/internal/infra/storage/schedule"
	"github.com/avezht/NutriPlan-SchedulingService/internal/integrations/patientservice"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/ptr"
)

// Фейки зависимостей

type fakeAppointmentRepo struct {
	existing  []*domain.Appointment
	createErr error
	created   *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *appointment
	created.ID = 42
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) GetByNutritionistWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.existing, nil
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

type fakePatientClient struct {
	patient *patientservice.Patient
	err     error
}

func (f *fakePatientClient) GetOwnedPatient(_ context.Context, _, _ int64) (*patientservice.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.patient, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testPatient() *patientservice.Patient {
	return &patientservice.Patient{
		ID:             7,
		NutritionistID: 1,
		FullName:       "Анна Иванова",
	}
}

func newTestUseCase(repo *fakeAppointmentRepo, schedule *fakeScheduleRepo, patients *fakePatientClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, schedule, patients, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		NutritionistID: 1,
		PatientID:      7,
		Date:           time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
	}
}

func TestCreateExecute_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	schedule := &fakeScheduleRepo{config: &domain.ScheduleConfig{AppointmentDurationMinutes: 45}}
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(repo, schedule, &fakePatientClient{patient: testPatient()}, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, "Анна Иванова", resp.PatientName)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Анна Иванова", repo.created.PatientName)
}

func TestCreateExecute_NoConfigUsesDefaultDuration(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	schedule := &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound}
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(repo, schedule, &fakePatientClient{patient: testPatient()}, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultAppointmentDurationMinutes, resp.DurationMinutes)
}

func TestCreateExecute_ExplicitDurationOverridesConfig(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	schedule := &fakeScheduleRepo{config: &domain.ScheduleConfig{AppointmentDurationMinutes: 45}}
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(repo, schedule, &fakePatientClient{patient: testPatient()}, now)

	req := validRequest()
	req.DurationMinutes = ptr.Ptr(90)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 90, resp.DurationMinutes)
}

func TestCreateExecute_TimeConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{StartTime: "10:30", DurationMinutes: 60, Status: domain.StatusScheduled, PatientName: "Пётр Петров"},
		},
	}
	schedule := &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound}
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(repo, schedule, &fakePatientClient{patient: testPatient()}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestCreateExecute_BoundaryTouchAllowed(t *testing.T) {
	repo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{StartTime: "09:00", DurationMinutes: 60, Status: domain.StatusScheduled},
		},
	}
	schedule := &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound}
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(repo, schedule, &fakePatientClient{patient: testPatient()}, now)

	// Существующая заканчивается ровно в 10:00 - конфликта нет
	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestCreateExecute_UniqueConstraintMapsToConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{createErr: appointmentRepo.ErrSlotTaken}
	schedule := &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound}
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(repo, schedule, &fakePatientClient{patient: testPatient()}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestCreateExecute_DateInPast(t *testing.T) {
	schedule := &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound}
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeAppointmentRepo{}, schedule, &fakePatientClient{patient: testPatient()}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateExecute_TimeInPastToday(t *testing.T) {
	schedule := &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound}
	now := time.Date(2025, 10, 13, 11, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeAppointmentRepo{}, schedule, &fakePatientClient{patient: testPatient()}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTimeInPast)
}

func TestCreateExecute_PatientNotFound(t *testing.T) {
	schedule := &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound}
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeAppointmentRepo{}, schedule,
		&fakePatientClient{err: patientservice.ErrPatientNotFound}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestCreateExecute_PatientNotOwned(t *testing.T) {
	schedule := &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound}
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeAppointmentRepo{}, schedule,
		&fakePatientClient{err: patientservice.ErrPatientNotOwned}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPatientNotOwned)
}

func TestCreateExecute_InvalidDuration(t *testing.T) {
	schedule := &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound}
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeAppointmentRepo{}, schedule, &fakePatientClient{patient: testPatient()}, now)

	req := validRequest()
	req.DurationMinutes = ptr.Ptr(3)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
