package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	appointmentRepo "github.com/avezht/NutriPlan-SchedulingService/internal/infra/storage/appointment"
	"github.com/avezht/NutriPlan-SchedulingService/internal/service/appointments/models"
)

// Фейк репозитория консультаций

type fakeRepo struct {
	appointment *domain.Appointment
	getErr      error

	cancelledID     int64
	cancelReason    *string
	updatedStatus   domain.AppointmentStatus
	updatedStatusID int64
}

func (f *fakeRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.appointment, nil
}

func (f *fakeRepo) GetByNutritionistWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) GetByPatient(_ context.Context, _, _ int64) ([]*domain.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	f.updatedStatusID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason *string) error {
	f.cancelledID = id
	f.cancelReason = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func scheduledAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:             10,
		NutritionistID: 1,
		PatientID:      7,
		StartTime:      "10:00",
		Status:         domain.StatusScheduled,
	}
}

func TestGetByID_OwnAppointment(t *testing.T) {
	svc := NewService(&fakeRepo{appointment: scheduledAppointment()}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestGetByID_ForeignAppointment(t *testing.T) {
	svc := NewService(&fakeRepo{appointment: scheduledAppointment()}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 2)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{getErr: appointmentRepo.ErrAppointmentNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 1)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_Scheduled(t *testing.T) {
	repo := &fakeRepo{appointment: scheduledAppointment()}
	svc := NewService(repo, nopLogger{})

	reason := "пациент попросил перенести"
	err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{
		NutritionistID:     1,
		CancellationReason: &reason,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), repo.cancelledID)
	require.NotNil(t, repo.cancelReason)
	assert.Equal(t, reason, *repo.cancelReason)
}

func TestCancel_CompletedNotCancellable(t *testing.T) {
	appointment := scheduledAppointment()
	appointment.Status = domain.StatusCompleted
	svc := NewService(&fakeRepo{appointment: appointment}, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{NutritionistID: 1})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_ForeignAppointment(t *testing.T) {
	svc := NewService(&fakeRepo{appointment: scheduledAppointment()}, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{NutritionistID: 2})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_ScheduledToCompleted(t *testing.T) {
	repo := &fakeRepo{appointment: scheduledAppointment()}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		NutritionistID: 1,
		Status:         "completed",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
}

func TestUpdateStatus_ScheduledToNoShow(t *testing.T) {
	repo := &fakeRepo{appointment: scheduledAppointment()}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		NutritionistID: 1,
		Status:         "no_show",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusNoShow, repo.updatedStatus)
}

func TestUpdateStatus_CompletedIsFinal(t *testing.T) {
	appointment := scheduledAppointment()
	appointment.Status = domain.StatusCompleted
	svc := NewService(&fakeRepo{appointment: appointment}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		NutritionistID: 1,
		Status:         "scheduled",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc := NewService(&fakeRepo{appointment: scheduledAppointment()}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		NutritionistID: 1,
		Status:         "postponed",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
