package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	appointmentRepo "github.com/avezht/NutriPlan-SchedulingService/internal/infra/storage/appointment"
	"github.com/avezht/NutriPlan-SchedulingService/internal/service/appointments/models"
)

// Service сервис для работы с консультациями
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса консультаций
func NewService(
	appointmentRepo AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает консультацию по ID
// Нутрициолог видит только свои консультации
func (s *Service) GetByID(ctx context.Context, id int64, nutritionistID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for nutritionist=%d", id, nutritionistID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if appointment.NutritionistID != nutritionistID {
		s.logger.Warn("GetByID: access denied for nutritionist=%d to appointment id=%d", nutritionistID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// GetNutritionistAppointments получает консультации нутрициолога с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых консультаций
//
// Примеры использования:
// - Все активные консультации: GetNutritionistAppointments(ctx, &GetNutritionistAppointmentsRequest{NutritionistID: 123})
// - Консультации на дату: StartDate и EndDate указывают на одну дату
// - Консультации за период: StartDate и EndDate указывают на разные даты
// - Только завершённые: указать Status = "completed"
// - Включая отменённые: IncludeReleased = true
func (s *Service) GetNutritionistAppointments(ctx context.Context, req *models.GetNutritionistAppointmentsRequest) (*models.AppointmentListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetNutritionistAppointments: fetching appointments for nutritionist=%d", req.NutritionistID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeReleased {
		logMsg += ", includeReleased=true"
	}
	s.logger.Info(logMsg)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetNutritionistAppointments: invalid filter for nutritionist=%d: %v", req.NutritionistID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем консультации с фильтрацией
	appointments, err := s.appointmentRepo.GetByNutritionistWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetNutritionistAppointments: repository error for nutritionist=%d: %v", req.NutritionistID, err)
		return nil, fmt.Errorf("%w: GetNutritionistAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetNutritionistAppointments: successfully fetched %d appointments for nutritionist=%d",
		len(appointments), req.NutritionistID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetPatientAppointments получает историю консультаций пациента у нутрициолога
func (s *Service) GetPatientAppointments(ctx context.Context, nutritionistID, patientID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetPatientAppointments: fetching appointments for patient=%d, nutritionist=%d",
		patientID, nutritionistID)

	appointments, err := s.appointmentRepo.GetByPatient(ctx, nutritionistID, patientID)
	if err != nil {
		s.logger.Error("GetPatientAppointments: repository error for patient=%d: %v", patientID, err)
		return nil, fmt.Errorf("%w: GetPatientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPatientAppointments: successfully fetched %d appointments for patient=%d",
		len(appointments), patientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет консультацию
// Отменить можно только запланированную (scheduled) консультацию
// Отмена освобождает слот - он снова появляется в выдаче доступных
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by nutritionist=%d", appointmentID, req.NutritionistID)

	// Получаем консультацию
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if appointment.NutritionistID != req.NutritionistID {
		s.logger.Warn("Cancel: access denied for nutritionist=%d to appointment id=%d",
			req.NutritionistID, appointmentID)
		return ErrAccessDenied
	}

	// Проверяем, можно ли отменить консультацию
	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appointment.Status)
		return ErrCannotCancel
	}

	// Отменяем консультацию
	if err := s.appointmentRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// UpdateStatus обновляет статус консультации
// Допустимые переходы: scheduled -> completed, scheduled -> no_show
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by nutritionist=%d",
		appointmentID, req.Status, req.NutritionistID)

	// Получаем консультацию
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if appointment.NutritionistID != req.NutritionistID {
		s.logger.Warn("UpdateStatus: access denied for nutritionist=%d to appointment id=%d",
			req.NutritionistID, appointmentID)
		return ErrAccessDenied
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Проверяем допустимость перехода
	if !appointment.CanChangeStatus(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%d",
			appointment.Status, newStatus, appointmentID)
		return ErrInvalidStatus
	}

	// Обновляем статус
	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return nil
}
