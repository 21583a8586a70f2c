package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/avezht/NutriPlan-SchedulingService/internal/domain"
	appointmentRepo "github.com/avezht/NutriPlan-SchedulingService/internal/infra/storage/appointment"
	scheduleRepo "github.com/avezht/NutriPlan-SchedulingService/internal/infra/storage/schedule"
	patientClient "github.com/avezht/NutriPlan-SchedulingService/internal/integrations/patientservice"
)

// UseCase use case для создания консультации
//
// Проверка конфликта и вставка выполняются в одной сериализуемой транзакции
// с блокировкой записей дня (FOR UPDATE); частичный уникальный индекс БД на
// (nutritionist_id, appointment_date, start_time) страхует от двойного
// бронирования даже при конкурентных запросах
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	patientClient   PatientServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	patientClient PatientServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		patientClient:   patientClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания консультации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: nutritionist=%d, patient=%d, date=%s, time=%s",
		req.NutritionistID, req.PatientID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата и время ещё не прошли
	if err := validateNotInPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: date/time validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем пациента с проверкой принадлежности нутрициологу
	patient, err := uc.patientClient.GetOwnedPatient(ctx, req.NutritionistID, req.PatientID)
	if err != nil {
		switch {
		case errors.Is(err, patientClient.ErrPatientNotFound):
			uc.logger.Warn("CreateAppointment: patient id=%d not found", req.PatientID)
			return nil, ErrPatientNotFound
		case errors.Is(err, patientClient.ErrPatientNotOwned):
			uc.logger.Warn("CreateAppointment: patient id=%d not owned by nutritionist=%d",
				req.PatientID, req.NutritionistID)
			return nil, ErrPatientNotOwned
		default:
			uc.logger.Error("CreateAppointment: failed to get patient id=%d: %v", req.PatientID, err)
			return nil, fmt.Errorf("%w: failed to get patient: %v", ErrInternal, err)
		}
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Определяем длительность: из запроса или из конфигурации расписания
		durationMinutes := domain.DefaultAppointmentDurationMinutes

		config, err := uc.scheduleRepo.GetByNutritionist(txCtx, req.NutritionistID)
		if err != nil && !errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			uc.logger.Error("CreateAppointment: failed to get schedule config: %v", err)
			return fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
		}
		if config != nil {
			durationMinutes = config.AppointmentDurationMinutes
		}
		if req.DurationMinutes != nil {
			durationMinutes = *req.DurationMinutes
		}

		// 5.2. Получаем занимающие слот консультации дня с блокировкой (FOR UPDATE)
		filter := domain.AppointmentsFilter{
			NutritionistID:  req.NutritionistID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeReleased: false,
		}

		appointments, err := uc.appointmentRepo.GetByNutritionistWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.3. Проверяем пересечение с существующими консультациями
		found, err := findConflict(req.StartTime, durationMinutes, appointments)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if found != nil {
			uc.logger.Warn("CreateAppointment: time conflict at %s with appointment of %s",
				found.StartTime, found.PatientName)
			return fmt.Errorf("%w: conflicts with appointment at %s", ErrTimeConflict, found.StartTime)
		}

		// 5.4. Создаем консультацию с денормализацией имени пациента
		appointment := &domain.Appointment{
			NutritionistID:  req.NutritionistID,
			PatientID:       req.PatientID,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: durationMinutes,
			Status:          domain.StatusScheduled,
			PatientName:     patient.FullName,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Уникальный индекс БД - финальный арбитр при конкурентном создании
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s already taken (unique constraint)", req.StartTime)
				return fmt.Errorf("%w: conflicts with appointment at %s", ErrTimeConflict, req.StartTime)
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		NutritionistID:  result.NutritionistID,
		PatientID:       result.PatientID,
		Date:            result.AppointmentDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		PatientName:     result.PatientName,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
