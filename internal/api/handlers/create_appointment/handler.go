package create_appointment

import (
	"errors"
	"net/http"

	"github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers"
	"github.com/avezht/NutriPlan-SchedulingService/internal/api/middleware"
	createAppointment "github.com/avezht/NutriPlan-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgPatientNotFound    = "пациент не найден"
	msgPatientNotOwned    = "пациент принадлежит другому нутрициологу"
	msgInvalidDate        = "дата консультации уже прошла"
	msgTimeInPast         = "время консультации уже прошло"
	msgTimeConflict       = "время пересекается с существующей консультацией"
	msgInvalidInput       = "некорректные данные консультации"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем nutritionistID из контекста (через middleware Auth)
	nutritionistID, ok := middleware.GetNutritionistID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(nutritionistID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrTimeConflict):
			h.logger.Warn("POST /appointments - Time conflict: nutritionist_id=%d, patient_id=%d",
				nutritionistID, req.PatientID)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, createAppointment.ErrPatientNotFound):
			h.logger.Warn("POST /appointments - Patient not found: patient_id=%d", req.PatientID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, createAppointment.ErrPatientNotOwned):
			h.logger.Warn("POST /appointments - Patient not owned: nutritionist_id=%d, patient_id=%d",
				nutritionistID, req.PatientID)
			handlers.RespondForbidden(w, msgPatientNotOwned)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Date in past: nutritionist_id=%d, patient_id=%d",
				nutritionistID, req.PatientID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrTimeInPast):
			h.logger.Warn("POST /appointments - Time in past: nutritionist_id=%d, patient_id=%d",
				nutritionistID, req.PatientID)
			handlers.RespondBadRequest(w, msgTimeInPast)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: nutritionist_id=%d, error=%v", nutritionistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: nutritionist_id=%d, patient_id=%d, error=%v",
				nutritionistID, req.PatientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, nutritionist_id=%d, patient_id=%d",
		result.ID, nutritionistID, req.PatientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
