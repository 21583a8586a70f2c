package get_patient_appointments

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers"
	"github.com/avezht/NutriPlan-SchedulingService/internal/api/middleware"
)

const (
	msgInvalidPatientID = "некорректный ID пациента"
	msgMissingUserID    = "отсутствует ID пользователя"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/patients/{patientId}/appointments
// Возвращает историю консультаций пациента у аутентифицированного нутрициолога
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем patientId из URL
	vars := mux.Vars(r)
	patientIDStr := vars["patientId"]

	patientID, err := strconv.ParseInt(patientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /patients/{id}/appointments - Invalid patient ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}

	// Получаем nutritionistID из контекста (через middleware Auth)
	nutritionistID, ok := middleware.GetNutritionistID(r.Context())
	if !ok {
		h.logger.Warn("GET /patients/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем консультации пациента у этого нутрициолога
	result, err := h.service.GetPatientAppointments(r.Context(), nutritionistID, patientID)
	if err != nil {
		h.logger.Error("GET /patients/{id}/appointments - Failed to get appointments: patient_id=%d, error=%v",
			patientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /patients/{id}/appointments - Appointments retrieved successfully: patient_id=%d, nutritionist_id=%d, count=%d",
		patientID, nutritionistID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
