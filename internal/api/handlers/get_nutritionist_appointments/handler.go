package get_nutritionist_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers"
	"github.com/avezht/NutriPlan-SchedulingService/internal/api/middleware"
	"github.com/avezht/NutriPlan-SchedulingService/internal/service/appointments"
)

const (
	msgInvalidNutritionistID = "некорректный ID нутрициолога"
	msgInvalidDateFormat     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
	msgInvalidFilter         = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/nutritionists/{nutritionistId}/appointments
// Query params: startDate, endDate (YYYY-MM-DD), status, includeReleased
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем nutritionistId из URL
	vars := mux.Vars(r)
	nutritionistIDStr := vars["nutritionistId"]

	nutritionistID, err := strconv.ParseInt(nutritionistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /nutritionists/{id}/appointments - Invalid nutritionist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNutritionistID)
		return
	}

	// Получаем nutritionistID из контекста (через middleware Auth)
	authID, ok := middleware.GetNutritionistID(r.Context())
	if !ok {
		h.logger.Warn("GET /nutritionists/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Нутрициолог видит только свой календарь
	if authID != nutritionistID {
		h.logger.Warn("GET /nutritionists/{id}/appointments - Access denied: nutritionist_id=%d, auth_id=%d",
			nutritionistID, authID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Парсим query параметры фильтрации
	req, err := ToServiceRequest(nutritionistID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /nutritionists/{id}/appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	// Получаем консультации с фильтрацией
	result, err := h.service.GetNutritionistAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /nutritionists/{id}/appointments - Invalid filter: nutritionist_id=%d, error=%v",
				nutritionistID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /nutritionists/{id}/appointments - Failed to get appointments: nutritionist_id=%d, error=%v",
				nutritionistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /nutritionists/{id}/appointments - Appointments retrieved successfully: nutritionist_id=%d, count=%d",
		nutritionistID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
