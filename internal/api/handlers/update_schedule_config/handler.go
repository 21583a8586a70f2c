package update_schedule_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers"
	"github.com/avezht/NutriPlan-SchedulingService/internal/api/middleware"
	scheduleService "github.com/avezht/NutriPlan-SchedulingService/internal/service/schedule"
)

const (
	msgInvalidNutritionistID = "некорректный ID нутрициолога"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
	msgEmptyWorkingDays      = "список рабочих дней не может быть пустым"
	msgInvalidWorkingDay     = "некорректный день недели"
	msgInvalidHoursOrder     = "начало рабочего дня должно быть раньше конца"
	msgLunchOutOfBounds      = "перерыв должен быть внутри рабочих часов"
	msgInvalidDuration       = "некорректная длительность консультации"
	msgInvalidInput          = "некорректные данные конфигурации"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/nutritionists/{nutritionistId}/schedule-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем nutritionistId из URL
	vars := mux.Vars(r)
	nutritionistIDStr := vars["nutritionistId"]

	nutritionistID, err := strconv.ParseInt(nutritionistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /nutritionists/{id}/schedule-config - Invalid nutritionist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNutritionistID)
		return
	}

	// Получаем nutritionistID из контекста (через middleware Auth)
	authID, ok := middleware.GetNutritionistID(r.Context())
	if !ok {
		h.logger.Warn("PUT /nutritionists/{id}/schedule-config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Нутрициолог редактирует только своё расписание
	if authID != nutritionistID {
		h.logger.Warn("PUT /nutritionists/{id}/schedule-config - Access denied: nutritionist_id=%d, auth_id=%d",
			nutritionistID, authID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req UpdateScheduleConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /nutritionists/{id}/schedule-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Сохраняем конфигурацию (сервис сам валидирует данные)
	config, err := h.service.Upsert(r.Context(), req.ToServiceRequest(nutritionistID))
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrEmptyWorkingDays):
			h.logger.Warn("PUT /nutritionists/{id}/schedule-config - Empty working days: nutritionist_id=%d",
				nutritionistID)
			handlers.RespondBadRequest(w, msgEmptyWorkingDays)

		case errors.Is(err, scheduleService.ErrInvalidWorkingDay):
			h.logger.Warn("PUT /nutritionists/{id}/schedule-config - Invalid working day: nutritionist_id=%d, error=%v",
				nutritionistID, err)
			handlers.RespondBadRequest(w, msgInvalidWorkingDay)

		case errors.Is(err, scheduleService.ErrInvalidHoursOrder):
			h.logger.Warn("PUT /nutritionists/{id}/schedule-config - Invalid hours order: nutritionist_id=%d",
				nutritionistID)
			handlers.RespondBadRequest(w, msgInvalidHoursOrder)

		case errors.Is(err, scheduleService.ErrLunchOutOfBounds):
			h.logger.Warn("PUT /nutritionists/{id}/schedule-config - Lunch out of bounds: nutritionist_id=%d",
				nutritionistID)
			handlers.RespondBadRequest(w, msgLunchOutOfBounds)

		case errors.Is(err, scheduleService.ErrInvalidDuration):
			h.logger.Warn("PUT /nutritionists/{id}/schedule-config - Invalid duration: nutritionist_id=%d, error=%v",
				nutritionistID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /nutritionists/{id}/schedule-config - Invalid input: nutritionist_id=%d, error=%v",
				nutritionistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /nutritionists/{id}/schedule-config - Failed to save config: nutritionist_id=%d, error=%v",
				nutritionistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /nutritionists/{id}/schedule-config - Config saved successfully: nutritionist_id=%d, config_id=%d",
		nutritionistID, config.ID)
	handlers.RespondJSON(w, http.StatusOK, config)
}
