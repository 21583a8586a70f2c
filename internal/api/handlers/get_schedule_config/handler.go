package get_schedule_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers"
	scheduleService "github.com/avezht/NutriPlan-SchedulingService/internal/service/schedule"
)

const (
	msgInvalidNutritionistID = "некорректный ID нутрициолога"
	msgConfigNotFound        = "конфигурация расписания не найдена"
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

// Handle GET /api/v1/nutritionists/{nutritionistId}/schedule-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем nutritionistId из URL
	vars := mux.Vars(r)
	nutritionistIDStr := vars["nutritionistId"]

	nutritionistID, err := strconv.ParseInt(nutritionistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /nutritionists/{id}/schedule-config - Invalid nutritionist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNutritionistID)
		return
	}

	// Получаем конфигурацию расписания
	config, err := h.service.Get(r.Context(), nutritionistID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrConfigNotFound):
			h.logger.Warn("GET /nutritionists/{id}/schedule-config - Config not found: nutritionist_id=%d",
				nutritionistID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("GET /nutritionists/{id}/schedule-config - Invalid input: nutritionist_id=%d, error=%v",
				nutritionistID, err)
			handlers.RespondBadRequest(w, msgInvalidNutritionistID)

		default:
			h.logger.Error("GET /nutritionists/{id}/schedule-config - Failed to get config: nutritionist_id=%d, error=%v",
				nutritionistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /nutritionists/{id}/schedule-config - Config retrieved successfully: nutritionist_id=%d",
		nutritionistID)
	handlers.RespondJSON(w, http.StatusOK, config)
}
