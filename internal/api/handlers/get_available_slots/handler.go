package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers"
	getAvailableSlots "github.com/avezht/NutriPlan-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidNutritionistID = "некорректный ID нутрициолога"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput          = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/nutritionists/{nutritionistId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем nutritionistId из URL
	nutritionistIDStr := vars["nutritionistId"]
	nutritionistID, err := strconv.ParseInt(nutritionistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /nutritionists/{id}/available-slots - Invalid nutritionist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNutritionistID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /nutritionists/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(nutritionistID, dateStr)
	if err != nil {
		h.logger.Warn("GET /nutritionists/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /nutritionists/{id}/available-slots - Invalid input: nutritionist_id=%d, error=%v",
				nutritionistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /nutritionists/{id}/available-slots - Failed to get slots: nutritionist_id=%d, error=%v",
				nutritionistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /nutritionists/{id}/available-slots - Slots retrieved successfully: nutritionist_id=%d, date=%s, slots_count=%d",
		nutritionistID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
