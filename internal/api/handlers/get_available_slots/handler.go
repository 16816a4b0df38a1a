package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CMS-ReceptionService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/CMS-ReceptionService/internal/usecase/get_available_slots"
)

const (
	msgInvalidManagerID = "некорректный ID руководителя"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams    = "некорректные параметры запроса"
	msgManagerNotFound  = "руководитель не найден"
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

// Handle GET /api/v1/managers/{managerId}/slots
// Query params: startDate, endDate (опционально, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем managerId из URL
	vars := mux.Vars(r)
	managerIDStr := vars["managerId"]

	managerID, err := strconv.ParseInt(managerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /managers/{id}/slots - Invalid manager ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidManagerID)
		return
	}

	// Парсим опциональный период
	req, err := ToUseCaseRequest(managerID, r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /managers/{id}/slots - Invalid date parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /managers/{id}/slots - Invalid parameters: manager_id=%d, error=%v", managerID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableSlots.ErrManagerNotFound):
			h.logger.Warn("GET /managers/{id}/slots - Manager not found: manager_id=%d", managerID)
			handlers.RespondNotFound(w, msgManagerNotFound)

		default:
			h.logger.Error("GET /managers/{id}/slots - Failed to get slots: manager_id=%d, error=%v", managerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /managers/{id}/slots - Slots retrieved successfully: manager_id=%d, count=%d",
		managerID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
