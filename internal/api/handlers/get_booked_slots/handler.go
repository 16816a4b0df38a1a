package get_booked_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CMS-ReceptionService/internal/api/handlers"
	"github.com/m04kA/CMS-ReceptionService/internal/service/slots"
)

const (
	msgInvalidManagerID = "некорректный ID руководителя"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams    = "некорректные параметры запроса"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/managers/{managerId}/slots/booked
// Календарь записей руководителя с контактами посетителей
// Query params: startDate, endDate (опционально, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем managerId из URL
	vars := mux.Vars(r)
	managerIDStr := vars["managerId"]

	managerID, err := strconv.ParseInt(managerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /managers/{id}/slots/booked - Invalid manager ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidManagerID)
		return
	}

	// Парсим опциональный период
	req, err := ToServiceRequest(managerID, r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /managers/{id}/slots/booked - Invalid date parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Получаем календарь записей
	result, err := h.service.GetBookedSlots(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("GET /managers/{id}/slots/booked - Invalid parameters: manager_id=%d, error=%v", managerID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /managers/{id}/slots/booked - Failed to get slots: manager_id=%d, error=%v", managerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /managers/{id}/slots/booked - Slots retrieved successfully: manager_id=%d, count=%d",
		managerID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
