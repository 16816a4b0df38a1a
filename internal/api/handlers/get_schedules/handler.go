package get_schedules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CMS-ReceptionService/internal/api/handlers"
	"github.com/m04kA/CMS-ReceptionService/internal/service/schedules"
)

const (
	msgInvalidManagerID = "некорректный ID руководителя"
	msgInvalidParams    = "некорректные параметры запроса"
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

// Handle GET /api/v1/managers/{managerId}/recurring-schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем managerId из URL
	vars := mux.Vars(r)
	managerIDStr := vars["managerId"]

	managerID, err := strconv.ParseInt(managerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /managers/{id}/recurring-schedules - Invalid manager ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidManagerID)
		return
	}

	// Получаем шаблоны расписания
	result, err := h.service.ListByManager(r.Context(), managerID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("GET /managers/{id}/recurring-schedules - Invalid parameters: manager_id=%d", managerID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /managers/{id}/recurring-schedules - Failed to get schedules: manager_id=%d, error=%v",
				managerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /managers/{id}/recurring-schedules - Schedules retrieved successfully: manager_id=%d, count=%d",
		managerID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
