package deactivate_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CMS-ReceptionService/internal/api/handlers"
	"github.com/m04kA/CMS-ReceptionService/internal/service/schedules"
)

const (
	msgInvalidTemplateID = "некорректный ID шаблона расписания"
	msgTemplateNotFound  = "шаблон расписания не найден"
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

// Handle PATCH /api/v1/recurring-schedules/{templateId}/deactivate
// Уже сгенерированные слоты остаются, новые по шаблону не создаются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем templateId из URL
	vars := mux.Vars(r)
	templateIDStr := vars["templateId"]

	templateID, err := strconv.ParseInt(templateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /recurring-schedules/{id}/deactivate - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	// Деактивируем шаблон
	if err := h.service.Deactivate(r.Context(), templateID); err != nil {
		switch {
		case errors.Is(err, schedules.ErrTemplateNotFound):
			h.logger.Warn("PATCH /recurring-schedules/{id}/deactivate - Template not found: template_id=%d", templateID)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		default:
			h.logger.Error("PATCH /recurring-schedules/{id}/deactivate - Failed to deactivate template: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /recurring-schedules/{id}/deactivate - Template deactivated successfully: template_id=%d", templateID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}
