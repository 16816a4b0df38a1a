package generate_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CMS-ReceptionService/internal/api/handlers"
	generateSlots "github.com/m04kA/CMS-ReceptionService/internal/usecase/generate_slots"
)

const (
	msgInvalidTemplateID    = "некорректный ID шаблона расписания"
	msgTemplateNotFound     = "шаблон расписания не найден"
	msgTemplateInactive     = "шаблон расписания деактивирован"
	msgUnsupportedCadence   = "шаблон с таким типом повторения не разворачивается в слоты"
	msgInvalidTemplate      = "некорректные параметры шаблона расписания"
	msgSlotOverlap          = "слоты шаблона пересекаются с уже существующими слотами руководителя"
	msgGenerationInProgress = "генерация слотов по этому расписанию уже выполняется"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/recurring-schedules/{templateId}/generate
// Дозаполняет горизонт слотов по шаблону; уже созданные слоты не трогаются
// Эндпоинт дергает внешний cron для продления горизонта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем templateId из URL
	vars := mux.Vars(r)
	templateIDStr := vars["templateId"]

	templateID, err := strconv.ParseInt(templateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /recurring-schedules/{id}/generate - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &generateSlots.Request{TemplateID: templateID})
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrTemplateNotFound):
			h.logger.Warn("POST /recurring-schedules/{id}/generate - Template not found: template_id=%d", templateID)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		case errors.Is(err, generateSlots.ErrTemplateInactive):
			h.logger.Warn("POST /recurring-schedules/{id}/generate - Template inactive: template_id=%d", templateID)
			handlers.RespondError(w, http.StatusConflict, msgTemplateInactive)

		case errors.Is(err, generateSlots.ErrUnsupportedCadence):
			h.logger.Warn("POST /recurring-schedules/{id}/generate - Unsupported cadence: template_id=%d", templateID)
			handlers.RespondBadRequest(w, msgUnsupportedCadence)

		case errors.Is(err, generateSlots.ErrInvalidTemplate):
			h.logger.Warn("POST /recurring-schedules/{id}/generate - Invalid template: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondBadRequest(w, msgInvalidTemplate)

		case errors.Is(err, generateSlots.ErrSlotOverlap):
			h.logger.Warn("POST /recurring-schedules/{id}/generate - Slot overlap: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondError(w, http.StatusConflict, msgSlotOverlap)

		case errors.Is(err, generateSlots.ErrGenerationInProgress):
			h.logger.Warn("POST /recurring-schedules/{id}/generate - Generation in progress: template_id=%d", templateID)
			handlers.RespondError(w, http.StatusConflict, msgGenerationInProgress)

		default:
			h.logger.Error("POST /recurring-schedules/{id}/generate - Failed to generate slots: template_id=%d, error=%v",
				templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /recurring-schedules/{id}/generate - Slots generated successfully: template_id=%d, slots=%d",
		templateID, result.SlotsCreated)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
