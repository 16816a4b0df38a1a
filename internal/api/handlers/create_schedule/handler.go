package create_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CMS-ReceptionService/internal/api/handlers"
	createSchedule "github.com/m04kA/CMS-ReceptionService/internal/usecase/create_schedule"
)

const (
	msgInvalidManagerID     = "некорректный ID руководителя"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTime          = "некорректный формат времени, ожидается HH:MM"
	msgInvalidSchedule      = "некорректные параметры расписания"
	msgManagerNotFound      = "руководитель не найден"
	msgSlotOverlap          = "слоты расписания пересекаются с уже существующими слотами руководителя"
	msgGenerationInProgress = "генерация слотов по этому расписанию уже выполняется"
)

type Handler struct {
	useCase CreateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CreateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/managers/{managerId}/recurring-schedule
// Создаёт шаблон расписания и сразу генерирует по нему слоты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем managerId из URL
	vars := mux.Vars(r)
	managerIDStr := vars["managerId"]

	managerID, err := strconv.ParseInt(managerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /managers/{id}/recurring-schedule - Invalid manager ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidManagerID)
		return
	}

	// Декодируем body
	var req CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /managers/{id}/recurring-schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(managerID)
	if err != nil {
		h.logger.Warn("POST /managers/{id}/recurring-schedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSchedule.ErrInvalidInput):
			h.logger.Warn("POST /managers/{id}/recurring-schedule - Invalid schedule: manager_id=%d, error=%v",
				managerID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, createSchedule.ErrManagerNotFound):
			h.logger.Warn("POST /managers/{id}/recurring-schedule - Manager not found: manager_id=%d", managerID)
			handlers.RespondNotFound(w, msgManagerNotFound)

		case errors.Is(err, createSchedule.ErrSlotOverlap):
			h.logger.Warn("POST /managers/{id}/recurring-schedule - Slot overlap: manager_id=%d, error=%v",
				managerID, err)
			handlers.RespondError(w, http.StatusConflict, msgSlotOverlap)

		case errors.Is(err, createSchedule.ErrGenerationInProgress):
			h.logger.Warn("POST /managers/{id}/recurring-schedule - Generation in progress: manager_id=%d", managerID)
			handlers.RespondError(w, http.StatusConflict, msgGenerationInProgress)

		default:
			h.logger.Error("POST /managers/{id}/recurring-schedule - Failed to create schedule: manager_id=%d, error=%v",
				managerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /managers/{id}/recurring-schedule - Schedule created successfully: manager_id=%d, template_id=%d, slots=%d",
		managerID, result.TemplateID, result.SlotsCreated)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
