package withdraw_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CMS-ReceptionService/internal/api/handlers"
	"github.com/m04kA/CMS-ReceptionService/internal/service/slots"
)

const (
	msgInvalidSlotID  = "некорректный ID слота"
	msgSlotNotFound   = "слот не найден"
	msgCannotWithdraw = "слот нельзя снять с публикации"
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

// Handle POST /api/v1/slots/{slotId}/withdraw
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем slotId из URL
	vars := mux.Vars(r)
	slotIDStr := vars["slotId"]

	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/withdraw - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	// Снимаем слот с публикации
	result, err := h.service.Withdraw(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/withdraw - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slots.ErrSlotUnavailable):
			h.logger.Warn("POST /slots/{id}/withdraw - Slot cannot be withdrawn: slot_id=%d", slotID)
			handlers.RespondError(w, http.StatusConflict, msgCannotWithdraw)

		default:
			h.logger.Error("POST /slots/{id}/withdraw - Failed to withdraw slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/withdraw - Slot withdrawn successfully: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
