package withdraw_slot

import (
	"context"

	"github.com/m04kA/CMS-ReceptionService/internal/service/slots/models"
)

type SlotService interface {
	Withdraw(ctx context.Context, slotID int64) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
