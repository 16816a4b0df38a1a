package get_booked_slots

import (
	"context"

	"github.com/m04kA/CMS-ReceptionService/internal/service/slots/models"
)

type SlotService interface {
	GetBookedSlots(ctx context.Context, req *models.GetBookedSlotsRequest) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
