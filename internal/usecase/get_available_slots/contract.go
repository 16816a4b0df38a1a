package get_available_slots

import (
	"context"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	"github.com/m04kA/CMS-ReceptionService/internal/integrations/staffservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByManagerWithFilter(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error)
}

// StaffServiceClient интерфейс клиента StaffService
type StaffServiceClient interface {
	GetManager(ctx context.Context, managerID int64) (*staffservice.Manager, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
