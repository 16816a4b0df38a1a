package slots

import (
	"context"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	GetByManagerWithFilter(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error)
	CancelBooking(ctx context.Context, id int64) error
	Withdraw(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
