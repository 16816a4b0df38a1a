package book_slot

import (
	"context"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	"github.com/m04kA/CMS-ReceptionService/internal/integrations/notifyservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// Book - одиночный условный UPDATE: успех ровно у одного из конкурентов
	Book(ctx context.Context, id int64, fullName, email string, notes *string) error
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
}

// NotifyServiceClient интерфейс клиента NotifyService
type NotifyServiceClient interface {
	SendBookingNotificationWithGracefulDegradation(ctx context.Context, n *notifyservice.BookingNotification) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
