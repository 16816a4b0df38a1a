package book_slot

import (
	"time"

	"github.com/m04kA/CMS-ReceptionService/pkg/types"
)

// Request модель запроса на бронирование слота посетителем
type Request struct {
	SlotID   int64   // ID слота
	FullName string  // Имя посетителя
	Email    string  // Email посетителя
	Notes    *string // Комментарий к записи (опционально)
}

// Response модель ответа с забронированным слотом
type Response struct {
	SlotID      int64
	ManagerID   int64
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	BookedBy    string
	BookedEmail string
	Notes       *string
	UpdatedAt   time.Time
}
