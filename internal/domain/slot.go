package domain

import (
	"time"

	"github.com/m04kA/CMS-ReceptionService/pkg/types"
)

// SlotState represents the logical state of a reception slot
type SlotState string

const (
	SlotStateAvailable SlotState = "available"
	SlotStateBooked    SlotState = "booked"
	SlotStateWithdrawn SlotState = "withdrawn"
)

// Slot represents a single bookable reception slot of a manager
// A slot holds at most one booking; the booking is embedded state
// (booked_by, booked_email, notes), not a separate entity
type Slot struct {
	ID         int64
	ManagerID  int64
	TemplateID *int64 // шаблон, из которого слот сгенерирован
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString

	IsAvailable bool
	IsBooked    bool

	// Заполнены только когда IsBooked = true
	BookedBy    *string
	BookedEmail *string
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// State returns the logical state of the slot
// is_available=false && is_booked=false means the slot was withdrawn by an administrator
func (s *Slot) State() SlotState {
	switch {
	case s.IsBooked:
		return SlotStateBooked
	case s.IsAvailable:
		return SlotStateAvailable
	default:
		return SlotStateWithdrawn
	}
}

// CanBeBooked returns true if the slot is open for booking
func (s *Slot) CanBeBooked() bool {
	return s.IsAvailable && !s.IsBooked
}

// CanBeCancelled returns true if the slot holds a booking that can be released
func (s *Slot) CanBeCancelled() bool {
	return s.IsBooked
}

// SlotFilter фильтр для выборки слотов менеджера
type SlotFilter struct {
	ManagerID     int64      // Обязательный параметр
	StartDate     *time.Time // Начало периода (опционально)
	EndDate       *time.Time // Конец периода (опционально)
	OnlyAvailable bool       // Только свободные слоты (публичная выдача)
	OnlyBooked    bool       // Только забронированные (календарь администратора)
}
