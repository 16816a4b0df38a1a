package get_available_slots

import (
	"time"

	"github.com/m04kA/CMS-ReceptionService/pkg/types"
)

// Request модель запроса свободных слотов руководителя
type Request struct {
	ManagerID int64      // ID руководителя
	StartDate *time.Time // Начало периода (опционально)
	EndDate   *time.Time // Конец периода (опционально)
}

// SlotItem свободный слот в публичной выдаче
type SlotItem struct {
	SlotID    int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Response модель ответа со свободными слотами
type Response struct {
	ManagerID   int64
	ManagerName string
	Slots       []SlotItem
}
