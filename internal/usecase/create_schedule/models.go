package create_schedule

import (
	"time"

	"github.com/m04kA/CMS-ReceptionService/pkg/types"
)

// Request модель запроса на создание расписания приёма
type Request struct {
	ManagerID           int64            // ID менеджера
	Cadence             string           // nth_weekday_of_month | weekly | daily
	Weekday             int              // 0 = воскресенье .. 6 = суббота
	WeekNumber          int              // 1..5, только для nth_weekday_of_month
	StartTime           types.TimeString // начало окна приёма
	EndTime             types.TimeString // конец окна приёма
	SlotDurationMinutes int              // 0 - взять значение по умолчанию
	MonthsAhead         int              // 0 - взять значение по умолчанию
}

// Response модель ответа с созданным шаблоном и результатом генерации
type Response struct {
	TemplateID          int64
	ManagerID           int64
	Cadence             string
	Weekday             int
	WeekNumber          int
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int
	MonthsAhead         int
	IsActive            bool
	CreatedAt           time.Time

	SlotsCreated int64    // Сколько слотов сгенерировано
	Dates        []string // Даты приёма, YYYY-MM-DD
}
