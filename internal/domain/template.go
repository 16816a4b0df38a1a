package domain

import (
	"time"

	"github.com/m04kA/CMS-ReceptionService/pkg/types"
)

// Cadence is the closed set of recurrence kinds a template can carry
type Cadence string

const (
	// CadenceNthWeekday "N-й недельный день месяца" (например, первый понедельник)
	CadenceNthWeekday Cadence = "nth_weekday_of_month"
	// CadenceWeekly каждый указанный день недели
	CadenceWeekly Cadence = "weekly"
	// CadenceDaily каждый день
	CadenceDaily Cadence = "daily"
	// CadenceCustom неинтерпретируемый вариант из исходных данных
	// Хранится и отображается, но генератор отказывается его разворачивать
	CadenceCustom Cadence = "custom"
)

// IsValid returns true if the cadence belongs to the known set
func (c Cadence) IsValid() bool {
	switch c {
	case CadenceNthWeekday, CadenceWeekly, CadenceDaily, CadenceCustom:
		return true
	}
	return false
}

// IsGeneratable returns true if the slot generator can expand this cadence
func (c Cadence) IsGeneratable() bool {
	return c == CadenceNthWeekday || c == CadenceWeekly || c == CadenceDaily
}

// ScheduleTemplate describes one recurring reception pattern of a manager
// The generator expands it into concrete dated slots over [today, today+MonthsAhead]
type ScheduleTemplate struct {
	ID        int64
	ManagerID int64

	Cadence    Cadence
	Weekday    time.Weekday // 0 = Sunday .. 6 = Saturday; ignored for daily
	WeekNumber int          // 1..5, only for nth_weekday_of_month

	StartTime           types.TimeString // граница окна приёма, без даты
	EndTime             types.TimeString
	SlotDurationMinutes int
	MonthsAhead         int

	// Неактивный шаблон перестаёт порождать новые слоты,
	// но уже сгенерированные не отзывает
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WindowMinutes возвращает длину окна приёма в минутах
func (t *ScheduleTemplate) WindowMinutes() (int, error) {
	start, err := t.StartTime.Minutes()
	if err != nil {
		return 0, err
	}
	end, err := t.EndTime.Minutes()
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// SlotsPerDay возвращает количество полных слотов в окне приёма
// Неполный остаток окна отбрасывается
func (t *ScheduleTemplate) SlotsPerDay() (int, error) {
	window, err := t.WindowMinutes()
	if err != nil {
		return 0, err
	}
	if t.SlotDurationMinutes <= 0 {
		return 0, nil
	}
	return window / t.SlotDurationMinutes, nil
}
