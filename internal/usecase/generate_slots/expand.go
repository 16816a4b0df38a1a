package generate_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	"github.com/m04kA/CMS-ReceptionService/pkg/ptr"
)

// expandTemplate разворачивает шаблон в конкретные слоты на горизонте
// [from, from + MonthsAhead]. Даты нормализованы к полуночи UTC.
func expandTemplate(tpl *domain.ScheduleTemplate, from time.Time) ([]*domain.Slot, error) {
	start := dateOnly(from)
	until := start.AddDate(0, tpl.MonthsAhead, 0)

	dates, err := enumerateDates(tpl, start, until)
	if err != nil {
		return nil, err
	}

	slots := make([]*domain.Slot, 0, len(dates))
	for _, date := range dates {
		daySlots, err := splitWindow(tpl, date)
		if err != nil {
			return nil, err
		}
		slots = append(slots, daySlots...)
	}

	return slots, nil
}

// enumerateDates перечисляет даты приёма по каденции шаблона
// Результат упорядочен по возрастанию
func enumerateDates(tpl *domain.ScheduleTemplate, from, until time.Time) ([]time.Time, error) {
	switch tpl.Cadence {
	case domain.CadenceNthWeekday:
		return enumerateNthWeekday(tpl.Weekday, tpl.WeekNumber, from, until), nil

	case domain.CadenceWeekly:
		return enumerateWeekly(tpl.Weekday, from, until), nil

	case domain.CadenceDaily:
		return enumerateDaily(from, until), nil

	default:
		return nil, fmt.Errorf("%w: cadence %q", ErrUnsupportedCadence, tpl.Cadence)
	}
}

// enumerateNthWeekday находит в каждом месяце горизонта N-е вхождение дня недели
// Месяц, в котором такого вхождения нет (например, пятый понедельник), пропускается
func enumerateNthWeekday(weekday time.Weekday, weekNumber int, from, until time.Time) []time.Time {
	dates := make([]time.Time, 0)

	month := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !month.After(until) {
		if date, ok := nthWeekdayOfMonth(month.Year(), month.Month(), weekday, weekNumber); ok {
			if !date.Before(from) && !date.After(until) {
				dates = append(dates, date)
			}
		}
		month = month.AddDate(0, 1, 0)
	}

	return dates
}

// enumerateWeekly перечисляет все вхождения дня недели в горизонте
func enumerateWeekly(weekday time.Weekday, from, until time.Time) []time.Time {
	dates := make([]time.Time, 0)

	offset := (int(weekday) - int(from.Weekday()) + 7) % 7
	date := from.AddDate(0, 0, offset)
	for !date.After(until) {
		dates = append(dates, date)
		date = date.AddDate(0, 0, 7)
	}

	return dates
}

// enumerateDaily перечисляет каждый день горизонта
func enumerateDaily(from, until time.Time) []time.Time {
	dates := make([]time.Time, 0)

	for date := from; !date.After(until); date = date.AddDate(0, 0, 1) {
		dates = append(dates, date)
	}

	return dates
}

// nthWeekdayOfMonth возвращает дату N-го вхождения дня недели в месяце
// ok=false, если в месяце меньше N таких дней
func nthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) (time.Time, bool) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	day := 1 + offset + 7*(n-1)

	lastDay := first.AddDate(0, 1, -1).Day()
	if day > lastDay {
		return time.Time{}, false
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}

// splitWindow нарезает окно приёма одной даты на последовательные слоты
// фиксированной длительности. Неполный остаток окна отбрасывается,
// укороченный слот не создаётся никогда.
func splitWindow(tpl *domain.ScheduleTemplate, date time.Time) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	current := tpl.StartTime
	for {
		end, err := current.AddMinutes(tpl.SlotDurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if end.IsAfter(tpl.EndTime) {
			break
		}

		slots = append(slots, &domain.Slot{
			ManagerID:   tpl.ManagerID,
			TemplateID:  ptr.Ptr(tpl.ID),
			Date:        date,
			StartTime:   current,
			EndTime:     end,
			IsAvailable: true,
			IsBooked:    false,
		})

		current = end
	}

	return slots, nil
}

// dateOnly обнуляет время, оставляя только календарную дату в UTC
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// collectDates возвращает отсортированный список уникальных дат набора слотов
// Слоты приходят уже упорядоченными по датам
func collectDates(slots []*domain.Slot) []string {
	dates := make([]string, 0)
	seen := ""

	for _, s := range slots {
		formatted := s.Date.Format(domain.DateFormat)
		if formatted != seen {
			dates = append(dates, formatted)
			seen = formatted
		}
	}

	return dates
}
