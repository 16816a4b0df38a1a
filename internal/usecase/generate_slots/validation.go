package generate_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
)

// validateTemplate проверяет инварианты шаблона до любой записи в хранилище
// Некорректный шаблон отклоняется целиком - частичных наборов слотов не бывает
func validateTemplate(tpl *domain.ScheduleTemplate) error {
	if !tpl.Cadence.IsValid() {
		return fmt.Errorf("%w: unknown cadence %q", ErrInvalidTemplate, tpl.Cadence)
	}

	if !tpl.Cadence.IsGeneratable() {
		return fmt.Errorf("%w: cadence %q", ErrUnsupportedCadence, tpl.Cadence)
	}

	if tpl.Cadence != domain.CadenceDaily {
		if tpl.Weekday < time.Sunday || tpl.Weekday > time.Saturday {
			return fmt.Errorf("%w: weekday must be in [0..6], got %d", ErrInvalidTemplate, tpl.Weekday)
		}
	}

	if tpl.Cadence == domain.CadenceNthWeekday {
		if tpl.WeekNumber < domain.MinWeekNumber || tpl.WeekNumber > domain.MaxWeekNumber {
			return fmt.Errorf("%w: weekNumber must be in [%d..%d], got %d",
				ErrInvalidTemplate, domain.MinWeekNumber, domain.MaxWeekNumber, tpl.WeekNumber)
		}
	}

	if tpl.StartTime.IsZero() || tpl.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidTemplate)
	}
	if err := tpl.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidTemplate, err)
	}
	if err := tpl.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidTemplate, err)
	}
	if !tpl.StartTime.IsBefore(tpl.EndTime) {
		return fmt.Errorf("%w: startTime %s must be before endTime %s",
			ErrInvalidTemplate, tpl.StartTime, tpl.EndTime)
	}

	if tpl.SlotDurationMinutes < domain.MinSlotDurationMinutes || tpl.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be in [%d..%d], got %d",
			ErrInvalidTemplate, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes, tpl.SlotDurationMinutes)
	}

	window, err := tpl.WindowMinutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	if window < tpl.SlotDurationMinutes {
		return fmt.Errorf("%w: reception window of %d minutes is shorter than one slot (%d minutes)",
			ErrInvalidTemplate, window, tpl.SlotDurationMinutes)
	}

	if tpl.MonthsAhead < domain.MinMonthsAhead || tpl.MonthsAhead > domain.MaxMonthsAhead {
		return fmt.Errorf("%w: monthsAhead must be in [%d..%d], got %d",
			ErrInvalidTemplate, domain.MinMonthsAhead, domain.MaxMonthsAhead, tpl.MonthsAhead)
	}

	return nil
}
