package create_schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
)

// validateRequest валидирует запрос целиком до записи шаблона в хранилище
// Шаблон, который генератор не сможет развернуть, не создаётся вовсе
func validateRequest(req *Request) error {
	if req.ManagerID <= 0 {
		return fmt.Errorf("%w: managerID must be positive", ErrInvalidInput)
	}

	cadence := domain.Cadence(req.Cadence)
	if !cadence.IsValid() {
		return fmt.Errorf("%w: unknown cadence %q", ErrInvalidInput, req.Cadence)
	}
	// "custom" существует только для данных, импортированных из старой CMS:
	// его семантика не специфицирована, новые расписания с ним не создаются
	if !cadence.IsGeneratable() {
		return fmt.Errorf("%w: cadence %q cannot be scheduled", ErrInvalidInput, req.Cadence)
	}

	if cadence != domain.CadenceDaily {
		if req.Weekday < 0 || req.Weekday > 6 {
			return fmt.Errorf("%w: weekday must be in [0..6], got %d", ErrInvalidInput, req.Weekday)
		}
	}

	if cadence == domain.CadenceNthWeekday {
		if req.WeekNumber < domain.MinWeekNumber || req.WeekNumber > domain.MaxWeekNumber {
			return fmt.Errorf("%w: weekNumber must be in [%d..%d], got %d",
				ErrInvalidInput, domain.MinWeekNumber, domain.MaxWeekNumber, req.WeekNumber)
		}
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime %s must be before endTime %s",
			ErrInvalidInput, req.StartTime, req.EndTime)
	}

	// 0 значит "взять значение по умолчанию", границы проверяем по эффективному значению
	duration := req.SlotDurationMinutes
	if duration == 0 {
		duration = domain.DefaultSlotDurationMinutes
	}
	if duration < domain.MinSlotDurationMinutes || duration > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be in [%d..%d]",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	startMinutes, _ := req.StartTime.Minutes()
	endMinutes, _ := req.EndTime.Minutes()
	if window := endMinutes - startMinutes; window < duration {
		return fmt.Errorf("%w: reception window of %d minutes is shorter than one slot (%d minutes)",
			ErrInvalidInput, window, duration)
	}

	monthsAhead := req.MonthsAhead
	if monthsAhead == 0 {
		monthsAhead = domain.DefaultMonthsAhead
	}
	if monthsAhead < domain.MinMonthsAhead || monthsAhead > domain.MaxMonthsAhead {
		return fmt.Errorf("%w: monthsAhead must be in [%d..%d]",
			ErrInvalidInput, domain.MinMonthsAhead, domain.MaxMonthsAhead)
	}

	return nil
}

// toDomainTemplate собирает доменный шаблон, подставляя значения по умолчанию
func toDomainTemplate(req *Request) *domain.ScheduleTemplate {
	duration := req.SlotDurationMinutes
	if duration == 0 {
		duration = domain.DefaultSlotDurationMinutes
	}

	monthsAhead := req.MonthsAhead
	if monthsAhead == 0 {
		monthsAhead = domain.DefaultMonthsAhead
	}

	return &domain.ScheduleTemplate{
		ManagerID:           req.ManagerID,
		Cadence:             domain.Cadence(req.Cadence),
		Weekday:             time.Weekday(req.Weekday),
		WeekNumber:          req.WeekNumber,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		SlotDurationMinutes: duration,
		MonthsAhead:         monthsAhead,
		IsActive:            true,
	}
}
