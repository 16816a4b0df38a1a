package generate_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	scheduleRepo "github.com/m04kA/CMS-ReceptionService/internal/infra/storage/schedule"
)

// UseCase use case генерации слотов приёма по шаблону расписания
type UseCase struct {
	templateRepo TemplateRepository
	slotRepo     SlotRepository
	locker       Locker
	txManager    TransactionManager
	timeProvider TimeProvider
	lockTTL      time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	templateRepo TemplateRepository,
	slotRepo SlotRepository,
	locker Locker,
	txManager TransactionManager,
	lockTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		templateRepo: templateRepo,
		slotRepo:     slotRepo,
		locker:       locker,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		lockTTL:      lockTTL,
		logger:       logger,
	}
}

// Execute выполняет генерацию по существующему шаблону
// Вызывается администратором или внешним cron для продления горизонта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: template=%d", req.TemplateID)

	tpl, err := uc.templateRepo.GetByID(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrTemplateNotFound) {
			uc.logger.Warn("GenerateSlots: template id=%d not found", req.TemplateID)
			return nil, ErrTemplateNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get template id=%d: %v", req.TemplateID, err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	if !tpl.IsActive {
		uc.logger.Warn("GenerateSlots: template id=%d is inactive", req.TemplateID)
		return nil, ErrTemplateInactive
	}

	return uc.GenerateForTemplate(ctx, tpl)
}

// GenerateForTemplate разворачивает шаблон в слоты и сохраняет их
// Повторный запуск для того же шаблона и горизонта не создаёт дубликатов:
// вставка идёт по натуральному ключу (manager_id, slot_date, start_time).
// Пересечение с существующими слотами менеджера отклоняет генерацию целиком.
// Конкурентные запуски по одному шаблону сериализуются блокировкой.
func (uc *UseCase) GenerateForTemplate(ctx context.Context, tpl *domain.ScheduleTemplate) (*Response, error) {
	// Шаблон проверяется целиком до любой записи: генерация - всё или ничего
	if err := validateTemplate(tpl); err != nil {
		uc.logger.Warn("GenerateSlots: template id=%d validation failed: %v", tpl.ID, err)
		return nil, err
	}

	lockKey := fmt.Sprintf("slotgen:%d", tpl.ID)
	acquired, err := uc.locker.Lock(ctx, lockKey, uc.lockTTL)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to acquire lock for template id=%d: %v", tpl.ID, err)
		return nil, fmt.Errorf("%w: failed to acquire lock: %v", ErrInternal, err)
	}
	if !acquired {
		uc.logger.Warn("GenerateSlots: generation already in progress for template id=%d", tpl.ID)
		return nil, ErrGenerationInProgress
	}
	defer func() {
		if err := uc.locker.Unlock(ctx, lockKey); err != nil {
			uc.logger.Error("GenerateSlots: failed to release lock for template id=%d: %v", tpl.ID, err)
		}
	}()

	now := uc.timeProvider.Now()

	slots, err := expandTemplate(tpl, now)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to expand template id=%d: %v", tpl.ID, err)
		return nil, err
	}

	var inserted int64
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.checkOverlap(txCtx, tpl.ManagerID, slots); err != nil {
			return err
		}
		n, err := uc.slotRepo.CreateBatch(txCtx, slots)
		if err != nil {
			return fmt.Errorf("%w: failed to insert slots: %v", ErrInternal, err)
		}
		inserted = n
		return nil
	})
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to persist slots for template id=%d: %v", tpl.ID, err)
		return nil, err
	}

	dates := collectDates(slots)

	uc.logger.Info("GenerateSlots: template=%d, manager=%d, expanded=%d, inserted=%d, dates=%d",
		tpl.ID, tpl.ManagerID, len(slots), inserted, len(dates))

	return &Response{
		TemplateID:   tpl.ID,
		ManagerID:    tpl.ManagerID,
		SlotsCreated: inserted,
		Dates:        dates,
	}, nil
}

// checkOverlap ищет пересечения кандидатов с уже существующими слотами менеджера
// Натуральный ключ (manager_id, slot_date, start_time) ловит только точные дубликаты,
// слоты из другого шаблона со сдвинутым началом он не остановит - проверяем интервалы.
// Совпадающее начало пересечением не считается: такой кандидат отсекается вставкой
// по ключу, и повторная генерация остаётся идемпотентной
func (uc *UseCase) checkOverlap(ctx context.Context, managerID int64, candidates []*domain.Slot) error {
	if len(candidates) == 0 {
		return nil
	}

	// Кандидаты идут в порядке дат - границы периода берём с концов
	startDate := candidates[0].Date
	endDate := candidates[len(candidates)-1].Date

	existing, err := uc.slotRepo.GetByManagerWithFilter(ctx, domain.SlotFilter{
		ManagerID: managerID,
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to load existing slots: %v", ErrInternal, err)
	}
	if len(existing) == 0 {
		return nil
	}

	// Ключ по строке даты: time.Time из БД может отличаться таймзоной
	byDate := make(map[string][]*domain.Slot, len(existing))
	for _, s := range existing {
		day := s.Date.Format(domain.DateFormat)
		byDate[day] = append(byDate[day], s)
	}

	for _, c := range candidates {
		for _, e := range byDate[c.Date.Format(domain.DateFormat)] {
			if c.StartTime == e.StartTime {
				continue
			}
			if c.StartTime.IsBefore(e.EndTime) && e.StartTime.IsBefore(c.EndTime) {
				return fmt.Errorf("%w: manager %d already has slot %s-%s on %s",
					ErrSlotOverlap, managerID, e.StartTime, e.EndTime, c.Date.Format(domain.DateFormat))
			}
		}
	}

	return nil
}
