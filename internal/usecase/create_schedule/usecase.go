package create_schedule

import (
	"context"
	"errors"
	"fmt"

	staffClient "github.com/m04kA/CMS-ReceptionService/internal/integrations/staffservice"
	generateSlots "github.com/m04kA/CMS-ReceptionService/internal/usecase/generate_slots"
)

// UseCase use case создания расписания приёма: шаблон + немедленная генерация слотов
type UseCase struct {
	templateRepo TemplateRepository
	generator    SlotGenerator
	staffClient  StaffServiceClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	templateRepo TemplateRepository,
	generator SlotGenerator,
	staffClient StaffServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		templateRepo: templateRepo,
		generator:    generator,
		staffClient:  staffClient,
		logger:       logger,
	}
}

// Execute создает шаблон расписания и сразу разворачивает его в слоты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSchedule: manager=%d, cadence=%s, window=%s-%s, duration=%d, months=%d",
		req.ManagerID, req.Cadence, req.StartTime, req.EndTime, req.SlotDurationMinutes, req.MonthsAhead)

	// 1. Валидация входных данных (до любой записи)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что менеджер существует
	if _, err := uc.staffClient.GetManager(ctx, req.ManagerID); err != nil {
		if errors.Is(err, staffClient.ErrManagerNotFound) {
			uc.logger.Warn("CreateSchedule: manager id=%d not found", req.ManagerID)
			return nil, ErrManagerNotFound
		}
		uc.logger.Error("CreateSchedule: failed to get manager id=%d: %v", req.ManagerID, err)
		return nil, fmt.Errorf("%w: failed to get manager: %v", ErrInternal, err)
	}

	// 3. Сохраняем шаблон
	tpl, err := uc.templateRepo.Create(ctx, toDomainTemplate(req))
	if err != nil {
		uc.logger.Error("CreateSchedule: failed to create template for manager id=%d: %v", req.ManagerID, err)
		return nil, fmt.Errorf("%w: failed to create template: %v", ErrInternal, err)
	}

	// 4. Разворачиваем шаблон в слоты
	generated, err := uc.generator.GenerateForTemplate(ctx, tpl)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrGenerationInProgress):
			return nil, ErrGenerationInProgress
		case errors.Is(err, generateSlots.ErrSlotOverlap):
			uc.logger.Warn("CreateSchedule: template id=%d overlaps existing slots: %v", tpl.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrSlotOverlap, err)
		case errors.Is(err, generateSlots.ErrInvalidTemplate), errors.Is(err, generateSlots.ErrUnsupportedCadence):
			// Генератор проверяет шаблон строже, чем входная валидация - его отказ
			// это всё ещё ошибка запроса, а не сбой сервиса
			uc.logger.Warn("CreateSchedule: template id=%d rejected by generator: %v", tpl.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CreateSchedule: failed to generate slots for template id=%d: %v", tpl.ID, err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateSchedule: created template id=%d for manager=%d, slots=%d",
		tpl.ID, tpl.ManagerID, generated.SlotsCreated)

	return &Response{
		TemplateID:          tpl.ID,
		ManagerID:           tpl.ManagerID,
		Cadence:             string(tpl.Cadence),
		Weekday:             int(tpl.Weekday),
		WeekNumber:          tpl.WeekNumber,
		StartTime:           tpl.StartTime,
		EndTime:             tpl.EndTime,
		SlotDurationMinutes: tpl.SlotDurationMinutes,
		MonthsAhead:         tpl.MonthsAhead,
		IsActive:            tpl.IsActive,
		CreatedAt:           tpl.CreatedAt,
		SlotsCreated:        generated.SlotsCreated,
		Dates:               generated.Dates,
	}, nil
}
