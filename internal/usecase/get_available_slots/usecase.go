package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	"github.com/m04kA/CMS-ReceptionService/internal/integrations/staffservice"
)

// UseCase use case публичной выдачи свободных слотов руководителя
type UseCase struct {
	slotRepo    SlotRepository
	staffClient StaffServiceClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		staffClient: staffClient,
		logger:      logger,
	}
}

// Execute возвращает свободные слоты руководителя за период
// В выдачу попадают только слоты is_available=true и is_booked=false,
// отсортированные по дате, времени начала и id
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка существования руководителя в StaffService
	manager, err := uc.staffClient.GetManager(ctx, req.ManagerID)
	if err != nil {
		if errors.Is(err, staffservice.ErrManagerNotFound) {
			uc.logger.Warn("GetAvailableSlots: manager id=%d not found", req.ManagerID)
			return nil, ErrManagerNotFound
		}
		uc.logger.Error("GetAvailableSlots: staffservice error for manager id=%d: %v", req.ManagerID, err)
		return nil, fmt.Errorf("%w: failed to check manager: %v", ErrInternal, err)
	}

	// 3. Выборка свободных слотов
	slots, err := uc.slotRepo.GetByManagerWithFilter(ctx, domain.SlotFilter{
		ManagerID:     req.ManagerID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		OnlyAvailable: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: repository error for manager id=%d: %v", req.ManagerID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	items := make([]SlotItem, 0, len(slots))
	for _, s := range slots {
		items = append(items, SlotItem{
			SlotID:    s.ID,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	uc.logger.Info("GetAvailableSlots: manager id=%d, %d slots", req.ManagerID, len(items))

	return &Response{
		ManagerID:   req.ManagerID,
		ManagerName: manager.FullName,
		Slots:       items,
	}, nil
}
