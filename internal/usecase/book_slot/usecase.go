package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	slotRepo "github.com/m04kA/CMS-ReceptionService/internal/infra/storage/slot"
	"github.com/m04kA/CMS-ReceptionService/internal/integrations/notifyservice"
)

// UseCase use case бронирования слота приёма посетителем
type UseCase struct {
	slotRepo     SlotRepository
	notifyClient NotifyServiceClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	notifyClient NotifyServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		notifyClient: notifyClient,
		logger:       logger,
	}
}

// Execute выполняет бронирование
// Переход "свободен -> забронирован" делается одним условным UPDATE в репозитории:
// при любом количестве конкурентных запросов на один слот успешным будет ровно один,
// остальные получают ErrSlotUnavailable и выбирают другой слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: slot=%d, visitor=%s", req.SlotID, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Атомарный захват слота
	err := uc.slotRepo.Book(ctx, req.SlotID, req.FullName, req.Email, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			uc.logger.Warn("BookSlot: slot id=%d not found", req.SlotID)
			return nil, ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotUnavailable):
			uc.logger.Warn("BookSlot: slot id=%d is not available", req.SlotID)
			return nil, ErrSlotUnavailable
		default:
			uc.logger.Error("BookSlot: repository error for slot id=%d: %v", req.SlotID, err)
			return nil, fmt.Errorf("%w: failed to book slot: %v", ErrInternal, err)
		}
	}

	// 3. Читаем забронированный слот для ответа
	booked, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		uc.logger.Error("BookSlot: failed to load booked slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to load booked slot: %v", ErrInternal, err)
	}

	// 4. Уведомление - с graceful degradation, бронь уже состоялась
	notifyErr := uc.notifyClient.SendBookingNotificationWithGracefulDegradation(ctx, &notifyservice.BookingNotification{
		SlotID:       booked.ID,
		ManagerID:    booked.ManagerID,
		Date:         booked.Date.Format(domain.DateFormat),
		StartTime:    booked.StartTime.String(),
		EndTime:      booked.EndTime.String(),
		VisitorName:  req.FullName,
		VisitorEmail: req.Email,
	})
	if notifyErr != nil {
		// Ошибка уже залогирована клиентом, бронь не откатываем
		uc.logger.Warn("BookSlot: notification skipped for slot id=%d", req.SlotID)
	}

	uc.logger.Info("BookSlot: slot id=%d booked by %s", booked.ID, req.Email)

	return &Response{
		SlotID:      booked.ID,
		ManagerID:   booked.ManagerID,
		Date:        booked.Date,
		StartTime:   booked.StartTime,
		EndTime:     booked.EndTime,
		BookedBy:    req.FullName,
		BookedEmail: req.Email,
		Notes:       booked.Notes,
		UpdatedAt:   booked.UpdatedAt,
	}, nil
}
