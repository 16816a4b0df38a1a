package slots

import (
	"context"
	"errors"
	"fmt"

	slotRepo "github.com/m04kA/CMS-ReceptionService/internal/infra/storage/slot"
	"github.com/m04kA/CMS-ReceptionService/internal/service/slots/models"
)

// Service сервис для работы со слотами приёма
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SlotResponse, error) {
	s.logger.Info("GetByID: fetching slot id=%d", id)

	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// GetBookedSlots получает календарь записей руководителя
// Возвращает только забронированные слоты с контактами посетителей,
// отсортированные по дате и времени начала
func (s *Service) GetBookedSlots(ctx context.Context, req *models.GetBookedSlotsRequest) (*models.SlotListResponse, error) {
	s.logger.Info("GetBookedSlots: fetching booked slots for manager=%d", req.ManagerID)

	if req.ManagerID <= 0 {
		s.logger.Warn("GetBookedSlots: invalid managerId=%d", req.ManagerID)
		return nil, fmt.Errorf("%w: managerId must be positive", ErrInvalidInput)
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		s.logger.Warn("GetBookedSlots: invalid period for manager=%d", req.ManagerID)
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	booked, err := s.slotRepo.GetByManagerWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetBookedSlots: repository error for manager=%d: %v", req.ManagerID, err)
		return nil, fmt.Errorf("%w: GetBookedSlots - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBookedSlots: successfully fetched %d slots for manager=%d", len(booked), req.ManagerID)
	return models.FromDomainSlotList(booked), nil
}

// Cancel отменяет бронирование слота
// Слот возвращается в состояние "свободен", контакты посетителя стираются
func (s *Service) Cancel(ctx context.Context, slotID int64) (*models.SlotResponse, error) {
	s.logger.Info("Cancel: cancelling booking for slot id=%d", slotID)

	if err := s.slotRepo.CancelBooking(ctx, slotID); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			s.logger.Warn("Cancel: slot id=%d not found", slotID)
			return nil, ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotNotBooked):
			s.logger.Warn("Cancel: slot id=%d is not booked", slotID)
			return nil, ErrSlotNotBooked
		default:
			s.logger.Error("Cancel: repository error for slot id=%d: %v", slotID, err)
			return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		s.logger.Error("Cancel: failed to load slot id=%d after cancel: %v", slotID, err)
		return nil, fmt.Errorf("%w: Cancel - failed to load slot: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking for slot id=%d", slotID)
	return models.FromDomainSlot(slot), nil
}

// Withdraw снимает свободный слот с публикации
// Забронированный слот снять нельзя - сначала отмена брони
func (s *Service) Withdraw(ctx context.Context, slotID int64) (*models.SlotResponse, error) {
	s.logger.Info("Withdraw: withdrawing slot id=%d", slotID)

	if err := s.slotRepo.Withdraw(ctx, slotID); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			s.logger.Warn("Withdraw: slot id=%d not found", slotID)
			return nil, ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotUnavailable):
			s.logger.Warn("Withdraw: slot id=%d cannot be withdrawn", slotID)
			return nil, ErrSlotUnavailable
		default:
			s.logger.Error("Withdraw: repository error for slot id=%d: %v", slotID, err)
			return nil, fmt.Errorf("%w: Withdraw - repository error: %v", ErrInternal, err)
		}
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		s.logger.Error("Withdraw: failed to load slot id=%d after withdraw: %v", slotID, err)
		return nil, fmt.Errorf("%w: Withdraw - failed to load slot: %v", ErrInternal, err)
	}

	s.logger.Info("Withdraw: successfully withdrew slot id=%d", slotID)
	return models.FromDomainSlot(slot), nil
}
