package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	slotRepo "github.com/m04kA/CMS-ReceptionService/internal/infra/storage/slot"
	"github.com/m04kA/CMS-ReceptionService/internal/service/slots/models"
	"github.com/m04kA/CMS-ReceptionService/pkg/ptr"
	"github.com/m04kA/CMS-ReceptionService/pkg/types"
)

type fakeSlotRepo struct {
	slots map[int64]*domain.Slot
}

func newFakeSlotRepo(slots ...*domain.Slot) *fakeSlotRepo {
	r := &fakeSlotRepo{slots: make(map[int64]*domain.Slot)}
	for _, s := range slots {
		r.slots[s.ID] = s
	}
	return r
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	s, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSlotRepo) GetByManagerWithFilter(_ context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	result := make([]*domain.Slot, 0)
	for _, s := range r.slots {
		if s.ManagerID != filter.ManagerID {
			continue
		}
		if filter.OnlyBooked && !s.IsBooked {
			continue
		}
		if filter.OnlyAvailable && !s.CanBeBooked() {
			continue
		}
		copied := *s
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeSlotRepo) CancelBooking(_ context.Context, id int64) error {
	s, ok := r.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	if !s.IsBooked {
		return slotRepo.ErrSlotNotBooked
	}
	s.IsBooked = false
	s.IsAvailable = true
	s.BookedBy = nil
	s.BookedEmail = nil
	s.Notes = nil
	return nil
}

func (r *fakeSlotRepo) Withdraw(_ context.Context, id int64) error {
	s, ok := r.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	if !s.CanBeBooked() {
		return slotRepo.ErrSlotUnavailable
	}
	s.IsAvailable = false
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func bookedSlot(id int64) *domain.Slot {
	return &domain.Slot{
		ID:          id,
		ManagerID:   42,
		Date:        time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("09:10"),
		IsBooked:    true,
		BookedBy:    ptr.Ptr("Анна Петрова"),
		BookedEmail: ptr.Ptr("anna.petrova@example.com"),
	}
}

func freeSlot(id int64) *domain.Slot {
	return &domain.Slot{
		ID:          id,
		ManagerID:   42,
		Date:        time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("10:00"),
		EndTime:     types.TimeString("10:10"),
		IsAvailable: true,
	}
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(newFakeSlotRepo(bookedSlot(1)), noopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "booked", resp.State)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestService_GetBookedSlots(t *testing.T) {
	svc := NewService(newFakeSlotRepo(bookedSlot(1), freeSlot(2)), noopLogger{})

	resp, err := svc.GetBookedSlots(context.Background(), &models.GetBookedSlotsRequest{ManagerID: 42})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(1), resp.Slots[0].ID)
	require.NotNil(t, resp.Slots[0].BookedBy)
	assert.Equal(t, "Анна Петрова", *resp.Slots[0].BookedBy)
}

func TestService_GetBookedSlots_InvalidManager(t *testing.T) {
	svc := NewService(newFakeSlotRepo(), noopLogger{})

	_, err := svc.GetBookedSlots(context.Background(), &models.GetBookedSlotsRequest{ManagerID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Cancel(t *testing.T) {
	repo := newFakeSlotRepo(bookedSlot(1))
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)

	// Слот вернулся в пул свободных, контакты стёрты
	assert.Equal(t, "available", resp.State)
	assert.Nil(t, resp.BookedBy)
	assert.Nil(t, resp.BookedEmail)
}

func TestService_Cancel_NotBooked(t *testing.T) {
	svc := NewService(newFakeSlotRepo(freeSlot(1)), noopLogger{})

	_, err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSlotNotBooked)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc := NewService(newFakeSlotRepo(), noopLogger{})

	_, err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestService_Withdraw(t *testing.T) {
	repo := newFakeSlotRepo(freeSlot(1))
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Withdraw(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "withdrawn", resp.State)
}

func TestService_Withdraw_BookedSlot(t *testing.T) {
	// Забронированный слот снять нельзя - сначала отмена брони
	svc := NewService(newFakeSlotRepo(bookedSlot(1)), noopLogger{})

	_, err := svc.Withdraw(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}
