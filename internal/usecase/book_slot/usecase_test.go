package book_slot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	slotRepo "github.com/m04kA/CMS-ReceptionService/internal/infra/storage/slot"
	"github.com/m04kA/CMS-ReceptionService/internal/integrations/notifyservice"
	"github.com/m04kA/CMS-ReceptionService/pkg/types"
)

// fakeSlotRepo повторяет семантику условного UPDATE репозитория:
// переход "свободен -> забронирован" атомарен под мьютексом
type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[int64]*domain.Slot
}

func newFakeSlotRepo(slots ...*domain.Slot) *fakeSlotRepo {
	r := &fakeSlotRepo{slots: make(map[int64]*domain.Slot)}
	for _, s := range slots {
		r.slots[s.ID] = s
	}
	return r
}

func (r *fakeSlotRepo) Book(_ context.Context, id int64, fullName, email string, notes *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	if !s.CanBeBooked() {
		return slotRepo.ErrSlotUnavailable
	}

	s.IsBooked = true
	s.IsAvailable = false
	s.BookedBy = &fullName
	s.BookedEmail = &email
	s.Notes = notes
	s.UpdatedAt = time.Now()
	return nil
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

type fakeNotifyClient struct {
	mu       sync.Mutex
	sent     []*notifyservice.BookingNotification
	degraded bool
}

func (c *fakeNotifyClient) SendBookingNotificationWithGracefulDegradation(_ context.Context, n *notifyservice.BookingNotification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.degraded {
		return notifyservice.ErrServiceDegraded
	}
	c.sent = append(c.sent, n)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func availableSlot(id int64) *domain.Slot {
	return &domain.Slot{
		ID:          id,
		ManagerID:   42,
		Date:        time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("09:10"),
		IsAvailable: true,
	}
}

func validRequest(slotID int64) *Request {
	return &Request{
		SlotID:   slotID,
		FullName: "Анна Петрова",
		Email:    "anna.petrova@example.com",
	}
}

func TestExecute_BooksAvailableSlot(t *testing.T) {
	repo := newFakeSlotRepo(availableSlot(1))
	notify := &fakeNotifyClient{}
	uc := NewUseCase(repo, notify, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(1))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.SlotID)
	assert.Equal(t, int64(42), resp.ManagerID)
	assert.Equal(t, "Анна Петрова", resp.BookedBy)
	assert.Equal(t, "anna.petrova@example.com", resp.BookedEmail)

	stored, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotStateBooked, stored.State())

	require.Len(t, notify.sent, 1)
	assert.Equal(t, int64(1), notify.sent[0].SlotID)
	assert.Equal(t, "2026-09-07", notify.sent[0].Date)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := NewUseCase(newFakeSlotRepo(), &fakeNotifyClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(99))
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	repo := newFakeSlotRepo(availableSlot(1))
	uc := NewUseCase(repo, &fakeNotifyClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(1))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest(1))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_WithdrawnSlot(t *testing.T) {
	slot := availableSlot(1)
	slot.IsAvailable = false
	uc := NewUseCase(newFakeSlotRepo(slot), &fakeNotifyClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(1))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_ValidationErrors(t *testing.T) {
	longString := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = 'a'
		}
		return string(b)
	}

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "empty name", mutate: func(r *Request) { r.FullName = "  " }},
		{name: "empty email", mutate: func(r *Request) { r.Email = "" }},
		{name: "malformed email", mutate: func(r *Request) { r.Email = "not-an-email" }},
		{name: "name too long", mutate: func(r *Request) { r.FullName = longString(domain.MaxFullNameLength + 1) }},
		{name: "notes too long", mutate: func(r *Request) {
			notes := longString(domain.MaxNotesLength + 1)
			r.Notes = &notes
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeSlotRepo(availableSlot(1))
			uc := NewUseCase(repo, &fakeNotifyClient{}, noopLogger{})

			req := validRequest(1)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)

			// Слот остался свободным
			stored, getErr := repo.GetByID(context.Background(), 1)
			require.NoError(t, getErr)
			assert.True(t, stored.CanBeBooked())
		})
	}
}

func TestExecute_NotificationDegradationDoesNotFailBooking(t *testing.T) {
	repo := newFakeSlotRepo(availableSlot(1))
	notify := &fakeNotifyClient{degraded: true}
	uc := NewUseCase(repo, notify, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.SlotID)

	stored, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotStateBooked, stored.State())
}

func TestExecute_ConcurrentBookingExactlyOneWins(t *testing.T) {
	const visitors = 50

	repo := newFakeSlotRepo(availableSlot(1))
	uc := NewUseCase(repo, &fakeNotifyClient{}, noopLogger{})

	var wg sync.WaitGroup
	errs := make([]error, visitors)

	for i := 0; i < visitors; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest(1))
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			assert.ErrorIs(t, err, ErrSlotUnavailable)
			lost++
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, visitors-1, lost)
}
