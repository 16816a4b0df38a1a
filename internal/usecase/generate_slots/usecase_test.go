package generate_slots

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	scheduleRepo "github.com/m04kA/CMS-ReceptionService/internal/infra/storage/schedule"
	"github.com/m04kA/CMS-ReceptionService/pkg/types"
)

type fakeTemplateRepo struct {
	templates map[int64]*domain.ScheduleTemplate
}

func (r *fakeTemplateRepo) GetByID(_ context.Context, id int64) (*domain.ScheduleTemplate, error) {
	tpl, ok := r.templates[id]
	if !ok {
		return nil, scheduleRepo.ErrTemplateNotFound
	}
	return tpl, nil
}

// fakeSlotRepo имитирует вставку по натуральному ключу (manager_id, slot_date, start_time)
type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[string]*domain.Slot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]*domain.Slot)}
}

func (r *fakeSlotRepo) CreateBatch(_ context.Context, slots []*domain.Slot) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var inserted int64
	for _, s := range slots {
		key := fmt.Sprintf("%d/%s/%s", s.ManagerID, s.Date.Format(domain.DateFormat), s.StartTime)
		if _, exists := r.slots[key]; exists {
			continue
		}
		r.slots[key] = s
		inserted++
	}
	return inserted, nil
}

func (r *fakeSlotRepo) GetByManagerWithFilter(_ context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Slot
	for _, s := range r.slots {
		if s.ManagerID != filter.ManagerID {
			continue
		}
		if filter.StartDate != nil && s.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && s.Date.After(*filter.EndDate) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type fakeLocker struct {
	mu    sync.Mutex
	held  map[string]bool
	locks int
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]bool)}
}

func (l *fakeLocker) Lock(_ context.Context, key string, _ time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] {
		return false, nil
	}
	l.held[key] = true
	l.locks++
	return true, nil
}

func (l *fakeLocker) Unlock(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
	return nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(templates map[int64]*domain.ScheduleTemplate) (*UseCase, *fakeSlotRepo, *fakeLocker) {
	slotRepo := newFakeSlotRepo()
	locker := newFakeLocker()
	uc := NewUseCase(
		&fakeTemplateRepo{templates: templates},
		slotRepo,
		locker,
		&fakeTxManager{},
		30*time.Second,
		noopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: date(2026, time.September, 1)}
	return uc, slotRepo, locker
}

func TestExecute_TemplateNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{TemplateID: 99})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestExecute_TemplateInactive(t *testing.T) {
	tpl := nthMondayTemplate()
	tpl.IsActive = false
	uc, _, _ := newTestUseCase(map[int64]*domain.ScheduleTemplate{1: tpl})

	_, err := uc.Execute(context.Background(), &Request{TemplateID: 1})
	assert.ErrorIs(t, err, ErrTemplateInactive)
}

func TestExecute_GeneratesSlots(t *testing.T) {
	uc, slotRepo, locker := newTestUseCase(map[int64]*domain.ScheduleTemplate{1: nthMondayTemplate()})

	resp, err := uc.Execute(context.Background(), &Request{TemplateID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.TemplateID)
	assert.Equal(t, int64(42), resp.ManagerID)
	assert.Equal(t, int64(3), resp.SlotsCreated)
	assert.Equal(t, []string{"2026-09-07"}, resp.Dates)
	assert.Len(t, slotRepo.slots, 3)

	// Блокировка взята и отпущена
	assert.Equal(t, 1, locker.locks)
	assert.Empty(t, locker.held)
}

func TestExecute_Idempotent(t *testing.T) {
	// Повторная генерация по тому же шаблону не создаёт дубликатов
	uc, slotRepo, _ := newTestUseCase(map[int64]*domain.ScheduleTemplate{1: nthMondayTemplate()})

	first, err := uc.Execute(context.Background(), &Request{TemplateID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), first.SlotsCreated)

	second, err := uc.Execute(context.Background(), &Request{TemplateID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.SlotsCreated)
	assert.Len(t, slotRepo.slots, 3)
}

func TestExecute_OverlappingTemplatesRejected(t *testing.T) {
	// Два шаблона одного менеджера со сдвинутыми окнами: натуральный ключ
	// (manager_id, slot_date, start_time) такие слоты не ловит,
	// второй шаблон должен быть отклонён проверкой пересечений
	tplA := nthMondayTemplate()
	tplA.EndTime = types.TimeString("10:00")
	tplA.SlotDurationMinutes = 30

	tplB := nthMondayTemplate()
	tplB.ID = 2
	tplB.StartTime = types.TimeString("09:15")
	tplB.EndTime = types.TimeString("10:15")
	tplB.SlotDurationMinutes = 30

	uc, slotRepo, _ := newTestUseCase(map[int64]*domain.ScheduleTemplate{1: tplA, 2: tplB})

	first, err := uc.Execute(context.Background(), &Request{TemplateID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.SlotsCreated)

	_, err = uc.Execute(context.Background(), &Request{TemplateID: 2})
	assert.ErrorIs(t, err, ErrSlotOverlap)
	// Слоты второго шаблона не материализовались
	assert.Len(t, slotRepo.slots, 2)
}

func TestGenerateForTemplate_LockHeld(t *testing.T) {
	uc, _, locker := newTestUseCase(map[int64]*domain.ScheduleTemplate{1: nthMondayTemplate()})

	_, err := locker.Lock(context.Background(), "slotgen:1", time.Minute)
	require.NoError(t, err)

	_, execErr := uc.Execute(context.Background(), &Request{TemplateID: 1})
	assert.ErrorIs(t, execErr, ErrGenerationInProgress)
}

func TestGenerateForTemplate_ValidationBeforeLock(t *testing.T) {
	tpl := nthMondayTemplate()
	tpl.SlotDurationMinutes = 0
	uc, _, locker := newTestUseCase(map[int64]*domain.ScheduleTemplate{1: tpl})

	_, err := uc.Execute(context.Background(), &Request{TemplateID: 1})
	assert.ErrorIs(t, err, ErrInvalidTemplate)
	assert.Equal(t, 0, locker.locks)
}

func TestGenerateForTemplate_DurationBelowMinimum(t *testing.T) {
	tpl := nthMondayTemplate()
	tpl.SlotDurationMinutes = domain.MinSlotDurationMinutes - 1
	uc, slotRepo, _ := newTestUseCase(map[int64]*domain.ScheduleTemplate{1: tpl})

	_, err := uc.Execute(context.Background(), &Request{TemplateID: 1})
	assert.ErrorIs(t, err, ErrInvalidTemplate)
	assert.Empty(t, slotRepo.slots)
}

func TestGenerateForTemplate_CustomCadence(t *testing.T) {
	tpl := nthMondayTemplate()
	tpl.Cadence = domain.CadenceCustom
	uc, _, _ := newTestUseCase(map[int64]*domain.ScheduleTemplate{1: tpl})

	_, err := uc.Execute(context.Background(), &Request{TemplateID: 1})
	assert.ErrorIs(t, err, ErrUnsupportedCadence)
}
