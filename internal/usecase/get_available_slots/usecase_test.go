package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	"github.com/m04kA/CMS-ReceptionService/internal/integrations/staffservice"
	"github.com/m04kA/CMS-ReceptionService/pkg/types"
)

type fakeSlotRepo struct {
	lastFilter domain.SlotFilter
	slots      []*domain.Slot
}

func (r *fakeSlotRepo) GetByManagerWithFilter(_ context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	r.lastFilter = filter
	return r.slots, nil
}

type fakeStaffClient struct {
	managers map[int64]*staffservice.Manager
}

func (c *fakeStaffClient) GetManager(_ context.Context, managerID int64) (*staffservice.Manager, error) {
	m, ok := c.managers[managerID]
	if !ok {
		return nil, staffservice.ErrManagerNotFound
	}
	return m, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_ReturnsAvailableSlots(t *testing.T) {
	repo := &fakeSlotRepo{slots: []*domain.Slot{
		{
			ID:          1,
			ManagerID:   42,
			Date:        time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
			StartTime:   types.TimeString("09:00"),
			EndTime:     types.TimeString("09:10"),
			IsAvailable: true,
		},
	}}
	staff := &fakeStaffClient{managers: map[int64]*staffservice.Manager{
		42: {ID: 42, FullName: "Иван Сидоров"},
	}}
	uc := NewUseCase(repo, staff, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ManagerID: 42})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ManagerID)
	assert.Equal(t, "Иван Сидоров", resp.ManagerName)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, int64(1), resp.Slots[0].SlotID)

	// Публичная выдача всегда фильтрует по свободным слотам
	assert.True(t, repo.lastFilter.OnlyAvailable)
	assert.False(t, repo.lastFilter.OnlyBooked)
}

func TestExecute_PassesPeriodToFilter(t *testing.T) {
	repo := &fakeSlotRepo{}
	staff := &fakeStaffClient{managers: map[int64]*staffservice.Manager{
		42: {ID: 42, FullName: "Иван Сидоров"},
	}}
	uc := NewUseCase(repo, staff, noopLogger{})

	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{ManagerID: 42, StartDate: &start, EndDate: &end})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.StartDate)
	require.NotNil(t, repo.lastFilter.EndDate)
	assert.Equal(t, start, *repo.lastFilter.StartDate)
	assert.Equal(t, end, *repo.lastFilter.EndDate)
}

func TestExecute_ManagerNotFound(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, &fakeStaffClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ManagerID: 99})
	assert.ErrorIs(t, err, ErrManagerNotFound)
}

func TestExecute_InvalidPeriod(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, &fakeStaffClient{}, noopLogger{})

	start := time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{ManagerID: 42, StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
