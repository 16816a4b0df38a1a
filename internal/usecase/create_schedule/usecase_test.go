package create_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	"github.com/m04kA/CMS-ReceptionService/internal/integrations/staffservice"
	generateSlots "github.com/m04kA/CMS-ReceptionService/internal/usecase/generate_slots"
	"github.com/m04kA/CMS-ReceptionService/pkg/types"
)

type fakeTemplateRepo struct {
	nextID  int64
	created []*domain.ScheduleTemplate
}

func (r *fakeTemplateRepo) Create(_ context.Context, tpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
	r.nextID++
	copied := *tpl
	copied.ID = r.nextID
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	r.created = append(r.created, &copied)
	return &copied, nil
}

type fakeGenerator struct {
	lastTemplate *domain.ScheduleTemplate
	response     *generateSlots.Response
	err          error
}

func (g *fakeGenerator) GenerateForTemplate(_ context.Context, tpl *domain.ScheduleTemplate) (*generateSlots.Response, error) {
	g.lastTemplate = tpl
	if g.err != nil {
		return nil, g.err
	}
	resp := *g.response
	resp.TemplateID = tpl.ID
	resp.ManagerID = tpl.ManagerID
	return &resp, nil
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

func knownManagers() *fakeStaffClient {
	return &fakeStaffClient{managers: map[int64]*staffservice.Manager{
		42: {ID: 42, FullName: "Иван Сидоров", IsActive: true},
	}}
}

func validRequest() *Request {
	return &Request{
		ManagerID:  42,
		Cadence:    "nth_weekday_of_month",
		Weekday:    1,
		WeekNumber: 1,
		StartTime:  types.TimeString("09:00"),
		EndTime:    types.TimeString("09:30"),
	}
}

func TestExecute_CreatesTemplateAndGenerates(t *testing.T) {
	repo := &fakeTemplateRepo{}
	gen := &fakeGenerator{response: &generateSlots.Response{
		SlotsCreated: 3,
		Dates:        []string{"2026-09-07"},
	}}
	uc := NewUseCase(repo, gen, knownManagers(), noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.TemplateID)
	assert.Equal(t, int64(42), resp.ManagerID)
	assert.True(t, resp.IsActive)
	assert.Equal(t, int64(3), resp.SlotsCreated)
	assert.Equal(t, []string{"2026-09-07"}, resp.Dates)

	// Значения по умолчанию подставлены перед сохранением
	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, repo.created[0].SlotDurationMinutes)
	assert.Equal(t, domain.DefaultMonthsAhead, repo.created[0].MonthsAhead)

	// Генератор получил сохранённый шаблон с проставленным ID
	require.NotNil(t, gen.lastTemplate)
	assert.Equal(t, int64(1), gen.lastTemplate.ID)
}

func TestExecute_ManagerNotFound(t *testing.T) {
	repo := &fakeTemplateRepo{}
	gen := &fakeGenerator{response: &generateSlots.Response{}}
	uc := NewUseCase(repo, gen, &fakeStaffClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrManagerNotFound)
	assert.Empty(t, repo.created)
}

func TestExecute_GenerationInProgress(t *testing.T) {
	repo := &fakeTemplateRepo{}
	gen := &fakeGenerator{err: generateSlots.ErrGenerationInProgress}
	uc := NewUseCase(repo, gen, knownManagers(), noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrGenerationInProgress)
}

func TestExecute_GeneratorRejectionMapsToInvalidInput(t *testing.T) {
	repo := &fakeTemplateRepo{}
	gen := &fakeGenerator{err: generateSlots.ErrInvalidTemplate}
	uc := NewUseCase(repo, gen, knownManagers(), noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SlotOverlap(t *testing.T) {
	repo := &fakeTemplateRepo{}
	gen := &fakeGenerator{err: generateSlots.ErrSlotOverlap}
	uc := NewUseCase(repo, gen, knownManagers(), noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotOverlap)
}

func TestExecute_ValidationRejectsBeforePersist(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "unknown cadence", mutate: func(r *Request) { r.Cadence = "monthly" }},
		{name: "custom cadence", mutate: func(r *Request) { r.Cadence = "custom" }},
		{name: "weekday out of range", mutate: func(r *Request) { r.Weekday = 7 }},
		{name: "week number out of range", mutate: func(r *Request) { r.WeekNumber = 6 }},
		{name: "start after end", mutate: func(r *Request) {
			r.StartTime = types.TimeString("12:00")
			r.EndTime = types.TimeString("09:00")
		}},
		{name: "missing start time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "duration too long", mutate: func(r *Request) { r.SlotDurationMinutes = domain.MaxSlotDurationMinutes + 1 }},
		{name: "duration below minimum", mutate: func(r *Request) { r.SlotDurationMinutes = domain.MinSlotDurationMinutes - 1 }},
		{name: "window shorter than one slot", mutate: func(r *Request) {
			// Окно 09:00-09:05 не вмещает даже один слот длительности по умолчанию
			r.StartTime = types.TimeString("09:00")
			r.EndTime = types.TimeString("09:05")
		}},
		{name: "horizon too long", mutate: func(r *Request) { r.MonthsAhead = domain.MaxMonthsAhead + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTemplateRepo{}
			gen := &fakeGenerator{response: &generateSlots.Response{}}
			uc := NewUseCase(repo, gen, knownManagers(), noopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)

			// Невалидный шаблон не сохраняется
			assert.Empty(t, repo.created)
		})
	}
}
