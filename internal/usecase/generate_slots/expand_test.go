package generate_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-ReceptionService/internal/domain"
	"github.com/m04kA/CMS-ReceptionService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func nthMondayTemplate() *domain.ScheduleTemplate {
	return &domain.ScheduleTemplate{
		ID:                  1,
		ManagerID:           42,
		Cadence:             domain.CadenceNthWeekday,
		Weekday:             time.Monday,
		WeekNumber:          1,
		StartTime:           types.TimeString("09:00"),
		EndTime:             types.TimeString("09:30"),
		SlotDurationMinutes: 10,
		MonthsAhead:         1,
		IsActive:            true,
	}
}

func TestExpandTemplate_FirstMondayOfMonth(t *testing.T) {
	// 1 сентября 2026 - вторник, первый понедельник месяца - 7 сентября
	// Окно 09:00-09:30 по 10 минут даёт ровно три слота
	tpl := nthMondayTemplate()

	slots, err := expandTemplate(tpl, date(2026, time.September, 1))
	require.NoError(t, err)
	require.Len(t, slots, 3)

	for i, s := range slots {
		assert.Equal(t, date(2026, time.September, 7), s.Date, "slot %d", i)
		assert.Equal(t, int64(42), s.ManagerID)
		require.NotNil(t, s.TemplateID)
		assert.Equal(t, int64(1), *s.TemplateID)
		assert.True(t, s.IsAvailable)
		assert.False(t, s.IsBooked)
	}

	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:10"), slots[0].EndTime)
	assert.Equal(t, types.TimeString("09:10"), slots[1].StartTime)
	assert.Equal(t, types.TimeString("09:20"), slots[1].EndTime)
	assert.Equal(t, types.TimeString("09:20"), slots[2].StartTime)
	assert.Equal(t, types.TimeString("09:30"), slots[2].EndTime)
}

func TestExpandTemplate_RemainderDropped(t *testing.T) {
	// Окно 09:00-09:35 не кратно 10 минутам: укороченный слот не создаётся
	tpl := nthMondayTemplate()
	tpl.EndTime = types.TimeString("09:35")

	slots, err := expandTemplate(tpl, date(2026, time.September, 1))
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, types.TimeString("09:30"), slots[2].EndTime)
}

func TestExpandTemplate_CustomCadenceRefused(t *testing.T) {
	tpl := nthMondayTemplate()
	tpl.Cadence = domain.CadenceCustom

	_, err := expandTemplate(tpl, date(2026, time.September, 1))
	assert.ErrorIs(t, err, ErrUnsupportedCadence)
}

func TestNthWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		weekday time.Weekday
		n       int
		want    time.Time
		wantOK  bool
	}{
		{
			name: "first monday of september 2026",
			year: 2026, month: time.September, weekday: time.Monday, n: 1,
			want: date(2026, time.September, 7), wantOK: true,
		},
		{
			name: "fourth monday exists",
			year: 2026, month: time.September, weekday: time.Monday, n: 4,
			want: date(2026, time.September, 28), wantOK: true,
		},
		{
			name: "no fifth monday in september 2026",
			year: 2026, month: time.September, weekday: time.Monday, n: 5,
			wantOK: false,
		},
		{
			name: "fifth monday in november 2026",
			year: 2026, month: time.November, weekday: time.Monday, n: 5,
			want: date(2026, time.November, 30), wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nthWeekdayOfMonth(tt.year, tt.month, tt.weekday, tt.n)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEnumerateNthWeekday_SkipsMonthsWithoutOccurrence(t *testing.T) {
	// Пятый понедельник есть не в каждом месяце горизонта:
	// сентябрь и октябрь 2026 пропускаются, ноябрь даёт 30-е
	dates := enumerateNthWeekday(time.Monday, 5, date(2026, time.September, 1), date(2026, time.November, 30))
	require.Len(t, dates, 1)
	assert.Equal(t, date(2026, time.November, 30), dates[0])
}

func TestEnumerateWeekly(t *testing.T) {
	// Все понедельники сентября 2026
	dates := enumerateWeekly(time.Monday, date(2026, time.September, 1), date(2026, time.September, 30))
	require.Len(t, dates, 4)
	assert.Equal(t, date(2026, time.September, 7), dates[0])
	assert.Equal(t, date(2026, time.September, 14), dates[1])
	assert.Equal(t, date(2026, time.September, 21), dates[2])
	assert.Equal(t, date(2026, time.September, 28), dates[3])
}

func TestEnumerateWeekly_FromMatchingWeekday(t *testing.T) {
	// Начало горизонта само попадает на нужный день недели
	dates := enumerateWeekly(time.Monday, date(2026, time.September, 7), date(2026, time.September, 14))
	require.Len(t, dates, 2)
	assert.Equal(t, date(2026, time.September, 7), dates[0])
}

func TestEnumerateDaily(t *testing.T) {
	dates := enumerateDaily(date(2026, time.September, 1), date(2026, time.September, 5))
	require.Len(t, dates, 5)
	assert.Equal(t, date(2026, time.September, 1), dates[0])
	assert.Equal(t, date(2026, time.September, 5), dates[4])
}

func TestCollectDates(t *testing.T) {
	slots := []*domain.Slot{
		{Date: date(2026, time.September, 7)},
		{Date: date(2026, time.September, 7)},
		{Date: date(2026, time.October, 5)},
	}

	dates := collectDates(slots)
	assert.Equal(t, []string{"2026-09-07", "2026-10-05"}, dates)
}
