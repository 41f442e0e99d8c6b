package get_available_hours

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/integrations/calendarservice"
	"github.com/m04kA/SMC-CateringService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeCalendar struct {
	events  []*calendarservice.Event
	listErr error
}

func (f *fakeCalendar) ListEvents(_ context.Context, from, to time.Time, _ string) ([]*calendarservice.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	result := make([]*calendarservice.Event, 0)
	for _, event := range f.events {
		if event.Start.Before(to) && event.End.After(from) {
			result = append(result, event)
		}
	}
	return result, nil
}

func testPolicy(t *testing.T) domain.BookingPolicy {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	return domain.DefaultPolicy(loc)
}

func confirmedEvent(id string, start time.Time, dur time.Duration) *calendarservice.Event {
	return &calendarservice.Event{
		ID:     id,
		Start:  start,
		End:    start.Add(dur),
		Status: calendarservice.StatusConfirmed,
	}
}

func newUseCase(policy domain.BookingPolicy, calendar *fakeCalendar, now time.Time) *UseCase {
	uc := NewUseCase(policy, calendar, nopLogger{})
	uc.timeProvider = fixedClock{now: now}
	return uc
}

func startTimes(hours []Hour) []string {
	result := make([]string, len(hours))
	for i, h := range hours {
		result[i] = h.StartTime.String()
	}
	return result
}

func TestExecute_EmptyCalendarOffersAllHours(t *testing.T) {
	policy := testPolicy(t)
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, policy.Location)
	uc := newUseCase(policy, &fakeCalendar{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 9, 12, 0, 0, 0, 0, policy.Location),
		Package: domain.PackageSmall,
	})
	require.NoError(t, err)

	// Рабочие часы [9, 22) — 13 целых стартовых часов
	require.Len(t, resp.Hours, 13)
	assert.Equal(t, "09:00", resp.Hours[0].StartTime.String())
	assert.Equal(t, "21:00", resp.Hours[12].StartTime.String())

	// Окно: час подготовки до старта, час уборки после сервиса; small = 2ч
	first := resp.Hours[0]
	assert.Equal(t, "08:00", first.WindowStart.String())
	assert.Equal(t, "12:00", first.WindowEnd.String())
	assert.Equal(t, policy.MaxPerSlot, first.AvailableSpots)
}

func TestExecute_PastHoursExcludedToday(t *testing.T) {
	policy := testPolicy(t)

	// Сегодня 12 сентября, 14:30 — часы 9..14 уже прошли
	now := time.Date(2026, 9, 12, 14, 30, 0, 0, policy.Location)
	uc := newUseCase(policy, &fakeCalendar{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 9, 12, 0, 0, 0, 0, policy.Location),
		Package: domain.PackageSmall,
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Hours)
	assert.Equal(t, "15:00", resp.Hours[0].StartTime.String())
	assert.Equal(t, "21:00", resp.Hours[len(resp.Hours)-1].StartTime.String())
}

func TestExecute_PastDateRejected(t *testing.T) {
	policy := testPolicy(t)
	now := time.Date(2026, 9, 12, 10, 0, 0, 0, policy.Location)
	uc := newUseCase(policy, &fakeCalendar{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 9, 11, 0, 0, 0, 0, policy.Location),
		Package: domain.PackageSmall,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DayCapEmptiesAllHours(t *testing.T) {
	policy := testPolicy(t)

	calendar := &fakeCalendar{events: []*calendarservice.Event{
		confirmedEvent("evt-a", time.Date(2026, 9, 12, 8, 0, 0, 0, policy.Location), 2*time.Hour),
		confirmedEvent("evt-b", time.Date(2026, 9, 12, 12, 0, 0, 0, policy.Location), 2*time.Hour),
		confirmedEvent("evt-c", time.Date(2026, 9, 12, 19, 0, 0, 0, policy.Location), 2*time.Hour),
	}}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, policy.Location)
	uc := newUseCase(policy, calendar, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 9, 12, 0, 0, 0, 0, policy.Location),
		Package: domain.PackageSmall,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Hours, "исчерпанный дневной лимит гасит все часы")
}

func TestExecute_OverlapCapExcludesBusyHours(t *testing.T) {
	policy := testPolicy(t)

	// Два бронирования занимают [12:00, 17:00): для стартов, чьё окно
	// пересекает этот интервал, мест нет
	calendar := &fakeCalendar{events: []*calendarservice.Event{
		confirmedEvent("evt-a", time.Date(2026, 9, 12, 12, 0, 0, 0, policy.Location), 5*time.Hour),
		confirmedEvent("evt-b", time.Date(2026, 9, 12, 12, 0, 0, 0, policy.Location), 5*time.Hour),
	}}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, policy.Location)
	uc := newUseCase(policy, calendar, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 9, 12, 0, 0, 0, 0, policy.Location),
		Package: domain.PackageSmall,
	})
	require.NoError(t, err)

	offered := startTimes(resp.Hours)

	// Старт 9:00 → окно [08:00, 12:00): граничит с занятым интервалом, но не
	// пересекает его
	assert.Contains(t, offered, "09:00")
	// Старт 13:00 → окно [12:00, 16:00): оба бронирования пересекают
	assert.NotContains(t, offered, "13:00")
	assert.NotContains(t, offered, "16:00")
	// Старт 18:00 → окно [17:00, 21:00): снова свободно
	assert.Contains(t, offered, "18:00")
}

func TestExecute_SingleOverlapReducesSpots(t *testing.T) {
	policy := testPolicy(t)

	calendar := &fakeCalendar{events: []*calendarservice.Event{
		confirmedEvent("evt-a", time.Date(2026, 9, 12, 12, 0, 0, 0, policy.Location), 5*time.Hour),
	}}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, policy.Location)
	uc := newUseCase(policy, calendar, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 9, 12, 0, 0, 0, 0, policy.Location),
		Package: domain.PackageSmall,
	})
	require.NoError(t, err)

	byStart := make(map[string]Hour, len(resp.Hours))
	for _, h := range resp.Hours {
		byStart[h.StartTime.String()] = h
	}

	busy, ok := byStart["13:00"]
	require.True(t, ok, "час с одним пересечением всё ещё предлагается")
	assert.Equal(t, 1, busy.AvailableSpots)

	free, ok := byStart["09:00"]
	require.True(t, ok)
	assert.Equal(t, 2, free.AvailableSpots)
}

func TestExecute_LateHourWindowCrossesMidnight(t *testing.T) {
	policy := testPolicy(t)

	// Бронирования сразу после полуночи следующего дня видны поздним стартам,
	// только если чтение календаря выходит за границу дня
	nextDay := time.Date(2026, 9, 13, 0, 30, 0, 0, policy.Location)
	calendar := &fakeCalendar{events: []*calendarservice.Event{
		confirmedEvent("evt-a", nextDay, 2*time.Hour),
		confirmedEvent("evt-b", nextDay, 2*time.Hour),
	}}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, policy.Location)
	uc := newUseCase(policy, calendar, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 9, 12, 0, 0, 0, 0, policy.Location),
		Package: domain.PackageLarge,
	})
	require.NoError(t, err)

	offered := startTimes(resp.Hours)

	// Старт 21:00 (large, 3ч) → окно [20:00, 01:00): пересекает ночные
	// бронирования, оба места заняты
	assert.NotContains(t, offered, "21:00")
	// Старт 20:00 → окно [19:00, 00:00): кончается ровно на полуночи и лишь
	// граничит с [00:30, ...)
	assert.Contains(t, offered, "20:00")
}

func TestExecute_CalendarReadFailure(t *testing.T) {
	policy := testPolicy(t)
	calendar := &fakeCalendar{listErr: errors.New("connection refused")}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, policy.Location)
	uc := newUseCase(policy, calendar, now)

	_, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 9, 12, 0, 0, 0, 0, policy.Location),
		Package: domain.PackageSmall,
	})
	assert.ErrorIs(t, err, ErrCalendarRead)
}

func TestExecute_MissingInput(t *testing.T) {
	policy := testPolicy(t)
	uc := newUseCase(policy, &fakeCalendar{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{Package: domain.PackageSmall})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: time.Date(2030, 1, 1, 0, 0, 0, 0, policy.Location)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOfferableHours_SpringForwardSkipsMissingHour(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	policy := domain.DefaultPolicy(loc)
	policy.HoursStart = 1
	policy.HoursEnd = 5

	// 29 марта 2026: в Берлине 02:00 не существует (перевод на летнее время)
	date := time.Date(2026, 3, 29, 0, 0, 0, 0, loc)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, loc)

	hours := offerableHours(policy, date, domain.PackageSmall, now, nil)

	offered := make([]string, len(hours))
	for i, h := range hours {
		offered[i] = h.StartTime.String()
	}
	assert.NotContains(t, offered, "02:00")
	assert.Contains(t, offered, "03:00")
}

func TestReadRange_CoversDayAndEdgeWindows(t *testing.T) {
	policy := testPolicy(t)
	date := time.Date(2026, 9, 12, 0, 0, 0, 0, policy.Location)

	from, to := readRange(policy, date, domain.PackageLarge)

	// Окно первого часа начинается в 8:00 — внутри дня, читаем с полуночи
	assert.Equal(t, date, from)
	// Окно последнего часа (21:00, large) кончается в 01:00 следующего дня
	assert.Equal(t, time.Date(2026, 9, 13, 1, 0, 0, 0, policy.Location), to)
}

func TestHourModel_TimeStrings(t *testing.T) {
	policy := testPolicy(t)
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, policy.Location)
	uc := newUseCase(policy, &fakeCalendar{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2026, 9, 12, 0, 0, 0, 0, policy.Location),
		Package: domain.PackageMedium,
	})
	require.NoError(t, err)

	var found *Hour
	for i := range resp.Hours {
		if resp.Hours[i].StartTime == types.TimeString("14:00") {
			found = &resp.Hours[i]
			break
		}
	}
	require.NotNil(t, found)

	// medium: 2.5ч сервиса → окно [13:00, 17:30)
	assert.Equal(t, "13:00", found.WindowStart.String())
	assert.Equal(t, "17:30", found.WindowEnd.String())
}
