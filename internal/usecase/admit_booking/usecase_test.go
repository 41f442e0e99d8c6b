package admit_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/integrations/calendarservice"
	"github.com/m04kA/SMC-CateringService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type listCall struct {
	from, to time.Time
	tag      string
}

// fakeCalendar in-memory календарь для тестов: фильтрует события по диапазону
// и тегу так же, как это делает реальный сервис
type fakeCalendar struct {
	events    []*calendarservice.Event
	listErr   error
	createErr error

	listCalls []listCall
	created   []*calendarservice.CreateEventRequest
}

func (f *fakeCalendar) ListEvents(_ context.Context, from, to time.Time, tag string) ([]*calendarservice.Event, error) {
	f.listCalls = append(f.listCalls, listCall{from: from, to: to, tag: tag})
	if f.listErr != nil {
		return nil, f.listErr
	}

	result := make([]*calendarservice.Event, 0)
	for _, event := range f.events {
		if !event.Start.Before(to) || !event.End.After(from) {
			continue
		}
		if tag != "" && event.Tags[calendarservice.TagIdempotencyToken] != tag {
			continue
		}
		result = append(result, event)
	}
	return result, nil
}

func (f *fakeCalendar) CreateEvent(_ context.Context, req *calendarservice.CreateEventRequest) (*calendarservice.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.created = append(f.created, req)
	return &calendarservice.Event{
		ID:      fmt.Sprintf("evt-%d", len(f.created)),
		Summary: req.Summary,
		Start:   req.Start,
		End:     req.End,
		Tags:    req.Tags,
		Status:  calendarservice.StatusConfirmed,
	}, nil
}

type fakeOutcomeRepo struct {
	records   []*domain.AdmissionOutcome
	createErr error
}

func (f *fakeOutcomeRepo) Create(_ context.Context, record *domain.AdmissionOutcome) (*domain.AdmissionOutcome, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeOutcomeRepo) lastOutcome() domain.OutcomeCode {
	if len(f.records) == 0 {
		return ""
	}
	return f.records[len(f.records)-1].Outcome
}

func testPolicy(t *testing.T) domain.BookingPolicy {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	return domain.DefaultPolicy(loc)
}

func validRequest(policy domain.BookingPolicy) *Request {
	return &Request{
		EntryPoint:    domain.EntryPointPaymentWebhook,
		RequesterName: "Anna Weber",
		Package:       domain.PackageMedium,
		Offering:      domain.OfferingBuffet,
		StartsAt:      time.Date(2026, 9, 12, 14, 0, 0, 0, policy.Location),
		Venue:         ptr.Ptr("Hauptstr. 12, Berlin"),
		ContactEmails: []string{"anna@example.com"},
		TotalAmount:   ptr.Ptr(1200.0),
		DepositAmount: ptr.Ptr(300.0),
	}
}

// confirmedEvent событие, занимающее [startHour:startMin, +dur) 12 сентября 2026
func confirmedEvent(policy domain.BookingPolicy, id string, startHour, startMin int, dur time.Duration) *calendarservice.Event {
	start := time.Date(2026, 9, 12, startHour, startMin, 0, 0, policy.Location)
	return &calendarservice.Event{
		ID:     id,
		Start:  start,
		End:    start.Add(dur),
		Status: calendarservice.StatusConfirmed,
	}
}

func TestExecute_CommitsBooking(t *testing.T) {
	policy := testPolicy(t)
	calendar := &fakeCalendar{}
	outcomes := &fakeOutcomeRepo{}
	uc := NewUseCase(policy, calendar, outcomes, nopLogger{})

	req := validRequest(policy)
	req.IdempotencyToken = ptr.Ptr("cs_test_123")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.AlreadyExists)
	assert.Equal(t, "evt-1", resp.BookingID)
	assert.NotEmpty(t, resp.BookingRef)

	// Операционное окно: старт 14:00, medium 2.5ч, prep/cleanup по часу → [13:00, 17:30)
	assert.Equal(t, time.Date(2026, 9, 12, 13, 0, 0, 0, policy.Location), resp.WindowStart)
	assert.Equal(t, time.Date(2026, 9, 12, 17, 30, 0, 0, policy.Location), resp.WindowEnd)

	require.Len(t, calendar.created, 1)
	created := calendar.created[0]
	assert.Equal(t, "cs_test_123", created.Tags[calendarservice.TagIdempotencyToken])
	assert.Equal(t, resp.BookingRef, created.Tags[calendarservice.TagBookingRef])
	assert.Equal(t, []string{"anna@example.com"}, created.Attendees)

	assert.Equal(t, domain.OutcomeCommitted, outcomes.lastOutcome())
}

func TestExecute_DuplicateTokenIsNoOpSuccess(t *testing.T) {
	policy := testPolicy(t)

	committed := confirmedEvent(policy, "evt-existing", 13, 0, 4*time.Hour+30*time.Minute)
	committed.Tags = map[string]string{calendarservice.TagIdempotencyToken: "cs_test_123"}

	calendar := &fakeCalendar{events: []*calendarservice.Event{committed}}
	outcomes := &fakeOutcomeRepo{}
	uc := NewUseCase(policy, calendar, outcomes, nopLogger{})

	req := validRequest(policy)
	req.IdempotencyToken = ptr.Ptr("cs_test_123")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.AlreadyExists)
	assert.Equal(t, "evt-existing", resp.BookingID)
	assert.Empty(t, calendar.created, "повторная доставка не должна создавать второе событие")

	// Дубль разрешается до проверок ёмкости: единственный запрос к календарю —
	// поиск по токену
	require.Len(t, calendar.listCalls, 1)
	assert.Equal(t, "cs_test_123", calendar.listCalls[0].tag)

	assert.Equal(t, domain.OutcomeAlreadyExists, outcomes.lastOutcome())
}

func TestExecute_SecondCallCreatesNothing(t *testing.T) {
	policy := testPolicy(t)
	calendar := &fakeCalendar{}
	outcomes := &fakeOutcomeRepo{}
	uc := NewUseCase(policy, calendar, outcomes, nopLogger{})

	req := validRequest(policy)
	req.IdempotencyToken = ptr.Ptr("cs_test_777")

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.False(t, first.AlreadyExists)

	// Созданное событие становится видимым в календаре
	calendar.events = append(calendar.events, &calendarservice.Event{
		ID:     first.BookingID,
		Start:  first.WindowStart,
		End:    first.WindowEnd,
		Tags:   map[string]string{calendarservice.TagIdempotencyToken: "cs_test_777"},
		Status: calendarservice.StatusConfirmed,
	})

	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, second.AlreadyExists)
	assert.Equal(t, first.BookingID, second.BookingID)
	assert.Len(t, calendar.created, 1, "ровно одно закоммиченное бронирование")
}

func TestExecute_MissingFields(t *testing.T) {
	policy := testPolicy(t)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"no requester name", func(r *Request) { r.RequesterName = "" }},
		{"no package", func(r *Request) { r.Package = "" }},
		{"no offering", func(r *Request) { r.Offering = "" }},
		{"no start time", func(r *Request) { r.StartsAt = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calendar := &fakeCalendar{}
			outcomes := &fakeOutcomeRepo{}
			uc := NewUseCase(policy, calendar, outcomes, nopLogger{})

			req := validRequest(policy)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrMissingFields)
			assert.Empty(t, calendar.listCalls, "отказ до обращения к календарю")
			assert.Equal(t, domain.OutcomeMissingFields, outcomes.lastOutcome())
		})
	}
}

func TestExecute_InvalidAmounts(t *testing.T) {
	policy := testPolicy(t)
	uc := NewUseCase(policy, &fakeCalendar{}, &fakeOutcomeRepo{}, nopLogger{})

	req := validRequest(policy)
	req.TotalAmount = ptr.Ptr(100.0)
	req.DepositAmount = ptr.Ptr(500.0)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	policy := testPolicy(t)
	calendar := &fakeCalendar{}
	outcomes := &fakeOutcomeRepo{}
	uc := NewUseCase(policy, calendar, outcomes, nopLogger{})

	req := validRequest(policy)
	req.StartsAt = time.Date(2026, 9, 12, 22, 0, 0, 0, policy.Location)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	assert.Equal(t, domain.OutcomeOutsideBusinessHours, outcomes.lastOutcome())
}

func TestExecute_DayCapacityExceeded(t *testing.T) {
	policy := testPolicy(t)

	// День уже держит 3 активных бронирования — любое 4-е отклоняется
	calendar := &fakeCalendar{events: []*calendarservice.Event{
		confirmedEvent(policy, "evt-a", 9, 0, 2*time.Hour),
		confirmedEvent(policy, "evt-b", 12, 0, 2*time.Hour),
		confirmedEvent(policy, "evt-c", 19, 0, 2*time.Hour),
	}}
	outcomes := &fakeOutcomeRepo{}
	uc := NewUseCase(policy, calendar, outcomes, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(policy))
	assert.ErrorIs(t, err, ErrDayCapacityExceeded)
	assert.Equal(t, domain.OutcomeDayCapacityExceeded, outcomes.lastOutcome())
}

func TestExecute_DayCapReportedBeforeOverlapCap(t *testing.T) {
	policy := testPolicy(t)

	// Нарушены оба лимита: три бронирования дня, все пересекают окно запроса
	calendar := &fakeCalendar{events: []*calendarservice.Event{
		confirmedEvent(policy, "evt-a", 13, 0, 4*time.Hour),
		confirmedEvent(policy, "evt-b", 14, 0, 4*time.Hour),
		confirmedEvent(policy, "evt-c", 15, 0, 4*time.Hour),
	}}
	uc := NewUseCase(policy, calendar, &fakeOutcomeRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(policy))
	assert.ErrorIs(t, err, ErrDayCapacityExceeded)
}

func TestExecute_OverlapCapacityExceeded(t *testing.T) {
	policy := testPolicy(t)

	// Два активных бронирования пересекают окно [13:00, 17:30); день не исчерпан
	calendar := &fakeCalendar{events: []*calendarservice.Event{
		confirmedEvent(policy, "evt-a", 12, 0, 3*time.Hour),
		confirmedEvent(policy, "evt-b", 16, 0, 3*time.Hour),
	}}
	outcomes := &fakeOutcomeRepo{}
	uc := NewUseCase(policy, calendar, outcomes, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(policy))
	assert.ErrorIs(t, err, ErrOverlapCapacityExceeded)
	assert.Equal(t, domain.OutcomeOverlapCapacityExceeded, outcomes.lastOutcome())

	// Непересекающийся запрос в тот же день проходит: small в 9:00 даёт окно
	// [08:00, 12:00), которое граничит с evt-a, но не пересекает его
	morning := validRequest(policy)
	morning.Package = domain.PackageSmall
	morning.StartsAt = time.Date(2026, 9, 12, 9, 0, 0, 0, policy.Location)

	resp, err := uc.Execute(context.Background(), morning)
	require.NoError(t, err)
	assert.False(t, resp.AlreadyExists)
}

func TestExecute_CancelledBookingsDoNotCount(t *testing.T) {
	policy := testPolicy(t)

	cancelled := confirmedEvent(policy, "evt-x", 13, 0, 5*time.Hour)
	cancelled.Status = calendarservice.StatusCancelled

	calendar := &fakeCalendar{events: []*calendarservice.Event{
		cancelled,
		{
			ID:     "evt-y",
			Start:  time.Date(2026, 9, 12, 13, 30, 0, 0, policy.Location),
			End:    time.Date(2026, 9, 12, 17, 0, 0, 0, policy.Location),
			Status: calendarservice.StatusCancelled,
		},
	}}
	uc := NewUseCase(policy, calendar, &fakeOutcomeRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(policy))
	assert.NoError(t, err)
}

func TestExecute_WindowCrossingMidnightTriggersSecondRead(t *testing.T) {
	policy := testPolicy(t)
	calendar := &fakeCalendar{}
	uc := NewUseCase(policy, calendar, &fakeOutcomeRepo{}, nopLogger{})

	// Старт 21:30, large: окно [20:30, 01:30) следующего дня
	req := validRequest(policy)
	req.Package = domain.PackageLarge
	req.StartsAt = time.Date(2026, 9, 12, 21, 30, 0, 0, policy.Location)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Чтение дня + чтение полного окна
	require.Len(t, calendar.listCalls, 2)
	windowRead := calendar.listCalls[1]
	assert.Equal(t, time.Date(2026, 9, 12, 20, 30, 0, 0, policy.Location).Unix(), windowRead.from.Unix())
	assert.Equal(t, time.Date(2026, 9, 13, 1, 30, 0, 0, policy.Location).Unix(), windowRead.to.Unix())
}

func TestExecute_CalendarReadFailure(t *testing.T) {
	policy := testPolicy(t)
	calendar := &fakeCalendar{listErr: errors.New("connection refused")}
	outcomes := &fakeOutcomeRepo{}
	uc := NewUseCase(policy, calendar, outcomes, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(policy))
	assert.ErrorIs(t, err, ErrCalendarRead)
	assert.Equal(t, domain.OutcomeCalendarReadFailed, outcomes.lastOutcome())
}

func TestExecute_CalendarWriteFailure(t *testing.T) {
	policy := testPolicy(t)
	calendar := &fakeCalendar{createErr: errors.New("internal server error")}
	outcomes := &fakeOutcomeRepo{}
	uc := NewUseCase(policy, calendar, outcomes, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(policy))
	assert.ErrorIs(t, err, ErrCalendarWrite)
	assert.Equal(t, domain.OutcomeCalendarWriteFailed, outcomes.lastOutcome())
}

func TestExecute_OutcomeLogFailureDoesNotAffectResult(t *testing.T) {
	policy := testPolicy(t)
	calendar := &fakeCalendar{}
	outcomes := &fakeOutcomeRepo{createErr: errors.New("db down")}
	uc := NewUseCase(policy, calendar, outcomes, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(policy))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.BookingID)
}

func TestExecute_NoTokenDisablesGuard(t *testing.T) {
	policy := testPolicy(t)
	calendar := &fakeCalendar{}
	uc := NewUseCase(policy, calendar, &fakeOutcomeRepo{}, nopLogger{})

	req := validRequest(policy)
	req.IdempotencyToken = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.AlreadyExists)

	// Без токена поиска дублей нет — сразу чтение занятости дня
	require.Len(t, calendar.listCalls, 1)
	assert.Empty(t, calendar.listCalls[0].tag)
}
