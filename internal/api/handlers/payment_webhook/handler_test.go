package payment_webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admitBooking "github.com/m04kA/SMC-CateringService/internal/usecase/admit_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *admitBooking.Response
	err  error

	gotReq *admitBooking.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *admitBooking.Request) (*admitBooking.Response, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

const validPayload = `{
	"sessionId": "cs_test_123",
	"booking": {
		"requesterName": "Anna Weber",
		"package": "medium",
		"offering": "buffet",
		"startsAt": "2026-09-12T14:00:00+02:00"
	}
}`

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/payment", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) WebhookResponse {
	t.Helper()

	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandle_CommittedBooking(t *testing.T) {
	uc := &stubUseCase{resp: &admitBooking.Response{BookingID: "evt-1", BookingRef: "ref-1"}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, validPayload)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "committed", resp.Outcome)
	assert.Equal(t, "evt-1", resp.BookingID)

	// Идентификатор платёжной сессии становится токеном идемпотентности
	require.NotNil(t, uc.gotReq.IdempotencyToken)
	assert.Equal(t, "cs_test_123", *uc.gotReq.IdempotencyToken)
}

func TestHandle_DuplicateDelivery(t *testing.T) {
	uc := &stubUseCase{resp: &admitBooking.Response{BookingID: "evt-1", AlreadyExists: true}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, validPayload)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "already_exists", resp.Outcome)
	assert.Equal(t, "evt-1", resp.BookingID)
}

func TestHandle_BusinessRejectionsAcknowledgedWith200(t *testing.T) {
	// Бизнес-отказ подтверждается 200, иначе провайдер будет доставлять
	// событие бесконечно
	tests := []struct {
		name    string
		err     error
		outcome string
	}{
		{"missing fields", admitBooking.ErrMissingFields, "missing_fields"},
		{"outside hours", admitBooking.ErrOutsideBusinessHours, "outside_business_hours"},
		{"day capacity", admitBooking.ErrDayCapacityExceeded, "day_capacity_exceeded"},
		{"overlap capacity", admitBooking.ErrOverlapCapacityExceeded, "overlap_capacity_exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, nopLogger{})

			rec := doRequest(h, validPayload)

			assert.Equal(t, http.StatusOK, rec.Code)
			resp := decodeResponse(t, rec)
			assert.Equal(t, tt.outcome, resp.Outcome)
			assert.NotEmpty(t, resp.Detail)
		})
	}
}

func TestHandle_ExternalFailureReturns500(t *testing.T) {
	// Сбой календаря может быть временным: 500 просит провайдера о повторе
	h := NewHandler(&stubUseCase{err: admitBooking.ErrCalendarWrite}, nopLogger{})

	rec := doRequest(h, validPayload)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandle_UndecodablePayload(t *testing.T) {
	h := NewHandler(&stubUseCase{}, nopLogger{})

	rec := doRequest(h, `{"sessionId": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidStartTime(t *testing.T) {
	h := NewHandler(&stubUseCase{}, nopLogger{})

	payload := strings.Replace(validPayload, "2026-09-12T14:00:00+02:00", "12.09.2026 14:00", 1)
	rec := doRequest(h, payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
