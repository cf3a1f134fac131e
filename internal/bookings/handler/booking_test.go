package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	"swasthya/internal/bookings/service"
	"swasthya/internal/store"
	apperrors "swasthya/pkg/errors"
	"swasthya/pkg/logger"
	"swasthya/pkg/model"
)

type mockBookingService struct {
	createFn     func(ctx context.Context, booking *model.Booking) (*service.Receipt, error)
	getByIDFn    func(ctx context.Context, id string) (store.Document, error)
	listByUserFn func(ctx context.Context, userID string, limit int64) ([]store.Document, error)
}

func (m *mockBookingService) Create(ctx context.Context, booking *model.Booking) (*service.Receipt, error) {
	return m.createFn(ctx, booking)
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (store.Document, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBookingService) ListByUser(ctx context.Context, userID string, limit int64) ([]store.Document, error) {
	return m.listByUserFn(ctx, userID, limit)
}

func newTestRouter(svc service.BookingService) *httprouter.Router {
	router := httprouter.New()
	h := NewBookingHandler(svc, logger.New(logger.Config{Output: io.Discard}))
	h.RegisterRoutes(router)
	return router
}

func TestCreateBookingReturnsReceipt(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, booking *model.Booking) (*service.Receipt, error) {
			return &service.Receipt{ID: "64f1b2c3d4e5f6a7b8c9d0ff", Token: 7}, nil
		},
	}
	router := newTestRouter(svc)

	body := `{"user_id":"64f1b2c3d4e5f6a7b8c9d0e1","doctor_id":"64f1b2c3d4e5f6a7b8c9d0e2","date":"2024-06-01T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var receipt service.Receipt
	if err := json.NewDecoder(rec.Body).Decode(&receipt); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if receipt.Token != 7 {
		t.Errorf("token = %d, want 7", receipt.Token)
	}
	if receipt.ID == "" {
		t.Error("expected a booking ID in the receipt")
	}
}

func TestCreateBookingMalformedBody(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, booking *model.Booking) (*service.Receipt, error) {
			t.Fatal("service must not be called for malformed JSON")
			return nil, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreateBookingInvalidDoctor(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, booking *model.Booking) (*service.Receipt, error) {
			return nil, apperrors.InvalidInput("Invalid doctor id")
		},
	}
	router := newTestRouter(svc)

	body := `{"user_id":"64f1b2c3d4e5f6a7b8c9d0e1","doctor_id":"garbage","date":"2024-06-01T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetBookingNotFound(t *testing.T) {
	svc := &mockBookingService{
		getByIDFn: func(ctx context.Context, id string) (store.Document, error) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/bookings/64f1b2c3d4e5f6a7b8c9d0aa", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestListBookingsPassesUserFilter(t *testing.T) {
	var captured string
	svc := &mockBookingService{
		listByUserFn: func(ctx context.Context, userID string, limit int64) ([]store.Document, error) {
			captured = userID
			return []store.Document{}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/bookings?user_id=64f1b2c3d4e5f6a7b8c9d0e1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if captured != "64f1b2c3d4e5f6a7b8c9d0e1" {
		t.Errorf("user filter = %q", captured)
	}
}
