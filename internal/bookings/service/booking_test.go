package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"swasthya/internal/bookings/validator"
	"swasthya/internal/store"
	"swasthya/pkg/config"
	apperrors "swasthya/pkg/errors"
	"swasthya/pkg/kafka"
	"swasthya/pkg/logger"
	"swasthya/pkg/model"
)

const (
	testUserID   = "64f1b2c3d4e5f6a7b8c9d0e1"
	testDoctorID = "64f1b2c3d4e5f6a7b8c9d0e2"
)

func testConfig() *config.Config {
	return &config.Config{
		TokenAllocRetries: 3,
		Log:               logger.New(logger.Config{Output: io.Discard}),
	}
}

type mockGateway struct {
	insertFn   func(ctx context.Context, collection string, doc any) (string, error)
	findFn     func(ctx context.Context, collection string, filter store.Document, limit int64) ([]store.Document, error)
	findByIDFn func(ctx context.Context, collection, id string) (store.Document, error)

	inserted []any
}

func (m *mockGateway) Insert(ctx context.Context, collection string, doc any) (string, error) {
	m.inserted = append(m.inserted, doc)
	if m.insertFn != nil {
		return m.insertFn(ctx, collection, doc)
	}
	return "64f1b2c3d4e5f6a7b8c9d0ff", nil
}

func (m *mockGateway) Find(ctx context.Context, collection string, filter store.Document, limit int64) ([]store.Document, error) {
	if m.findFn != nil {
		return m.findFn(ctx, collection, filter, limit)
	}
	return nil, nil
}

func (m *mockGateway) FindByID(ctx context.Context, collection, id string) (store.Document, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, collection, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockGateway) FindOne(ctx context.Context, collection string, filter store.Document) (store.Document, error) {
	return nil, store.ErrNotFound
}

func (m *mockGateway) Update(ctx context.Context, collection, id string, patch store.Document) error {
	return nil
}

func (m *mockGateway) Push(ctx context.Context, collection, id, field string, value any) error {
	return nil
}

func (m *mockGateway) Upsert(ctx context.Context, collection string, filter, patch store.Document) (store.Document, error) {
	return patch, nil
}

func (m *mockGateway) IncrementField(ctx context.Context, collection, id, field string, delta int) error {
	return nil
}

type mockTokenService struct {
	allocateFn func(ctx context.Context, doctorID, date string) (int, error)

	allocations int
	lastDate    string
}

func (m *mockTokenService) AllocateNext(ctx context.Context, doctorID, date string) (int, error) {
	m.allocations++
	m.lastDate = date
	if m.allocateFn != nil {
		return m.allocateFn(ctx, doctorID, date)
	}
	return m.allocations, nil
}

func (m *mockTokenService) SetCurrent(ctx context.Context, update *model.TokenUpdate) error {
	return nil
}

func (m *mockTokenService) Status(ctx context.Context, doctorID, date string) (*model.FeedStatus, error) {
	return &model.FeedStatus{DoctorID: doctorID, Date: date}, nil
}

func newTestService(gateway *mockGateway, tokens *mockTokenService) BookingService {
	return NewBookingService(gateway, tokens, validator.NewBookingValidator(), kafka.NopPublisher{}, testConfig())
}

func validBooking() *model.Booking {
	return &model.Booking{
		UserID:   testUserID,
		DoctorID: testDoctorID,
		Date:     time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC),
	}
}

func TestCreateAssignsToken(t *testing.T) {
	gateway := &mockGateway{}
	tokens := &mockTokenService{}
	svc := newTestService(gateway, tokens)

	receipt, err := svc.Create(context.Background(), validBooking())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if receipt.Token != 1 {
		t.Errorf("Token = %d, want 1", receipt.Token)
	}
	if receipt.ID == "" {
		t.Error("expected a booking ID")
	}
	if len(gateway.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(gateway.inserted))
	}

	booking, ok := gateway.inserted[0].(*model.Booking)
	if !ok {
		t.Fatalf("unexpected inserted type %T", gateway.inserted[0])
	}
	if booking.Token != 1 {
		t.Errorf("persisted token = %d, want 1", booking.Token)
	}
	if booking.Status != model.BookingBooked {
		t.Errorf("status should default to %q, got %q", model.BookingBooked, booking.Status)
	}
}

func TestCreateTruncatesDateKey(t *testing.T) {
	tokens := &mockTokenService{}
	svc := newTestService(&mockGateway{}, tokens)

	booking := validBooking()
	booking.Date = time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC)

	if _, err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tokens.lastDate != "2024-06-01" {
		t.Errorf("allocation date = %q, want 2024-06-01", tokens.lastDate)
	}
}

func TestCreateMalformedDoctorRefMutatesNothing(t *testing.T) {
	gateway := &mockGateway{}
	tokens := &mockTokenService{}
	svc := newTestService(gateway, tokens)

	booking := validBooking()
	booking.DoctorID = "not-a-document-id"

	_, err := svc.Create(context.Background(), booking)
	if err == nil {
		t.Fatal("expected error for malformed doctor reference")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("code = %s, want %s", appErr.Code, apperrors.CodeInvalidInput)
	}
	if tokens.allocations != 0 {
		t.Errorf("no token should be allocated, got %d allocations", tokens.allocations)
	}
	if len(gateway.inserted) != 0 {
		t.Errorf("nothing should be persisted, got %d inserts", len(gateway.inserted))
	}
}

func TestCreateInvalidBookingMutatesNothing(t *testing.T) {
	gateway := &mockGateway{}
	tokens := &mockTokenService{}
	svc := newTestService(gateway, tokens)

	booking := validBooking()
	booking.UserID = ""

	_, err := svc.Create(context.Background(), booking)
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("code = %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
	if tokens.allocations != 0 {
		t.Errorf("no token should be allocated, got %d allocations", tokens.allocations)
	}
	if len(gateway.inserted) != 0 {
		t.Errorf("nothing should be persisted, got %d inserts", len(gateway.inserted))
	}
}

func TestCreatePropagatesAllocationFailure(t *testing.T) {
	gateway := &mockGateway{}
	tokens := &mockTokenService{
		allocateFn: func(ctx context.Context, doctorID, date string) (int, error) {
			return 0, apperrors.Internal("Failed to allocate visit token after retries", errors.New("conflict"))
		},
	}
	svc := newTestService(gateway, tokens)

	_, err := svc.Create(context.Background(), validBooking())
	if err == nil {
		t.Fatal("expected allocation error to propagate")
	}
	if len(gateway.inserted) != 0 {
		t.Errorf("failed allocation must not persist a booking, got %d inserts", len(gateway.inserted))
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService(&mockGateway{}, &mockTokenService{})

	_, err := svc.GetByID(context.Background(), "64f1b2c3d4e5f6a7b8c9d0aa")
	if err == nil {
		t.Fatal("expected not found error")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeNotFound {
		t.Errorf("code = %s, want %s", appErr.Code, apperrors.CodeNotFound)
	}
}

func TestListByUserFiltersByUser(t *testing.T) {
	var captured store.Document
	gateway := &mockGateway{
		findFn: func(ctx context.Context, collection string, filter store.Document, limit int64) ([]store.Document, error) {
			captured = filter
			return []store.Document{{"_id": "x"}}, nil
		},
	}
	svc := newTestService(gateway, &mockTokenService{})

	docs, err := svc.ListByUser(context.Background(), testUserID, 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("expected 1 booking, got %d", len(docs))
	}
	if captured["user_id"] != testUserID {
		t.Errorf("filter user_id = %v, want %s", captured["user_id"], testUserID)
	}
}
