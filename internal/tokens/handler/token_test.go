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

	"swasthya/internal/tokens/service"
	"swasthya/pkg/logger"
	"swasthya/pkg/model"
)

type mockTokenService struct {
	setCurrentFn func(ctx context.Context, update *model.TokenUpdate) error
	statusFn     func(ctx context.Context, doctorID, date string) (*model.FeedStatus, error)
}

func (m *mockTokenService) AllocateNext(ctx context.Context, doctorID, date string) (int, error) {
	return 0, nil
}

func (m *mockTokenService) SetCurrent(ctx context.Context, update *model.TokenUpdate) error {
	return m.setCurrentFn(ctx, update)
}

func (m *mockTokenService) Status(ctx context.Context, doctorID, date string) (*model.FeedStatus, error) {
	return m.statusFn(ctx, doctorID, date)
}

func newTestRouter(svc service.TokenService) *httprouter.Router {
	router := httprouter.New()
	h := NewTokenHandler(svc, logger.New(logger.Config{Output: io.Discard}))
	h.RegisterRoutes(router)
	return router
}

func TestUpdateCurrent(t *testing.T) {
	var captured *model.TokenUpdate
	svc := &mockTokenService{
		setCurrentFn: func(ctx context.Context, update *model.TokenUpdate) error {
			captured = update
			return nil
		},
	}
	router := newTestRouter(svc)

	body := `{"doctor_id":"64f1b2c3d4e5f6a7b8c9d0e2","date":"2024-06-01","current_token":5}`
	req := httptest.NewRequest(http.MethodPost, "/token/update", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if captured == nil || captured.CurrentToken != 5 {
		t.Errorf("service received %+v, want current_token 5", captured)
	}
}

func TestUpdateCurrentRejectsBadDate(t *testing.T) {
	svc := &mockTokenService{
		setCurrentFn: func(ctx context.Context, update *model.TokenUpdate) error {
			t.Fatal("service must not be called for an invalid payload")
			return nil
		},
	}
	router := newTestRouter(svc)

	cases := []struct {
		name string
		body string
	}{
		{"not a date", `{"doctor_id":"64f1b2c3d4e5f6a7b8c9d0e2","date":"June 1st","current_token":5}`},
		{"wrong layout", `{"doctor_id":"64f1b2c3d4e5f6a7b8c9d0e2","date":"01-06-2024","current_token":5}`},
		{"missing doctor", `{"date":"2024-06-01","current_token":5}`},
		{"negative token", `{"doctor_id":"64f1b2c3d4e5f6a7b8c9d0e2","date":"2024-06-01","current_token":-1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/token/update", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
			}
		})
	}
}

func TestStatusServesFeed(t *testing.T) {
	svc := &mockTokenService{
		statusFn: func(ctx context.Context, doctorID, date string) (*model.FeedStatus, error) {
			return &model.FeedStatus{DoctorID: doctorID, Date: date, LastToken: 12, CurrentToken: 4}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/token/status?doctor_id=64f1b2c3d4e5f6a7b8c9d0e2&date=2024-06-01", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var status model.FeedStatus
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if status.LastToken != 12 || status.CurrentToken != 4 {
		t.Errorf("unexpected status %+v", status)
	}
}
