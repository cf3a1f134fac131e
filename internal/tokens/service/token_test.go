package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	tokenserrors "swasthya/internal/tokens/errors"
	"swasthya/pkg/config"
	apperrors "swasthya/pkg/errors"
	"swasthya/pkg/logger"
	"swasthya/pkg/model"
)

const testDoctorID = "64f1b2c3d4e5f6a7b8c9d0e1"

func testConfig() *config.Config {
	return &config.Config{
		TokenAllocRetries: 3,
		Log:               logger.New(logger.Config{Output: io.Discard}),
	}
}

// fakeFeedRepository keeps counters in memory with the same atomicity the
// real collection provides.
type fakeFeedRepository struct {
	mu    sync.Mutex
	feeds map[string]*model.TokenFeed

	incrementFn func(ctx context.Context, key, doctorID, date string) (int, error)
}

func newFakeFeedRepository() *fakeFeedRepository {
	return &fakeFeedRepository{feeds: make(map[string]*model.TokenFeed)}
}

func (f *fakeFeedRepository) IncrementLast(ctx context.Context, key, doctorID, date string) (int, error) {
	if f.incrementFn != nil {
		return f.incrementFn(ctx, key, doctorID, date)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	feed, ok := f.feeds[key]
	if !ok {
		feed = &model.TokenFeed{Key: key, DoctorID: doctorID, Date: date}
		f.feeds[key] = feed
	}
	feed.LastToken++
	return feed.LastToken, nil
}

func (f *fakeFeedRepository) SetCurrent(ctx context.Context, key, doctorID, date string, value int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	feed, ok := f.feeds[key]
	if !ok {
		feed = &model.TokenFeed{Key: key, DoctorID: doctorID, Date: date}
		f.feeds[key] = feed
	}
	feed.CurrentToken = value
	return nil
}

func (f *fakeFeedRepository) Find(ctx context.Context, key string) (*model.TokenFeed, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	feed, ok := f.feeds[key]
	if !ok {
		return nil, tokenserrors.ErrFeedNotFound
	}
	copied := *feed
	return &copied, nil
}

func TestDateKey(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "truncates time of day",
			in:   time.Date(2024, 6, 1, 15, 30, 45, 0, time.UTC),
			want: "2024-06-01",
		},
		{
			name: "normalizes to UTC before truncating",
			in:   time.Date(2024, 6, 1, 23, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)),
			want: "2024-06-01",
		},
		{
			name: "zone shift crosses midnight",
			in:   time.Date(2024, 6, 1, 1, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)),
			want: "2024-05-31",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DateKey(tc.in); got != tc.want {
				t.Errorf("DateKey(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFeedKey(t *testing.T) {
	got := FeedKey(testDoctorID, "2024-06-01")
	want := testDoctorID + "_2024-06-01"
	if got != want {
		t.Errorf("FeedKey = %q, want %q", got, want)
	}
}

func TestAllocateNextSequential(t *testing.T) {
	svc := NewTokenService(newFakeFeedRepository(), testConfig())

	for want := 1; want <= 5; want++ {
		got, err := svc.AllocateNext(context.Background(), testDoctorID, "2024-06-01")
		if err != nil {
			t.Fatalf("AllocateNext: %v", err)
		}
		if got != want {
			t.Errorf("AllocateNext = %d, want %d", got, want)
		}
	}
}

func TestAllocateNextIndependentFeeds(t *testing.T) {
	svc := NewTokenService(newFakeFeedRepository(), testConfig())
	otherDoctor := "64f1b2c3d4e5f6a7b8c9d0e2"

	for i := 0; i < 3; i++ {
		if _, err := svc.AllocateNext(context.Background(), testDoctorID, "2024-06-01"); err != nil {
			t.Fatalf("AllocateNext: %v", err)
		}
	}

	got, err := svc.AllocateNext(context.Background(), testDoctorID, "2024-06-02")
	if err != nil {
		t.Fatalf("AllocateNext: %v", err)
	}
	if got != 1 {
		t.Errorf("new date should start its own sequence, got token %d", got)
	}

	got, err = svc.AllocateNext(context.Background(), otherDoctor, "2024-06-01")
	if err != nil {
		t.Fatalf("AllocateNext: %v", err)
	}
	if got != 1 {
		t.Errorf("new doctor should start its own sequence, got token %d", got)
	}
}

func TestAllocateNextConcurrent(t *testing.T) {
	const workers = 50

	svc := NewTokenService(newFakeFeedRepository(), testConfig())

	tokens := make(chan int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := svc.AllocateNext(context.Background(), testDoctorID, "2024-06-01")
			if err != nil {
				t.Errorf("AllocateNext: %v", err)
				return
			}
			tokens <- token
		}()
	}
	wg.Wait()
	close(tokens)

	seen := make(map[int]bool, workers)
	for token := range tokens {
		if seen[token] {
			t.Fatalf("token %d allocated twice", token)
		}
		seen[token] = true
	}
	for want := 1; want <= workers; want++ {
		if !seen[want] {
			t.Errorf("token %d never allocated", want)
		}
	}
}

func TestAllocateNextRetriesOnConflict(t *testing.T) {
	repo := newFakeFeedRepository()
	attempts := 0
	repo.incrementFn = func(ctx context.Context, key, doctorID, date string) (int, error) {
		attempts++
		if attempts == 1 {
			return 0, tokenserrors.ErrAllocationConflict
		}
		return 1, nil
	}

	svc := NewTokenService(repo, testConfig())

	got, err := svc.AllocateNext(context.Background(), testDoctorID, "2024-06-01")
	if err != nil {
		t.Fatalf("AllocateNext: %v", err)
	}
	if got != 1 {
		t.Errorf("AllocateNext = %d, want 1", got)
	}
	if attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts)
	}
}

func TestAllocateNextRetriesExhausted(t *testing.T) {
	repo := newFakeFeedRepository()
	attempts := 0
	repo.incrementFn = func(ctx context.Context, key, doctorID, date string) (int, error) {
		attempts++
		return 0, tokenserrors.ErrAllocationConflict
	}

	cfg := testConfig()
	svc := NewTokenService(repo, cfg)

	_, err := svc.AllocateNext(context.Background(), testDoctorID, "2024-06-01")
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if attempts != cfg.TokenAllocRetries {
		t.Errorf("expected %d attempts, got %d", cfg.TokenAllocRetries, attempts)
	}

	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeInternal {
		t.Errorf("expected %s, got %v", apperrors.CodeInternal, err)
	}
}

func TestAllocateNextRejectsEmptyIdentity(t *testing.T) {
	svc := NewTokenService(newFakeFeedRepository(), testConfig())

	if _, err := svc.AllocateNext(context.Background(), "", "2024-06-01"); err == nil {
		t.Error("expected error for empty doctor ID")
	}
	if _, err := svc.AllocateNext(context.Background(), testDoctorID, ""); err == nil {
		t.Error("expected error for empty date")
	}
}

func TestStatusUnknownFeedReportsZeroes(t *testing.T) {
	svc := NewTokenService(newFakeFeedRepository(), testConfig())

	status, err := svc.Status(context.Background(), testDoctorID, "2024-06-01")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.LastToken != 0 || status.CurrentToken != 0 {
		t.Errorf("empty queue should report zeroes, got %+v", status)
	}
	if status.DoctorID != testDoctorID || status.Date != "2024-06-01" {
		t.Errorf("status should echo the queried identity, got %+v", status)
	}
}

func TestSetCurrentLeavesLastTokenAlone(t *testing.T) {
	repo := newFakeFeedRepository()
	svc := NewTokenService(repo, testConfig())

	for i := 0; i < 3; i++ {
		if _, err := svc.AllocateNext(context.Background(), testDoctorID, "2024-06-01"); err != nil {
			t.Fatalf("AllocateNext: %v", err)
		}
	}

	update := &model.TokenUpdate{DoctorID: testDoctorID, Date: "2024-06-01", CurrentToken: 2}
	if err := svc.SetCurrent(context.Background(), update); err != nil {
		t.Fatalf("SetCurrent: %v", err)
	}

	status, err := svc.Status(context.Background(), testDoctorID, "2024-06-01")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.CurrentToken != 2 {
		t.Errorf("CurrentToken = %d, want 2", status.CurrentToken)
	}
	if status.LastToken != 3 {
		t.Errorf("LastToken = %d, want 3", status.LastToken)
	}

	token, err := svc.AllocateNext(context.Background(), testDoctorID, "2024-06-01")
	if err != nil {
		t.Fatalf("AllocateNext: %v", err)
	}
	if token != 4 {
		t.Errorf("allocation after SetCurrent = %d, want 4", token)
	}
}
