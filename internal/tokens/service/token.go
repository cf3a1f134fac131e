package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	tokenserrors "swasthya/internal/tokens/errors"
	"swasthya/internal/tokens/repository"
	"swasthya/pkg/config"
	apperrors "swasthya/pkg/errors"
	"swasthya/pkg/model"
)

// TokenService owns the per-doctor-per-day visit sequence: allocation of the
// next token at booking time and the currently-served pointer for status
// displays.
type TokenService interface {
	AllocateNext(ctx context.Context, doctorID, date string) (int, error)
	SetCurrent(ctx context.Context, update *model.TokenUpdate) error
	Status(ctx context.Context, doctorID, date string) (*model.FeedStatus, error)
}

type tokenService struct {
	repo repository.FeedRepository
	cfg  *config.Config
}

func NewTokenService(repo repository.FeedRepository, cfg *config.Config) TokenService {
	return &tokenService{
		repo: repo,
		cfg:  cfg,
	}
}

// DateKey truncates an appointment time to its UTC calendar date. Two
// bookings at different times on the same day share one sequence.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// FeedKey builds the composite identity of one doctor+date queue.
func FeedKey(doctorID, date string) string {
	return fmt.Sprintf("%s_%s", doctorID, date)
}

func (s *tokenService) AllocateNext(ctx context.Context, doctorID, date string) (int, error) {
	if doctorID == "" || date == "" {
		return 0, apperrors.InvalidInput("doctor ID and date are required for token allocation")
	}

	key := FeedKey(doctorID, date)

	var lastErr error
	for attempt := 1; attempt <= s.cfg.TokenAllocRetries; attempt++ {
		token, err := s.repo.IncrementLast(ctx, key, doctorID, date)
		if err == nil {
			s.cfg.Log.Debug("Token allocated",
				"doctor_id", doctorID,
				"date", date,
				"token", token,
				"attempt", attempt,
			)
			return token, nil
		}

		if !errors.Is(err, tokenserrors.ErrAllocationConflict) {
			return 0, apperrors.Internal("Failed to allocate visit token", err)
		}

		// Lost the first-allocation upsert race; the feed exists now, so the
		// next attempt lands on the plain atomic increment.
		lastErr = err
		s.cfg.Log.Warn("Token allocation conflict, retrying",
			"doctor_id", doctorID,
			"date", date,
			"attempt", attempt,
		)
	}

	return 0, apperrors.Internal("Failed to allocate visit token after retries", lastErr)
}

func (s *tokenService) SetCurrent(ctx context.Context, update *model.TokenUpdate) error {
	key := FeedKey(update.DoctorID, update.Date)

	// No validation against last_token: hospital staff tooling is trusted.
	if err := s.repo.SetCurrent(ctx, key, update.DoctorID, update.Date, update.CurrentToken); err != nil {
		s.cfg.Log.Error("Failed to set current token",
			"doctor_id", update.DoctorID,
			"date", update.Date,
			"error", err,
		)
		return apperrors.Internal("Failed to update current token", err)
	}

	s.cfg.Log.Info("Current token updated",
		"doctor_id", update.DoctorID,
		"date", update.Date,
		"current_token", update.CurrentToken,
	)
	return nil
}

func (s *tokenService) Status(ctx context.Context, doctorID, date string) (*model.FeedStatus, error) {
	if doctorID == "" || date == "" {
		return nil, apperrors.InvalidInput("doctor_id and date query parameters are required")
	}

	feed, err := s.repo.Find(ctx, FeedKey(doctorID, date))
	if err != nil {
		if errors.Is(err, tokenserrors.ErrFeedNotFound) {
			// No bookings yet for this doctor+date: an empty queue, not an error.
			return &model.FeedStatus{DoctorID: doctorID, Date: date}, nil
		}
		return nil, apperrors.Internal("Failed to read token status", err)
	}

	return &model.FeedStatus{
		DoctorID:     feed.DoctorID,
		Date:         feed.Date,
		LastToken:    feed.LastToken,
		CurrentToken: feed.CurrentToken,
	}, nil
}
