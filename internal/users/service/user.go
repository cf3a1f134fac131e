package service

import (
	"context"
	"errors"

	"swasthya/internal/store"
	"swasthya/pkg/config"
	apperrors "swasthya/pkg/errors"
	"swasthya/pkg/model"
	"swasthya/pkg/sanitizer"
	"swasthya/pkg/validate"
)

type UserService interface {
	Create(ctx context.Context, user *model.AppUser) (string, error)
	List(ctx context.Context, city, bloodGroup string) ([]store.Document, error)
	AwardKarma(ctx context.Context, award *model.KarmaAward) error
}

type userService struct {
	gateway   store.Gateway
	validator *validate.Validator
	cfg       *config.Config
}

func NewUserService(gateway store.Gateway, cfg *config.Config) UserService {
	return &userService{
		gateway:   gateway,
		validator: validate.New(),
		cfg:       cfg,
	}
}

func (s *userService) Create(ctx context.Context, user *model.AppUser) (string, error) {
	user.Name = sanitizer.NormalizeName(user.Name)
	user.Location = sanitizer.NormalizeCity(user.Location)
	user.BloodGroup = sanitizer.NormalizeBloodGroup(user.BloodGroup)

	if err := s.validator.Struct(user); err != nil {
		s.cfg.Log.Warn("User validation failed", "error", err)
		return "", apperrors.Validation("User validation failed", map[string]any{"error": err.Error()})
	}

	id, err := s.gateway.Insert(ctx, store.CollectionUsers, user)
	if err != nil {
		s.cfg.Log.Error("Failed to create user", "error", err)
		return "", apperrors.Internal("Failed to create user", err)
	}

	s.cfg.Log.Info("User created", "id", id)
	return id, nil
}

func (s *userService) List(ctx context.Context, city, bloodGroup string) ([]store.Document, error) {
	filter := store.Document{}
	if city != "" {
		filter["location"] = sanitizer.NormalizeCity(city)
	}
	if bloodGroup != "" {
		filter["blood_group"] = sanitizer.NormalizeBloodGroup(bloodGroup)
	}

	docs, err := s.gateway.Find(ctx, store.CollectionUsers, filter, 0)
	if err != nil {
		return nil, apperrors.Internal("Failed to list users", err)
	}
	return docs, nil
}

// AwardKarma credits donation karma. The increment is a single $inc so
// concurrent awards never lose points.
func (s *userService) AwardKarma(ctx context.Context, award *model.KarmaAward) error {
	if err := s.validator.Struct(award); err != nil {
		return apperrors.InvalidInput("Invalid user id")
	}

	err := s.gateway.IncrementField(ctx, store.CollectionUsers, award.UserID, "karma_points", award.Points)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFoundWithID("User", award.UserID)
		}
		if errors.Is(err, store.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid user id")
		}
		return apperrors.Internal("Failed to award karma points", err)
	}

	s.cfg.Log.Info("Karma points awarded", "user_id", award.UserID, "points", award.Points)
	return nil
}
