package service

import (
	"context"

	"swasthya/internal/store"
	"swasthya/pkg/config"
	apperrors "swasthya/pkg/errors"
	"swasthya/pkg/model"
	"swasthya/pkg/sanitizer"
	"swasthya/pkg/validate"
)

type NoticeService interface {
	Create(ctx context.Context, notice *model.HealthNotice) (string, error)
	List(ctx context.Context, city, region string) ([]store.Document, error)
}

type noticeService struct {
	gateway   store.Gateway
	validator *validate.Validator
	cfg       *config.Config
}

func NewNoticeService(gateway store.Gateway, cfg *config.Config) NoticeService {
	return &noticeService{
		gateway:   gateway,
		validator: validate.New(),
		cfg:       cfg,
	}
}

func (s *noticeService) Create(ctx context.Context, notice *model.HealthNotice) (string, error) {
	notice.Title = sanitizer.TrimAndNormalize(notice.Title)
	notice.City = sanitizer.NormalizeCity(notice.City)
	notice.Region = sanitizer.NormalizeCity(notice.Region)

	if err := s.validator.Struct(notice); err != nil {
		s.cfg.Log.Warn("Notice validation failed", "error", err)
		return "", apperrors.Validation("Notice validation failed", map[string]any{"error": err.Error()})
	}

	if notice.Tags == nil {
		notice.Tags = []string{}
	}

	id, err := s.gateway.Insert(ctx, store.CollectionNotices, notice)
	if err != nil {
		s.cfg.Log.Error("Failed to create notice", "error", err)
		return "", apperrors.Internal("Failed to create notice", err)
	}

	s.cfg.Log.Info("Health notice created", "id", id, "city", notice.City)
	return id, nil
}

func (s *noticeService) List(ctx context.Context, city, region string) ([]store.Document, error) {
	filter := store.Document{}
	if city != "" {
		filter["city"] = sanitizer.NormalizeCity(city)
	}
	if region != "" {
		filter["region"] = sanitizer.NormalizeCity(region)
	}

	notices, err := s.gateway.Find(ctx, store.CollectionNotices, filter, int64(config.DefaultPaginationLimit))
	if err != nil {
		s.cfg.Log.Error("Failed to list notices", "error", err)
		return nil, apperrors.Internal("Failed to list notices", err)
	}
	return notices, nil
}
