package service

import (
	"context"

	"swasthya/internal/events"
	"swasthya/internal/store"
	"swasthya/pkg/config"
	apperrors "swasthya/pkg/errors"
	"swasthya/pkg/kafka"
	"swasthya/pkg/model"
	"swasthya/pkg/sanitizer"
	"swasthya/pkg/validate"
)

type BloodService interface {
	CreateRequest(ctx context.Context, request *model.BloodRequest) (string, error)
	ListRequests(ctx context.Context, city, bloodGroup, status string) ([]store.Document, error)
}

type bloodService struct {
	gateway   store.Gateway
	publisher kafka.Publisher
	validator *validate.Validator
	cfg       *config.Config
}

func NewBloodService(gateway store.Gateway, publisher kafka.Publisher, cfg *config.Config) BloodService {
	return &bloodService{
		gateway:   gateway,
		publisher: publisher,
		validator: validate.New(),
		cfg:       cfg,
	}
}

func (s *bloodService) CreateRequest(ctx context.Context, request *model.BloodRequest) (string, error) {
	request.Location = sanitizer.NormalizeCity(request.Location)
	request.BloodGroup = sanitizer.NormalizeBloodGroup(request.BloodGroup)
	if request.Urgency == "" {
		request.Urgency = "medium"
	}
	if request.Status == "" {
		request.Status = model.BloodRequestOpen
	}

	if err := s.validator.Struct(request); err != nil {
		s.cfg.Log.Warn("Blood request validation failed", "error", err)
		return "", apperrors.Validation("Blood request validation failed", map[string]any{"error": err.Error()})
	}

	id, err := s.gateway.Insert(ctx, store.CollectionBloodRequests, request)
	if err != nil {
		s.cfg.Log.Error("Failed to create blood request", "error", err)
		return "", apperrors.Internal("Failed to create blood request", err)
	}

	s.publishCreated(ctx, id, request)

	s.cfg.Log.Info("Blood request created",
		"id", id,
		"blood_group", request.BloodGroup,
		"location", request.Location,
		"urgency", request.Urgency,
	)
	return id, nil
}

func (s *bloodService) ListRequests(ctx context.Context, city, bloodGroup, status string) ([]store.Document, error) {
	filter := store.Document{}
	if city != "" {
		filter["location"] = sanitizer.NormalizeCity(city)
	}
	if bloodGroup != "" {
		filter["blood_group"] = sanitizer.NormalizeBloodGroup(bloodGroup)
	}
	if status != "" {
		filter["status"] = status
	}

	requests, err := s.gateway.Find(ctx, store.CollectionBloodRequests, filter, int64(config.DefaultPaginationLimit))
	if err != nil {
		s.cfg.Log.Error("Failed to list blood requests", "error", err)
		return nil, apperrors.Internal("Failed to list blood requests", err)
	}
	return requests, nil
}

func (s *bloodService) publishCreated(ctx context.Context, id string, request *model.BloodRequest) {
	msg, err := kafka.NewEvent(events.TypeBloodRequestCreated, id, events.BloodRequestCreated{
		RequestID:   id,
		RequesterID: request.RequesterID,
		Location:    request.Location,
		BloodGroup:  request.BloodGroup,
		UnitsNeeded: request.UnitsNeeded,
		Urgency:     request.Urgency,
	})
	if err != nil {
		s.cfg.Log.Error("Failed to encode blood request event", "id", id, "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish blood request event", "id", id, "error", err)
	}
}
