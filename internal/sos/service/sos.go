package service

import (
	"context"
	"time"

	"swasthya/internal/events"
	"swasthya/internal/store"
	"swasthya/pkg/config"
	apperrors "swasthya/pkg/errors"
	"swasthya/pkg/kafka"
	"swasthya/pkg/model"
	"swasthya/pkg/validate"
)

type SOSService interface {
	SaveSettings(ctx context.Context, settings *model.SOSSetting) (string, error)
	Trigger(ctx context.Context, trigger *model.SOSTrigger) (string, error)
}

type sosService struct {
	gateway   store.Gateway
	publisher kafka.Publisher
	validator *validate.Validator
	cfg       *config.Config
}

func NewSOSService(gateway store.Gateway, publisher kafka.Publisher, cfg *config.Config) SOSService {
	return &sosService{
		gateway:   gateway,
		publisher: publisher,
		validator: validate.New(),
		cfg:       cfg,
	}
}

// SaveSettings upserts by user id: one settings document per user.
func (s *sosService) SaveSettings(ctx context.Context, settings *model.SOSSetting) (string, error) {
	if err := s.validator.Struct(settings); err != nil {
		s.cfg.Log.Warn("SOS settings validation failed", "error", err)
		return "", apperrors.Validation("SOS settings validation failed", map[string]any{"error": err.Error()})
	}

	patch := store.Document{
		"user_id":            settings.UserID,
		"contacts":           settings.Contacts,
		"preferred_hospital": settings.PreferredHospital,
	}

	doc, err := s.gateway.Upsert(ctx, store.CollectionSOSSettings, store.Document{"user_id": settings.UserID}, patch)
	if err != nil {
		s.cfg.Log.Error("Failed to save SOS settings", "user_id", settings.UserID, "error", err)
		return "", apperrors.Internal("Failed to save SOS settings", err)
	}

	id, _ := doc["_id"].(string)
	s.cfg.Log.Info("SOS settings saved", "user_id", settings.UserID, "id", id)
	return id, nil
}

// Trigger records the emergency and hands it to the notifications pipeline.
// Actual SMS/call/ambulance dispatch is externally owned.
func (s *sosService) Trigger(ctx context.Context, trigger *model.SOSTrigger) (string, error) {
	if err := s.validator.Struct(trigger); err != nil {
		s.cfg.Log.Warn("SOS trigger validation failed", "error", err)
		return "", apperrors.Validation("SOS trigger validation failed", map[string]any{"error": err.Error()})
	}

	doc := store.Document{
		"user_id":        trigger.UserID,
		"emergency_type": trigger.EmergencyType,
		"lat":            trigger.Lat,
		"lng":            trigger.Lng,
		"status":         model.SOSStatusSent,
	}

	id, err := s.gateway.Insert(ctx, store.CollectionSOSEvents, doc)
	if err != nil {
		s.cfg.Log.Error("Failed to record SOS event", "user_id", trigger.UserID, "error", err)
		return "", apperrors.Internal("Failed to record SOS event", err)
	}

	s.publishTriggered(ctx, id, trigger)

	s.cfg.Log.Info("SOS triggered",
		"id", id,
		"user_id", trigger.UserID,
		"emergency_type", trigger.EmergencyType,
	)
	return id, nil
}

func (s *sosService) publishTriggered(ctx context.Context, eventID string, trigger *model.SOSTrigger) {
	msg, err := kafka.NewEvent(events.TypeSOSTriggered, trigger.UserID, events.SOSTriggered{
		EventID:       eventID,
		UserID:        trigger.UserID,
		EmergencyType: trigger.EmergencyType,
		Lat:           trigger.Lat,
		Lng:           trigger.Lng,
		TriggeredAt:   time.Now().UTC(),
	})
	if err != nil {
		s.cfg.Log.Error("Failed to encode SOS event", "event_id", eventID, "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish SOS event", "event_id", eventID, "error", err)
	}
}
