package service

import (
	"context"
	"io"
	"testing"

	"swasthya/internal/store"
	"swasthya/pkg/config"
	apperrors "swasthya/pkg/errors"
	"swasthya/pkg/kafka"
	"swasthya/pkg/logger"
	"swasthya/pkg/model"
)

const testUserID = "64f1b2c3d4e5f6a7b8c9d0e1"

func testConfig() *config.Config {
	return &config.Config{Log: logger.New(logger.Config{Output: io.Discard})}
}

type mockGateway struct {
	insertFn func(ctx context.Context, collection string, doc any) (string, error)
	upsertFn func(ctx context.Context, collection string, filter, patch store.Document) (store.Document, error)
}

func (m *mockGateway) Insert(ctx context.Context, collection string, doc any) (string, error) {
	return m.insertFn(ctx, collection, doc)
}

func (m *mockGateway) Find(ctx context.Context, collection string, filter store.Document, limit int64) ([]store.Document, error) {
	return nil, nil
}

func (m *mockGateway) FindByID(ctx context.Context, collection, id string) (store.Document, error) {
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
	return m.upsertFn(ctx, collection, filter, patch)
}

func (m *mockGateway) IncrementField(ctx context.Context, collection, id, field string, delta int) error {
	return nil
}

type recordingPublisher struct {
	messages []kafka.Message
}

func (r *recordingPublisher) Publish(ctx context.Context, msg kafka.Message) error {
	r.messages = append(r.messages, msg)
	return nil
}

func (r *recordingPublisher) Close() error { return nil }

func TestSaveSettingsUpsertsByUser(t *testing.T) {
	var capturedFilter store.Document
	gateway := &mockGateway{
		upsertFn: func(ctx context.Context, collection string, filter, patch store.Document) (store.Document, error) {
			capturedFilter = filter
			patch["_id"] = "64f1b2c3d4e5f6a7b8c9d0cc"
			return patch, nil
		},
	}
	svc := NewSOSService(gateway, &recordingPublisher{}, testConfig())

	settings := &model.SOSSetting{
		UserID:   testUserID,
		Contacts: []model.EmergencyContact{{Name: "Mita", Phone: "+8801700000000"}},
	}
	id, err := svc.SaveSettings(context.Background(), settings)
	if err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	if id == "" {
		t.Error("expected the settings document ID")
	}
	if capturedFilter["user_id"] != testUserID {
		t.Errorf("upsert filter = %v, want user_id %s", capturedFilter, testUserID)
	}
}

func TestSaveSettingsRejectsInvalid(t *testing.T) {
	gateway := &mockGateway{
		upsertFn: func(ctx context.Context, collection string, filter, patch store.Document) (store.Document, error) {
			t.Fatal("invalid settings must not be persisted")
			return nil, nil
		},
	}
	svc := NewSOSService(gateway, &recordingPublisher{}, testConfig())

	_, err := svc.SaveSettings(context.Background(), &model.SOSSetting{UserID: "garbage"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeValidation {
		t.Errorf("code = %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
}

func TestTriggerPersistsAndPublishes(t *testing.T) {
	var inserted store.Document
	gateway := &mockGateway{
		insertFn: func(ctx context.Context, collection string, doc any) (string, error) {
			inserted = doc.(store.Document)
			if collection != store.CollectionSOSEvents {
				t.Errorf("collection = %s, want %s", collection, store.CollectionSOSEvents)
			}
			return "64f1b2c3d4e5f6a7b8c9d0dd", nil
		},
	}
	publisher := &recordingPublisher{}
	svc := NewSOSService(gateway, publisher, testConfig())

	trigger := &model.SOSTrigger{UserID: testUserID, EmergencyType: "accident"}
	id, err := svc.Trigger(context.Background(), trigger)
	if err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	if id == "" {
		t.Error("expected an event ID")
	}

	if inserted["status"] != model.SOSStatusSent {
		t.Errorf("status = %v, want %s", inserted["status"], model.SOSStatusSent)
	}
	if len(publisher.messages) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(publisher.messages))
	}
	if publisher.messages[0].Key != testUserID {
		t.Errorf("event key = %q, want the user id", publisher.messages[0].Key)
	}
}
