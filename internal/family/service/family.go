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

type FamilyService interface {
	CreateProfile(ctx context.Context, profile *model.FamilyProfile) (string, error)
	ListProfiles(ctx context.Context, userID string) ([]store.Document, error)
	AddVaccination(ctx context.Context, profileID string, item *model.VaccinationItem) error
	AddSugarLog(ctx context.Context, profileID string, entry *model.BloodSugarLog) error
	AddReminder(ctx context.Context, profileID string, reminder *model.MedicineReminder) error
	AddAppointment(ctx context.Context, profileID string, appt *model.DiaryAppointment) error
}

type familyService struct {
	gateway   store.Gateway
	validator *validate.Validator
	cfg       *config.Config
}

func NewFamilyService(gateway store.Gateway, cfg *config.Config) FamilyService {
	return &familyService{
		gateway:   gateway,
		validator: validate.New(),
		cfg:       cfg,
	}
}

func (s *familyService) CreateProfile(ctx context.Context, profile *model.FamilyProfile) (string, error) {
	profile.Name = sanitizer.NormalizeName(profile.Name)
	profile.BloodGroup = sanitizer.NormalizeBloodGroup(profile.BloodGroup)

	if err := s.validator.Struct(profile); err != nil {
		s.cfg.Log.Warn("Family profile validation failed", "error", err)
		return "", apperrors.Validation("Family profile validation failed", map[string]any{"error": err.Error()})
	}

	// Diary arrays always start present so later pushes never hit a
	// missing field.
	if profile.MedicalHistory == nil {
		profile.MedicalHistory = []model.MedicalHistoryItem{}
	}
	if profile.Vaccinations == nil {
		profile.Vaccinations = []model.VaccinationItem{}
	}
	if profile.HealthUpdates == nil {
		profile.HealthUpdates = []model.HealthUpdate{}
	}
	if profile.SugarLogs == nil {
		profile.SugarLogs = []model.BloodSugarLog{}
	}
	if profile.MedicineReminders == nil {
		profile.MedicineReminders = []model.MedicineReminder{}
	}
	if profile.Appointments == nil {
		profile.Appointments = []model.DiaryAppointment{}
	}

	id, err := s.gateway.Insert(ctx, store.CollectionFamilyProfiles, profile)
	if err != nil {
		s.cfg.Log.Error("Failed to create family profile", "error", err)
		return "", apperrors.Internal("Failed to create family profile", err)
	}

	s.cfg.Log.Info("Family profile created", "id", id, "user_id", profile.UserID)
	return id, nil
}

func (s *familyService) ListProfiles(ctx context.Context, userID string) ([]store.Document, error) {
	filter := store.Document{}
	if userID != "" {
		filter["user_id"] = userID
	}

	profiles, err := s.gateway.Find(ctx, store.CollectionFamilyProfiles, filter, int64(config.DefaultPaginationLimit))
	if err != nil {
		s.cfg.Log.Error("Failed to list family profiles", "error", err)
		return nil, apperrors.Internal("Failed to list family profiles", err)
	}
	return profiles, nil
}

func (s *familyService) AddVaccination(ctx context.Context, profileID string, item *model.VaccinationItem) error {
	if err := s.validator.Struct(item); err != nil {
		return apperrors.Validation("Vaccination validation failed", map[string]any{"error": err.Error()})
	}
	return s.push(ctx, profileID, "vaccinations", item)
}

func (s *familyService) AddSugarLog(ctx context.Context, profileID string, entry *model.BloodSugarLog) error {
	if err := s.validator.Struct(entry); err != nil {
		return apperrors.Validation("Sugar log validation failed", map[string]any{"error": err.Error()})
	}
	return s.push(ctx, profileID, "sugar_logs", entry)
}

func (s *familyService) AddReminder(ctx context.Context, profileID string, reminder *model.MedicineReminder) error {
	if err := s.validator.Struct(reminder); err != nil {
		return apperrors.Validation("Reminder validation failed", map[string]any{"error": err.Error()})
	}
	return s.push(ctx, profileID, "medicine_reminders", reminder)
}

func (s *familyService) AddAppointment(ctx context.Context, profileID string, appt *model.DiaryAppointment) error {
	if err := s.validator.Struct(appt); err != nil {
		return apperrors.Validation("Appointment validation failed", map[string]any{"error": err.Error()})
	}
	return s.push(ctx, profileID, "appointments", appt)
}

func (s *familyService) push(ctx context.Context, profileID, field string, value any) error {
	err := s.gateway.Push(ctx, store.CollectionFamilyProfiles, profileID, field, value)
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid profile id")
		}
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFoundWithID("Family profile", profileID)
		}
		s.cfg.Log.Error("Failed to update family profile", "id", profileID, "field", field, "error", err)
		return apperrors.Internal("Failed to update family profile", err)
	}

	s.cfg.Log.Info("Family profile updated", "id", profileID, "field", field)
	return nil
}
