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

// DirectoryService maintains the hospital and doctor catalogue the booking
// flow points into.
type DirectoryService interface {
	CreateHospital(ctx context.Context, hospital *model.Hospital) (string, error)
	ListHospitals(ctx context.Context, city string) ([]store.Document, error)
	CreateDoctor(ctx context.Context, doctor *model.Doctor) (string, error)
	ListDoctors(ctx context.Context, hospitalID, department string) ([]store.Document, error)
}

type directoryService struct {
	gateway   store.Gateway
	validator *validate.Validator
	cfg       *config.Config
}

func NewDirectoryService(gateway store.Gateway, cfg *config.Config) DirectoryService {
	return &directoryService{
		gateway:   gateway,
		validator: validate.New(),
		cfg:       cfg,
	}
}

func (s *directoryService) CreateHospital(ctx context.Context, hospital *model.Hospital) (string, error) {
	hospital.Name = sanitizer.TrimAndNormalize(hospital.Name)
	hospital.City = sanitizer.NormalizeCity(hospital.City)

	if err := s.validator.Struct(hospital); err != nil {
		s.cfg.Log.Warn("Hospital validation failed", "error", err)
		return "", apperrors.Validation("Hospital validation failed", map[string]any{"error": err.Error()})
	}

	if hospital.Departments == nil {
		hospital.Departments = []string{}
	}

	id, err := s.gateway.Insert(ctx, store.CollectionHospitals, hospital)
	if err != nil {
		s.cfg.Log.Error("Failed to create hospital", "error", err)
		return "", apperrors.Internal("Failed to create hospital", err)
	}

	s.cfg.Log.Info("Hospital created", "id", id, "city", hospital.City)
	return id, nil
}

func (s *directoryService) ListHospitals(ctx context.Context, city string) ([]store.Document, error) {
	filter := store.Document{}
	if city != "" {
		filter["city"] = sanitizer.NormalizeCity(city)
	}

	hospitals, err := s.gateway.Find(ctx, store.CollectionHospitals, filter, int64(config.DefaultPaginationLimit))
	if err != nil {
		s.cfg.Log.Error("Failed to list hospitals", "error", err)
		return nil, apperrors.Internal("Failed to list hospitals", err)
	}
	return hospitals, nil
}

func (s *directoryService) CreateDoctor(ctx context.Context, doctor *model.Doctor) (string, error) {
	doctor.Name = sanitizer.NormalizeName(doctor.Name)
	doctor.Department = sanitizer.TrimAndNormalize(doctor.Department)

	if err := s.validator.Struct(doctor); err != nil {
		s.cfg.Log.Warn("Doctor validation failed", "error", err)
		return "", apperrors.Validation("Doctor validation failed", map[string]any{"error": err.Error()})
	}

	id, err := s.gateway.Insert(ctx, store.CollectionDoctors, doctor)
	if err != nil {
		s.cfg.Log.Error("Failed to create doctor", "error", err)
		return "", apperrors.Internal("Failed to create doctor", err)
	}

	s.cfg.Log.Info("Doctor created", "id", id, "department", doctor.Department)
	return id, nil
}

func (s *directoryService) ListDoctors(ctx context.Context, hospitalID, department string) ([]store.Document, error) {
	filter := store.Document{}
	if hospitalID != "" {
		filter["hospital_id"] = hospitalID
	}
	if department != "" {
		filter["department"] = sanitizer.TrimAndNormalize(department)
	}

	doctors, err := s.gateway.Find(ctx, store.CollectionDoctors, filter, int64(config.DefaultPaginationLimit))
	if err != nil {
		s.cfg.Log.Error("Failed to list doctors", "error", err)
		return nil, apperrors.Internal("Failed to list doctors", err)
	}
	return doctors, nil
}
