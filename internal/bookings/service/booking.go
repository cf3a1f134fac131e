package service

import (
	"context"
	"errors"

	"swasthya/internal/bookings/validator"
	"swasthya/internal/events"
	"swasthya/internal/store"
	tokenservice "swasthya/internal/tokens/service"
	"swasthya/pkg/config"
	apperrors "swasthya/pkg/errors"
	"swasthya/pkg/kafka"
	"swasthya/pkg/model"
)

// Receipt is what a successful booking returns to the patient: the new
// record's identifier and the queue position for the day.
type Receipt struct {
	ID    string `json:"id"`
	Token int    `json:"token"`
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) (*Receipt, error)
	GetByID(ctx context.Context, id string) (store.Document, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]store.Document, error)
}

type bookingService struct {
	gateway   store.Gateway
	tokens    tokenservice.TokenService
	validator *validator.BookingValidator
	publisher kafka.Publisher
	cfg       *config.Config
}

func NewBookingService(
	gateway store.Gateway,
	tokens tokenservice.TokenService,
	bookingValidator *validator.BookingValidator,
	publisher kafka.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		gateway:   gateway,
		tokens:    tokens,
		validator: bookingValidator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create validates the doctor reference, draws the next token from the
// doctor+date sequence, and persists the booking carrying it. Validation
// happens before any mutation so a rejected request leaves no partial state.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (*Receipt, error) {
	if err := s.validator.ValidateDoctorRef(booking.DoctorID); err != nil {
		s.cfg.Log.Warn("Booking rejected: malformed doctor reference", "doctor_id", booking.DoctorID)
		return nil, apperrors.InvalidInput("Invalid doctor id")
	}

	if booking.Status == "" {
		booking.Status = model.BookingBooked
	}
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	dateKey := tokenservice.DateKey(booking.Date)
	token, err := s.tokens.AllocateNext(ctx, booking.DoctorID, dateKey)
	if err != nil {
		s.cfg.Log.Error("Token allocation failed",
			"doctor_id", booking.DoctorID,
			"date", dateKey,
			"error", err,
		)
		return nil, err
	}
	booking.Token = token

	id, err := s.gateway.Insert(ctx, store.CollectionBookings, booking)
	if err != nil {
		s.cfg.Log.Error("Failed to persist booking",
			"doctor_id", booking.DoctorID,
			"token", token,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to create booking", err)
	}
	booking.ID = id

	s.publishCreated(ctx, booking)

	s.cfg.Log.Info("Booking created",
		"id", id,
		"user_id", booking.UserID,
		"doctor_id", booking.DoctorID,
		"date", dateKey,
		"token", token,
	)
	return &Receipt{ID: id, Token: token}, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (store.Document, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	doc, err := s.gateway.FindByID(ctx, store.CollectionBookings, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, store.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return doc, nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID string, limit int64) ([]store.Document, error) {
	filter := store.Document{}
	if userID != "" {
		filter["user_id"] = userID
	}

	docs, err := s.gateway.Find(ctx, store.CollectionBookings, filter, limit)
	if err != nil {
		return nil, apperrors.Internal("Failed to list bookings", err)
	}
	return docs, nil
}

// Best effort: the booking stands even when the event pipeline is down.
func (s *bookingService) publishCreated(ctx context.Context, booking *model.Booking) {
	msg, err := kafka.NewEvent(events.TypeBookingCreated, booking.DoctorID, events.BookingCreated{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		DoctorID:  booking.DoctorID,
		Date:      booking.Date,
		Token:     booking.Token,
	})
	if err != nil {
		s.cfg.Log.Error("Failed to encode booking event", "booking_id", booking.ID, "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event", "booking_id", booking.ID, "error", err)
	}
}
