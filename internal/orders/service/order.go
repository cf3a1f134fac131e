package service

import (
	"context"

	"github.com/google/uuid"

	"swasthya/internal/store"
	"swasthya/pkg/config"
	apperrors "swasthya/pkg/errors"
	"swasthya/pkg/model"
	"swasthya/pkg/validate"
)

type OrderService interface {
	Place(ctx context.Context, order *model.MedicineOrder) (*model.MedicineOrder, error)
	ListByUser(ctx context.Context, userID string) ([]store.Document, error)
}

type orderService struct {
	gateway   store.Gateway
	validator *validate.Validator
	cfg       *config.Config
}

func NewOrderService(gateway store.Gateway, cfg *config.Config) OrderService {
	return &orderService{
		gateway:   gateway,
		validator: validate.New(),
		cfg:       cfg,
	}
}

func (s *orderService) Place(ctx context.Context, order *model.MedicineOrder) (*model.MedicineOrder, error) {
	if order.Status == "" {
		order.Status = model.OrderPlaced
	}
	order.TrackingCode = uuid.NewString()

	if err := s.validator.Struct(order); err != nil {
		s.cfg.Log.Warn("Order validation failed", "error", err)
		return nil, apperrors.Validation("Order validation failed", map[string]any{"error": err.Error()})
	}

	id, err := s.gateway.Insert(ctx, store.CollectionOrders, order)
	if err != nil {
		s.cfg.Log.Error("Failed to place order", "error", err)
		return nil, apperrors.Internal("Failed to place order", err)
	}
	order.ID = id

	s.cfg.Log.Info("Order placed", "id", id, "user_id", order.UserID, "tracking_code", order.TrackingCode)
	return order, nil
}

func (s *orderService) ListByUser(ctx context.Context, userID string) ([]store.Document, error) {
	filter := store.Document{}
	if userID != "" {
		filter["user_id"] = userID
	}

	orders, err := s.gateway.Find(ctx, store.CollectionOrders, filter, int64(config.DefaultPaginationLimit))
	if err != nil {
		s.cfg.Log.Error("Failed to list orders", "error", err)
		return nil, apperrors.Internal("Failed to list orders", err)
	}
	return orders, nil
}
