package model

const (
	OrderPlaced         = "placed"
	OrderConfirmed      = "confirmed"
	OrderOutForDelivery = "out-for-delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"
)

type MedicineItem struct {
	Name     string `json:"name" bson:"name" validate:"required,max=100"`
	Quantity int    `json:"quantity" bson:"quantity" validate:"required,min=1,max=100"`
}

// MedicineOrder is a home-delivery order; payment is settled out of band.
type MedicineOrder struct {
	ID             string         `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	UserID         string         `json:"user_id" bson:"user_id" validate:"required,mongodb"`
	Items          []MedicineItem `json:"items" bson:"items" validate:"required,min=1,dive"`
	Address        string         `json:"address" bson:"address" validate:"required,max=300"`
	DeliveryCharge float64        `json:"delivery_charge" bson:"delivery_charge" validate:"min=0"`
	Status         string         `json:"status" bson:"status" validate:"omitempty,oneof=placed confirmed out-for-delivery delivered cancelled"`
	TrackingCode   string         `json:"tracking_code,omitempty" bson:"tracking_code,omitempty"`
}
