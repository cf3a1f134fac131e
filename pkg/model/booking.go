package model

import "time"

const (
	BookingBooked    = "booked"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking is one hospital appointment. Token is written exactly once at
// creation, from the doctor+date visit sequence, and never reassigned.
type Booking struct {
	ID       string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	UserID   string    `json:"user_id" bson:"user_id" validate:"required,mongodb"`
	DoctorID string    `json:"doctor_id" bson:"doctor_id" validate:"required,mongodb"`
	Date     time.Time `json:"date" bson:"date" validate:"required"`
	Token    int       `json:"token" bson:"token"`
	Status   string    `json:"status" bson:"status" validate:"omitempty,oneof=booked cancelled completed"`
}
