package events

import "time"

// Event types published to the notifications topic. Delivery (SMS, push,
// ambulance dispatch) is owned by downstream consumers.
const (
	TypeSOSTriggered        = "sos.triggered"
	TypeBloodRequestCreated = "blood.request.created"
	TypeBookingCreated      = "booking.created"
)

type SOSTriggered struct {
	EventID       string    `json:"event_id"`
	UserID        string    `json:"user_id"`
	EmergencyType string    `json:"emergency_type"`
	Lat           *float64  `json:"lat,omitempty"`
	Lng           *float64  `json:"lng,omitempty"`
	TriggeredAt   time.Time `json:"triggered_at"`
}

type BloodRequestCreated struct {
	RequestID   string `json:"request_id"`
	RequesterID string `json:"requester_id"`
	Location    string `json:"location"`
	BloodGroup  string `json:"blood_group"`
	UnitsNeeded int    `json:"units_needed"`
	Urgency     string `json:"urgency"`
}

type BookingCreated struct {
	BookingID string    `json:"booking_id"`
	UserID    string    `json:"user_id"`
	DoctorID  string    `json:"doctor_id"`
	Date      time.Time `json:"date"`
	Token     int       `json:"token"`
}
