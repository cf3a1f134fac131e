package model

const SOSStatusSent = "sent"

type EmergencyContact struct {
	Name     string `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone" bson:"phone" validate:"required,max=20"`
	Relation string `json:"relation,omitempty" bson:"relation,omitempty" validate:"omitempty,max=50"`
}

// SOSSetting holds a user's emergency contacts; upserted by user id.
type SOSSetting struct {
	UserID            string             `json:"user_id" bson:"user_id" validate:"required,mongodb"`
	Contacts          []EmergencyContact `json:"contacts" bson:"contacts" validate:"omitempty,dive"`
	PreferredHospital string             `json:"preferred_hospital,omitempty" bson:"preferred_hospital,omitempty" validate:"omitempty,max=100"`
}

// SOSTrigger is the panic-button payload. Dispatch to SMS/ambulance providers
// is externally owned; the service records the event and emits it downstream.
type SOSTrigger struct {
	UserID        string   `json:"user_id" bson:"user_id" validate:"required,mongodb"`
	EmergencyType string   `json:"emergency_type" bson:"emergency_type" validate:"required,max=50"`
	Lat           *float64 `json:"lat,omitempty" bson:"lat,omitempty" validate:"omitempty,latitude"`
	Lng           *float64 `json:"lng,omitempty" bson:"lng,omitempty" validate:"omitempty,longitude"`
}
