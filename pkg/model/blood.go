package model

const (
	BloodRequestOpen      = "open"
	BloodRequestMatched   = "matched"
	BloodRequestFulfilled = "fulfilled"
	BloodRequestCancelled = "cancelled"
)

// BloodRequest is one post on the donation board.
type BloodRequest struct {
	ID          string `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	RequesterID string `json:"requester_id" bson:"requester_id" validate:"required,mongodb"`
	Location    string `json:"location" bson:"location" validate:"required,max=100"`
	BloodGroup  string `json:"blood_group" bson:"blood_group" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	UnitsNeeded int    `json:"units_needed" bson:"units_needed" validate:"required,min=1,max=20"`
	Urgency     string `json:"urgency" bson:"urgency" validate:"omitempty,oneof=low medium high"`
	Note        string `json:"note,omitempty" bson:"note,omitempty" validate:"omitempty,max=500"`
	Status      string `json:"status" bson:"status" validate:"omitempty,oneof=open matched fulfilled cancelled"`
}
