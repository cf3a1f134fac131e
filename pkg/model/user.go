package model

import "time"

// AppUser is the core account record shared by the blood board and the app itself.
type AppUser struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name        string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email       string    `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,max=20"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty" validate:"omitempty,max=100"`
	Age         int       `json:"age,omitempty" bson:"age,omitempty" validate:"omitempty,min=0,max=120"`
	BloodGroup  string    `json:"blood_group,omitempty" bson:"blood_group,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	KarmaPoints int       `json:"karma_points" bson:"karma_points"`
	CreatedAt   time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// KarmaAward credits a donor after a fulfilled blood request.
type KarmaAward struct {
	UserID string `json:"user_id" validate:"required,mongodb"`
	Points int    `json:"points" validate:"required,min=1,max=1000"`
}
