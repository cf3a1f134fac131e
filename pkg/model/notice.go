package model

import "time"

// HealthNotice is a public advisory (outbreaks, vaccination drives) scoped
// to a city or region.
type HealthNotice struct {
	ID       string     `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Title    string     `json:"title" bson:"title" validate:"required,min=2,max=200"`
	Body     string     `json:"body" bson:"body" validate:"required,max=5000"`
	City     string     `json:"city,omitempty" bson:"city,omitempty" validate:"omitempty,max=100"`
	Region   string     `json:"region,omitempty" bson:"region,omitempty" validate:"omitempty,max=100"`
	Tags     []string   `json:"tags" bson:"tags" validate:"omitempty,dive,max=50"`
	StartsAt *time.Time `json:"starts_at,omitempty" bson:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty" bson:"ends_at,omitempty"`
}
