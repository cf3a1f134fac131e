package model

type Hospital struct {
	ID          string   `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name        string   `json:"name" bson:"name" validate:"required,min=2,max=200"`
	City        string   `json:"city,omitempty" bson:"city,omitempty" validate:"omitempty,max=100"`
	Departments []string `json:"departments" bson:"departments" validate:"omitempty,dive,max=100"`
}

type Doctor struct {
	ID              string `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name            string `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Department      string `json:"department" bson:"department" validate:"required,max=100"`
	HospitalID      string `json:"hospital_id" bson:"hospital_id" validate:"required,mongodb"`
	ExperienceYears int    `json:"experience_years,omitempty" bson:"experience_years,omitempty" validate:"omitempty,min=0,max=80"`
}
