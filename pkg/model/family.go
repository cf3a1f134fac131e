package model

import "time"

type MedicalHistoryItem struct {
	Date *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Note string     `json:"note" bson:"note" validate:"required,max=500"`
}

type VaccinationItem struct {
	Name      string     `json:"name" bson:"name" validate:"required,max=100"`
	DueDate   *time.Time `json:"due_date,omitempty" bson:"due_date,omitempty"`
	Completed bool       `json:"completed" bson:"completed"`
}

type HealthUpdate struct {
	Date   *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Update string     `json:"update" bson:"update" validate:"required,max=500"`
}

type BloodSugarLog struct {
	Date      *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	ValueMgdl float64    `json:"value_mgdl" bson:"value_mgdl" validate:"required,gt=0"`
	Period    string     `json:"period" bson:"period" validate:"omitempty,oneof=fasting post-meal random"`
}

type MedicineReminder struct {
	Name   string   `json:"name" bson:"name" validate:"required,max=100"`
	Dosage string   `json:"dosage" bson:"dosage" validate:"required,max=100"`
	Time   string   `json:"time" bson:"time" validate:"required,len=5"` // HH:MM
	Days   []string `json:"days" bson:"days" validate:"omitempty,dive,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	Active bool     `json:"active" bson:"active"`
}

// DiaryAppointment is a free-form reminder inside a family profile, unrelated
// to the tokenized hospital booking flow.
type DiaryAppointment struct {
	Title    string    `json:"title" bson:"title" validate:"required,max=100"`
	Date     time.Time `json:"date" bson:"date" validate:"required"`
	Location string    `json:"location,omitempty" bson:"location,omitempty" validate:"omitempty,max=100"`
	Doctor   string    `json:"doctor,omitempty" bson:"doctor,omitempty" validate:"omitempty,max=100"`
}

// FamilyProfile is one member's health diary owned by an app user.
type FamilyProfile struct {
	ID                string               `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	UserID            string               `json:"user_id" bson:"user_id" validate:"required,mongodb"`
	PhotoURL          string               `json:"photo_url,omitempty" bson:"photo_url,omitempty" validate:"omitempty,url"`
	Name              string               `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Age               int                  `json:"age,omitempty" bson:"age,omitempty" validate:"omitempty,min=0,max=120"`
	BloodGroup        string               `json:"blood_group,omitempty" bson:"blood_group,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies         string               `json:"allergies,omitempty" bson:"allergies,omitempty" validate:"omitempty,max=500"`
	Conditions        string               `json:"conditions,omitempty" bson:"conditions,omitempty" validate:"omitempty,max=500"`
	MedicalHistory    []MedicalHistoryItem `json:"medical_history" bson:"medical_history"`
	Vaccinations      []VaccinationItem    `json:"vaccinations" bson:"vaccinations"`
	HealthUpdates     []HealthUpdate       `json:"health_updates" bson:"health_updates"`
	SugarLogs         []BloodSugarLog      `json:"sugar_logs" bson:"sugar_logs"`
	MedicineReminders []MedicineReminder   `json:"medicine_reminders" bson:"medicine_reminders"`
	Appointments      []DiaryAppointment   `json:"appointments" bson:"appointments"`
}
