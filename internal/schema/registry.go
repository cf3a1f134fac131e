// Package schema exposes an explicitly enumerated description of the API's
// entities. The registry is maintained by hand next to the models so clients
// get a stable contract rather than whatever reflection happens to produce.
package schema

// FieldSpec describes one field of an entity as clients see it on the wire.
type FieldSpec struct {
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Enum     []string `json:"enum,omitempty"`
	Items    string   `json:"items,omitempty"`
}

// EntitySpec maps field names to their specs.
type EntitySpec map[string]FieldSpec

var bloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Registry enumerates every persisted entity. Keep in lockstep with pkg/model.
var Registry = map[string]EntitySpec{
	"user": {
		"name":         {Type: "string", Required: true},
		"email":        {Type: "string"},
		"phone":        {Type: "string"},
		"location":     {Type: "string"},
		"age":          {Type: "integer"},
		"blood_group":  {Type: "string", Enum: bloodGroups},
		"karma_points": {Type: "integer"},
	},
	"sos_setting": {
		"user_id":            {Type: "string", Required: true},
		"contacts":           {Type: "array", Items: "emergency_contact"},
		"preferred_hospital": {Type: "string"},
	},
	"sos_trigger": {
		"user_id":        {Type: "string", Required: true},
		"emergency_type": {Type: "string", Required: true},
		"lat":            {Type: "number"},
		"lng":            {Type: "number"},
	},
	"family_profile": {
		"user_id":            {Type: "string", Required: true},
		"name":               {Type: "string", Required: true},
		"photo_url":          {Type: "string"},
		"age":                {Type: "integer"},
		"blood_group":        {Type: "string", Enum: bloodGroups},
		"allergies":          {Type: "string"},
		"conditions":         {Type: "string"},
		"medical_history":    {Type: "array", Items: "medical_history_item"},
		"vaccinations":       {Type: "array", Items: "vaccination_item"},
		"health_updates":     {Type: "array", Items: "health_update"},
		"sugar_logs":         {Type: "array", Items: "blood_sugar_log"},
		"medicine_reminders": {Type: "array", Items: "medicine_reminder"},
		"appointments":       {Type: "array", Items: "diary_appointment"},
	},
	"blood_request": {
		"requester_id": {Type: "string", Required: true},
		"location":     {Type: "string", Required: true},
		"blood_group":  {Type: "string", Required: true, Enum: bloodGroups},
		"units_needed": {Type: "integer", Required: true},
		"urgency":      {Type: "string", Enum: []string{"low", "medium", "high"}},
		"note":         {Type: "string"},
		"status":       {Type: "string", Enum: []string{"open", "matched", "fulfilled", "cancelled"}},
	},
	"health_notice": {
		"title":     {Type: "string", Required: true},
		"body":      {Type: "string", Required: true},
		"city":      {Type: "string"},
		"region":    {Type: "string"},
		"tags":      {Type: "array", Items: "string"},
		"starts_at": {Type: "datetime"},
		"ends_at":   {Type: "datetime"},
	},
	"medicine_order": {
		"user_id":         {Type: "string", Required: true},
		"items":           {Type: "array", Required: true, Items: "medicine_item"},
		"address":         {Type: "string", Required: true},
		"delivery_charge": {Type: "number"},
		"status":          {Type: "string", Enum: []string{"placed", "confirmed", "out-for-delivery", "delivered", "cancelled"}},
		"tracking_code":   {Type: "string"},
	},
	"hospital": {
		"name":        {Type: "string", Required: true},
		"city":        {Type: "string"},
		"departments": {Type: "array", Items: "string"},
	},
	"doctor": {
		"name":             {Type: "string", Required: true},
		"department":       {Type: "string", Required: true},
		"hospital_id":      {Type: "string", Required: true},
		"experience_years": {Type: "integer"},
	},
	"booking": {
		"user_id":   {Type: "string", Required: true},
		"doctor_id": {Type: "string", Required: true},
		"date":      {Type: "datetime", Required: true},
		"token":     {Type: "integer"},
		"status":    {Type: "string", Enum: []string{"booked", "cancelled", "completed"}},
	},
	"token_feed": {
		"doctor_id":     {Type: "string", Required: true},
		"date":          {Type: "string", Required: true},
		"current_token": {Type: "integer"},
		"last_token":    {Type: "integer"},
	},
}
