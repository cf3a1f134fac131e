package model

// TokenFeed is the visit-queue counter for one doctor on one calendar day.
// LastToken only ever grows, by one per booking. CurrentToken is advanced by
// hospital staff and carries no ordering constraint of its own.
type TokenFeed struct {
	Key          string `json:"key" bson:"_key"`
	DoctorID     string `json:"doctor_id" bson:"doctor_id"`
	Date         string `json:"date" bson:"date"` // YYYY-MM-DD
	LastToken    int    `json:"last_token" bson:"last_token"`
	CurrentToken int    `json:"current_token" bson:"current_token"`
}

// TokenUpdate sets the currently-served token for a doctor+date queue.
type TokenUpdate struct {
	DoctorID     string `json:"doctor_id" validate:"required,mongodb"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	CurrentToken int    `json:"current_token" validate:"min=0"`
}

// FeedStatus is the read-side view served to waiting-room displays. A queue
// with no bookings yet reports zeroes rather than an error.
type FeedStatus struct {
	DoctorID     string `json:"doctor_id"`
	Date         string `json:"date"`
	LastToken    int    `json:"last_token"`
	CurrentToken int    `json:"current_token"`
}
