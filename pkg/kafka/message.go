package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Message is a single event destined for the notifications pipeline.
type Message struct {
	Key       string            // partition key (e.g. user id, doctor id)
	Value     []byte            // JSON-encoded payload
	Headers   map[string]string // event metadata
	Timestamp time.Time
}

// Header keys shared with downstream consumers
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

// NewEvent builds a message with the standard headers populated.
func NewEvent(eventType, key string, payload any) (Message, error) {
	value, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}

	now := time.Now().UTC()
	return Message{
		Key:       key,
		Value:     value,
		Timestamp: now,
		Headers: map[string]string{
			HeaderEventID:   uuid.New().String(),
			HeaderEventType: eventType,
			HeaderTimestamp: now.Format(time.RFC3339),
		},
	}, nil
}

func (m *Message) DecodeValue(v any) error {
	return json.Unmarshal(m.Value, v)
}
