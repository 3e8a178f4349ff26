package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

// Routing keys of the events published after a successful write.
const (
	EventDailyDataSaved      = "daily_data.saved"
	EventMedicalHistoryAdded = "medical_history.added"
)

// EventPublisher publishes a message body under a routing key.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// Recorder counts successful writes.
type Recorder interface {
	DailyDataSaved(created bool)
	MedicalHistoryAdded()
}

// HealthEvent is the message body published for every stored record.
type HealthEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	UserID     uint      `json:"userId"`
	RecordID   uint      `json:"recordId"`
	Date       string    `json:"date,omitempty"`
	Created    bool      `json:"created"`
	OccurredAt time.Time `json:"occurredAt"`
}

// publishEvent sends the event if a publisher is configured. Failures are
// logged and never fail the write that triggered them.
func publishEvent(publisher EventPublisher, event HealthEvent) {
	if publisher == nil {
		return
	}
	event.ID = uuid.New().String()
	event.OccurredAt = time.Now().UTC()

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event.Type, err)
		return
	}
	if err := publisher.Publish(event.Type, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for user %d: %v", event.Type, event.UserID, err)
	}
}
