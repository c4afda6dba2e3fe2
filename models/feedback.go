package models

import "time"

// Feedback is an immutable note a customer leaves about the service.
type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
