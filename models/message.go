package models

import "time"

// BroadcastRecipient is the sentinel recipient id for messages addressed
// to every user.
const BroadcastRecipient = "all_users"

// Message is an immutable message between a user and staff. When OrderID
// is set the message belongs to that order's private thread; otherwise it
// is a direct or broadcast message.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	Text        string    `json:"text"`
	Timestamp   time.Time `json:"timestamp"`
	OrderID     string    `json:"orderId,omitempty"`
}

// IsBroadcast reports whether the message is addressed to all users.
func (m Message) IsBroadcast() bool {
	return m.RecipientID == BroadcastRecipient
}

// VisibleTo reports whether the given user should see this message.
func (m Message) VisibleTo(userID string) bool {
	return m.IsBroadcast() || m.SenderID == userID || m.RecipientID == userID
}
