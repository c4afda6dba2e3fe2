package store

import (
	"time"

	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/storage"
)

// AddMessage appends a new message, assigning a fresh id and stamping the
// send time when the caller left it zero. Messages are append-only.
func (s *Store) AddMessage(message models.Message) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message.ID = s.newID()
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}
	next := append(copyMessages(s.messages), message)
	if err := s.persist(storage.KeyMessages, next); err != nil {
		return models.Message{}, err
	}
	s.messages = next
	return message, nil
}

// ListMessages returns all messages in insertion order.
func (s *Store) ListMessages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMessages(s.messages)
}

// ListMessagesForUser returns the messages visible to the given user:
// broadcasts plus anything they sent or received.
func (s *Store) ListMessagesForUser(userID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Message
	for _, m := range s.messages {
		if m.VisibleTo(userID) {
			out = append(out, m)
		}
	}
	return out
}

// ListMessagesForOrder returns the private thread of one order.
func (s *Store) ListMessagesForOrder(orderID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Message
	for _, m := range s.messages {
		if m.OrderID == orderID {
			out = append(out, m)
		}
	}
	return out
}

// AddFeedback appends a new feedback entry, assigning a fresh id and
// stamping the time when the caller left it zero.
func (s *Store) AddFeedback(fb models.Feedback) (models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fb.ID = s.newID()
	if fb.Timestamp.IsZero() {
		fb.Timestamp = time.Now().UTC()
	}
	next := append(copyFeedback(s.feedback), fb)
	if err := s.persist(storage.KeyFeedback, next); err != nil {
		return models.Feedback{}, err
	}
	s.feedback = next
	return fb, nil
}

// ListFeedback returns all feedback in insertion order.
func (s *Store) ListFeedback() []models.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyFeedback(s.feedback)
}

func copyMessages(messages []models.Message) []models.Message {
	out := make([]models.Message, len(messages))
	copy(out, messages)
	return out
}

func copyFeedback(feedback []models.Feedback) []models.Feedback {
	out := make([]models.Feedback, len(feedback))
	copy(out, feedback)
	return out
}
