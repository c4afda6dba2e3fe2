package models

import (
	"fmt"
	"time"
)

// Sex is the customer-provided sex for the garment model.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// SleeveType describes the sleeve style of the garment.
type SleeveType string

const (
	SleeveFull SleeveType = "full"
	SleeveHalf SleeveType = "half"
	SleeveNone SleeveType = "none"
)

// Measurements is the structured body-measurement input captured at the
// first wizard stage. Lengths are in centimeters.
type Measurements struct {
	DesignFor   string     `json:"designFor"`
	Age         int        `json:"age"`
	Sex         Sex        `json:"sex"`
	Height      float64    `json:"height"`
	Shoulder    float64    `json:"shoulder"`
	Chest       float64    `json:"chest"`
	Waist       float64    `json:"waist"`
	DressLength float64    `json:"dressLength"`
	SleeveType  SleeveType `json:"sleeveType"`
	HandRound   float64    `json:"handRound"`
	HandLength  float64    `json:"handLength"`
}

// Validate checks that every numeric field is non-negative.
func (m Measurements) Validate() error {
	if m.Age < 0 {
		return fmt.Errorf("age must be non-negative")
	}
	numeric := map[string]float64{
		"height":      m.Height,
		"shoulder":    m.Shoulder,
		"chest":       m.Chest,
		"waist":       m.Waist,
		"dressLength": m.DressLength,
		"handRound":   m.HandRound,
		"handLength":  m.HandLength,
	}
	for name, v := range numeric {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative", name)
		}
	}
	return nil
}

// OrderStatus is the closed set of fulfillment states an order moves
// through after submission.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusApproved   OrderStatus = "approved"
	StatusDenied     OrderStatus = "denied"
	StatusInProgress OrderStatus = "in_progress"
	StatusCompleted  OrderStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// statusTransitions is the staff-driven path an order may take. Denied and
// completed are terminal. Each allowed transition carries the fixed
// human-readable message appended to the order's status history.
var statusTransitions = map[OrderStatus]map[OrderStatus]string{
	StatusPending: {
		StatusApproved: "Order approved by admin.",
		StatusDenied:   "Order denied by admin.",
	},
	StatusApproved: {
		StatusInProgress: "Work has started on the order.",
	},
	StatusInProgress: {
		StatusCompleted: "Order completed and ready for dispatch.",
	},
}

// TransitionTo returns the status-history message for moving from s to
// next, and whether that move is allowed.
func (s OrderStatus) TransitionTo(next OrderStatus) (string, bool) {
	msg, ok := statusTransitions[s][next]
	return msg, ok
}

// StatusUpdate is one immutable entry in an order's status history.
type StatusUpdate struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// InitialStatusMessage seeds the status history of every new order.
const InitialStatusMessage = "Order placed by customer."

// Order is a submitted commission. Selected fabrics and design are
// snapshots taken at submission time, not live references, and
// StatusUpdates is append-only with at least the seed entry.
type Order struct {
	ID               string         `json:"id"`
	UserID           string         `json:"userId"`
	Measurements     Measurements   `json:"measurements"`
	SelectedFabrics  []Fabric       `json:"selectedFabrics"`
	SelectedDesign   Design         `json:"selectedDesign"`
	GeneratedDesigns []string       `json:"generatedDesigns"`
	FinalChoiceURL   string         `json:"finalChoiceUrl,omitempty"`
	Status           OrderStatus    `json:"status"`
	CreatedAt        time.Time      `json:"createdAt"`
	StatusUpdates    []StatusUpdate `json:"statusUpdates"`
}
