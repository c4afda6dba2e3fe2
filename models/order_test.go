package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name            string
		from            OrderStatus
		to              OrderStatus
		expectedAllowed bool
		expectedMessage string
	}{
		{
			name:            "pending to approved",
			from:            StatusPending,
			to:              StatusApproved,
			expectedAllowed: true,
			expectedMessage: "Order approved by admin.",
		},
		{
			name:            "pending to denied",
			from:            StatusPending,
			to:              StatusDenied,
			expectedAllowed: true,
			expectedMessage: "Order denied by admin.",
		},
		{
			name:            "approved to in_progress",
			from:            StatusApproved,
			to:              StatusInProgress,
			expectedAllowed: true,
			expectedMessage: "Work has started on the order.",
		},
		{
			name:            "in_progress to completed",
			from:            StatusInProgress,
			to:              StatusCompleted,
			expectedAllowed: true,
			expectedMessage: "Order completed and ready for dispatch.",
		},
		{
			name:            "pending cannot skip to completed",
			from:            StatusPending,
			to:              StatusCompleted,
			expectedAllowed: false,
		},
		{
			name:            "pending cannot skip to in_progress",
			from:            StatusPending,
			to:              StatusInProgress,
			expectedAllowed: false,
		},
		{
			name:            "approved cannot go back to pending",
			from:            StatusApproved,
			to:              StatusPending,
			expectedAllowed: false,
		},
		{
			name:            "denied is terminal",
			from:            StatusDenied,
			to:              StatusApproved,
			expectedAllowed: false,
		},
		{
			name:            "completed is terminal",
			from:            StatusCompleted,
			to:              StatusInProgress,
			expectedAllowed: false,
		},
		{
			name:            "self transition is not allowed",
			from:            StatusPending,
			to:              StatusPending,
			expectedAllowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, allowed := tt.from.TransitionTo(tt.to)
			assert.Equal(t, tt.expectedAllowed, allowed)
			if tt.expectedAllowed {
				assert.Equal(t, tt.expectedMessage, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusApproved, StatusDenied, StatusInProgress, StatusCompleted} {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestMeasurementsValidate(t *testing.T) {
	valid := Measurements{
		DesignFor:   "Daughter",
		Age:         12,
		Sex:         SexFemale,
		Height:      150,
		Shoulder:    34,
		Chest:       70,
		Waist:       60,
		DressLength: 90,
		SleeveType:  SleeveHalf,
		HandRound:   20,
		HandLength:  45,
	}
	assert.NoError(t, valid.Validate())

	// Zero values are allowed; the wizard treats them as not yet measured.
	assert.NoError(t, Measurements{}.Validate())

	negAge := valid
	negAge.Age = -1
	assert.Error(t, negAge.Validate())

	negWaist := valid
	negWaist.Waist = -5
	assert.Error(t, negWaist.Validate())
}
