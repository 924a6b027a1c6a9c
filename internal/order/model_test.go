package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusProgression(t *testing.T) {
	statuses := AllStatuses()
	require.Len(t, statuses, 6)

	// every stage except the last steps forward exactly once
	for i := 0; i < len(statuses)-1; i++ {
		next, ok := statuses[i].Next()
		require.True(t, ok)
		assert.Equal(t, statuses[i+1], next)
	}

	_, ok := StatusOrderDelivered.Next()
	assert.False(t, ok)
}

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"single step forward", StatusOrderReceived, StatusStoreReceived, true},
		{"skip a stage", StatusOrderReceived, StatusOrderStarted, false},
		{"backward", StatusOrderStarted, StatusStoreReceived, false},
		{"standing still", StatusOrderStarted, StatusOrderStarted, false},
		{"into terminal", StatusInvoicePrinted, StatusOrderDelivered, true},
		{"out of terminal", StatusOrderDelivered, StatusOrderReceived, false},
		{"invalid source", Status("Cancelled"), StatusOrderReceived, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOpenStatuses(t *testing.T) {
	open := OpenStatuses()

	require.Len(t, open, 5)
	for _, s := range open {
		assert.True(t, s.IsOpen())
	}

	assert.False(t, StatusOrderDelivered.IsOpen())
	assert.True(t, StatusOrderDelivered.IsTerminal())
	assert.False(t, Status("Cancelled").IsOpen())
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("Delivery Boy Selected")
	require.NoError(t, err)
	assert.Equal(t, StatusDeliveryBoySelected, s)

	_, err = ParseStatus("Rejected")
	assert.Error(t, err)
}

func TestEditPolicyTerminalNeverEditable(t *testing.T) {
	// no matter where the cutoff lands, a delivered order is read-only
	for _, cutoff := range AllStatuses() {
		policy := NewEditPolicy(cutoff)
		assert.False(t, policy(StatusOrderDelivered), "cutoff %s", cutoff)
	}
}

func TestDefaultEditPolicy(t *testing.T) {
	tests := []struct {
		status   Status
		editable bool
	}{
		{StatusOrderReceived, true},
		{StatusStoreReceived, true},
		{StatusOrderStarted, true},
		{StatusDeliveryBoySelected, true},
		{StatusInvoicePrinted, false},
		{StatusOrderDelivered, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.editable, DefaultEditPolicy(tc.status))
		})
	}
}

func TestTotal(t *testing.T) {
	items := []Item{
		{Quantity: 2, UnitPrice: 10},
		{Quantity: 1, UnitPrice: 8, DiscountPercent: 50},
	}

	assert.InDelta(t, 24.0, Total(items), 1e-9)
	assert.Zero(t, Total(nil))
}
