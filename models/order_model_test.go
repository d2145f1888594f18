package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to OrderStatus
	}{
		{OrderStatusPlaced, OrderStatusConfirmed},
		{OrderStatusPlaced, OrderStatusCancelled},
		{OrderStatusConfirmed, OrderStatusShipped},
		{OrderStatusConfirmed, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusDelivered},
		{OrderStatusShipped, OrderStatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransition(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	rejected := []struct {
		from, to OrderStatus
	}{
		{OrderStatusPlaced, OrderStatusShipped},
		{OrderStatusPlaced, OrderStatusDelivered},
		{OrderStatusConfirmed, OrderStatusPlaced},
		{OrderStatusConfirmed, OrderStatusDelivered},
		{OrderStatusShipped, OrderStatusPlaced},
		{OrderStatusShipped, OrderStatusConfirmed},
		// Terminal states allow nothing out.
		{OrderStatusDelivered, OrderStatusCancelled},
		{OrderStatusDelivered, OrderStatusPlaced},
		{OrderStatusCancelled, OrderStatusPlaced},
		{OrderStatusCancelled, OrderStatusConfirmed},
		// Self transitions are not a thing either.
		{OrderStatusPlaced, OrderStatusPlaced},
		{OrderStatusShipped, OrderStatusShipped},
	}
	for _, tc := range rejected {
		assert.False(t, tc.from.CanTransition(tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPlaced, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.True(t, s.Valid(), "%s should be a known status", s)
	}

	assert.False(t, OrderStatus("TELEPORTED").Valid())
	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("placed").Valid(), "statuses are case sensitive")
}
