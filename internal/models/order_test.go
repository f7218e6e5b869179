package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	for _, status := range []OrderStatus{OrderPending, OrderSent, OrderConfirmed, OrderDelivered, OrderCancelled} {
		assert.True(t, status.Valid(), "%s", status)
	}
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, OrderDelivered.Terminal())
	assert.True(t, OrderCancelled.Terminal())
	assert.False(t, OrderPending.Terminal())
	assert.False(t, OrderSent.Terminal())
	assert.False(t, OrderConfirmed.Terminal())
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderPending, OrderSent, true},
		{OrderSent, OrderConfirmed, true},
		{OrderConfirmed, OrderDelivered, true},
		{OrderPending, OrderDelivered, true},
		{OrderPending, OrderCancelled, true},
		{OrderSent, OrderCancelled, true},
		{OrderConfirmed, OrderCancelled, true},

		// Same non-terminal status is an idempotent no-op.
		{OrderConfirmed, OrderConfirmed, true},
		{OrderSent, OrderSent, true},

		// No backward moves.
		{OrderSent, OrderPending, false},
		{OrderConfirmed, OrderSent, false},

		// Terminal states admit nothing.
		{OrderDelivered, OrderCancelled, false},
		{OrderDelivered, OrderConfirmed, false},
		{OrderCancelled, OrderPending, false},
		{OrderCancelled, OrderCancelled, false},

		{OrderPending, OrderStatus("shipped"), false},
		{OrderStatus(""), OrderSent, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
