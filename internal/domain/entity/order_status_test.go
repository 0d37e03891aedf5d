package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "pending to delivered", from: OrderStatusPending, to: OrderStatusDelivered, want: true},
		{name: "delivered is terminal", from: OrderStatusDelivered, to: OrderStatusDelivered, want: false},
		{name: "no way back", from: OrderStatusDelivered, to: OrderStatusPending, want: false},
		{name: "pending to pending", from: OrderStatusPending, to: OrderStatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusCompleted))
	assert.False(t, PaymentStatusCompleted.CanTransitionTo(PaymentStatusPending))
	assert.False(t, PaymentStatusCompleted.CanTransitionTo(PaymentStatusCompleted))
}

func TestParseStatuses(t *testing.T) {
	s, err := ParseOrderStatus("delivered")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusDelivered, s)

	_, err = ParseOrderStatus("shipped")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	p, err := ParsePaymentStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusCompleted, p)

	_, err = ParsePaymentStatus("refunded")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestPolygon_ClosedRing(t *testing.T) {
	open := &Polygon{Coordinates: []Coordinate{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 1, Lng: 1}}}
	ring := open.ClosedRing()
	require.Len(t, ring, 4)
	assert.Equal(t, ring[0], ring[3])
	assert.Len(t, open.Coordinates, 3, "source vertices must not change")

	closed := &Polygon{Coordinates: ring}
	assert.Len(t, closed.ClosedRing(), 4)

	assert.Empty(t, (&Polygon{}).ClosedRing())
}
