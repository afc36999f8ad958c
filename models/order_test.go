package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	items := []OrderItem{
		{Price: 10, Quantity: 3},
		{Price: 15, Quantity: 1},
	}

	totals := ComputeTotals(items)

	assert.InDelta(t, 45.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 4.5, totals.Tax, 1e-9)
	assert.InDelta(t, 2.25, totals.ServiceCharge, 1e-9)
	assert.Equal(t, totals.Subtotal+totals.Tax+totals.ServiceCharge, totals.FinalAmount)
}

func TestComputeTotalsFinalAmountIdentity(t *testing.T) {
	cases := [][]OrderItem{
		{{Price: 9.99, Quantity: 1}},
		{{Price: 3.5, Quantity: 2}, {Price: 12.25, Quantity: 4}},
		{{Price: 0.01, Quantity: 100}, {Price: 250, Quantity: 1}, {Price: 7.77, Quantity: 3}},
	}

	for _, items := range cases {
		totals := ComputeTotals(items)
		assert.InDelta(t, totals.Subtotal*1.15, totals.FinalAmount, 1e-9)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil)
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Tax)
	assert.Zero(t, totals.ServiceCharge)
	assert.Zero(t, totals.FinalAmount)
}

func TestComputeTotalsIgnoresLiveMenuPrice(t *testing.T) {
	menuItem := &MenuItem{Price: 10}
	items := []OrderItem{{Price: 10, Quantity: 2, MenuItem: menuItem}}

	before := ComputeTotals(items)

	// a later price edit on the menu must not affect the snapshot
	menuItem.Price = 99

	after := ComputeTotals(items)
	require.Equal(t, before, after)
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, OrderStatus("SHIPPED").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	for _, s := range ActiveStatuses {
		assert.False(t, s.IsTerminal(), string(s))
	}
}

func TestOrderStatusCanTransitionTo(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusPreparing))
	assert.True(t, StatusPreparing.CanTransitionTo(StatusReady))
	assert.True(t, StatusReady.CanTransitionTo(StatusDelivered))

	for _, s := range ActiveStatuses {
		assert.True(t, s.CanTransitionTo(StatusCancelled), string(s))
	}

	assert.False(t, StatusPending.CanTransitionTo(StatusReady))
	assert.False(t, StatusDelivered.CanTransitionTo(StatusPending))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusConfirmed))
}

func TestActiveStatusesExcludeTerminal(t *testing.T) {
	assert.NotContains(t, ActiveStatuses, StatusDelivered)
	assert.NotContains(t, ActiveStatuses, StatusCancelled)
	assert.Len(t, ActiveStatuses, 4)
}
