package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddItemMergesLines(t *testing.T) {
	id := uuid.New()
	cart := Cart{}

	cart, err := cart.AddItem(CartItem{MenuItemID: id, Name: "Latte", Price: 4.5, Quantity: 1}, "T1")
	require.NoError(t, err)
	cart, err = cart.AddItem(CartItem{MenuItemID: id, Name: "Latte", Price: 4.5, Quantity: 2}, "T1")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, "T1", cart.TableNumber)
}

func TestCartAddItemRejectsOtherTable(t *testing.T) {
	cart := Cart{}
	cart, err := cart.AddItem(CartItem{MenuItemID: uuid.New(), Quantity: 1}, "T1")
	require.NoError(t, err)

	_, err = cart.AddItem(CartItem{MenuItemID: uuid.New(), Quantity: 1}, "T2")
	assert.ErrorIs(t, err, ErrCartTableMismatch)
}

func TestCartAddItemDefaultsQuantityToOne(t *testing.T) {
	cart, err := Cart{}.AddItem(CartItem{MenuItemID: uuid.New()}, "T1")
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartRemoveItemReleasesTablePin(t *testing.T) {
	id := uuid.New()
	cart, err := Cart{}.AddItem(CartItem{MenuItemID: id, Quantity: 1}, "T3")
	require.NoError(t, err)

	cart = cart.RemoveItem(id)
	assert.Empty(t, cart.Items)
	assert.Empty(t, cart.TableNumber)
}

func TestCartUpdateQuantity(t *testing.T) {
	id := uuid.New()
	cart, err := Cart{}.AddItem(CartItem{MenuItemID: id, Price: 2, Quantity: 1}, "T1")
	require.NoError(t, err)

	updated := cart.UpdateQuantity(id, 5)
	assert.Equal(t, 5, updated.Items[0].Quantity)

	// quantities below one are ignored
	unchanged := updated.UpdateQuantity(id, 0)
	assert.Equal(t, updated, unchanged)
}

func TestCartOperationsDoNotMutateReceiver(t *testing.T) {
	id := uuid.New()
	original, err := Cart{}.AddItem(CartItem{MenuItemID: id, Price: 2, Quantity: 1}, "T1")
	require.NoError(t, err)

	_ = original.UpdateQuantity(id, 9)
	_ = original.RemoveItem(id)
	_, _ = original.AddItem(CartItem{MenuItemID: uuid.New(), Quantity: 2}, "T1")

	require.Len(t, original.Items, 1)
	assert.Equal(t, 1, original.Items[0].Quantity)
}

func TestCartTotal(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{Price: 4.5, Quantity: 2},
		{Price: 3.0, Quantity: 1},
	}}
	assert.InDelta(t, 12.0, cart.Total(), 1e-9)
	assert.Zero(t, Cart{}.Total())
}

func TestCartClear(t *testing.T) {
	cart, err := Cart{}.AddItem(CartItem{MenuItemID: uuid.New(), Quantity: 2}, "T4")
	require.NoError(t, err)

	cleared := cart.Clear()
	assert.Empty(t, cleared.Items)
	assert.Empty(t, cleared.TableNumber)
}

func TestCartSerializationRoundTrip(t *testing.T) {
	cart, err := Cart{}.AddItem(CartItem{MenuItemID: uuid.New(), Name: "Mocha", Price: 5.25, Quantity: 2}, "T7")
	require.NoError(t, err)

	raw, err := json.Marshal(cart)
	require.NoError(t, err)

	var decoded Cart
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, cart, decoded)
}
