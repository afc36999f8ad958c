package models

import (
	"errors"

	"github.com/google/uuid"
)

// ErrCartTableMismatch is returned when an item scanned at a different table
// is added to a cart that already holds lines for another table.
var ErrCartTableMismatch = errors.New("cart already holds items for a different table")

type CartItem struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
}

// Cart is the serializable client-session cart aggregate. All operations are
// value-semantics: they return a new Cart and never mutate the receiver, so a
// Cart can be stored, compared and replayed safely.
type Cart struct {
	TableNumber string     `json:"table_number,omitempty"`
	Items       []CartItem `json:"items"`
}

// AddItem merges the line into the cart. The first added line pins the cart
// to its table; lines from another table are rejected. A zero quantity is
// treated as one.
func (c Cart) AddItem(item CartItem, tableNumber string) (Cart, error) {
	if len(c.Items) > 0 && tableNumber != "" && c.TableNumber != "" && tableNumber != c.TableNumber {
		return c, ErrCartTableMismatch
	}

	next := c.clone()
	if len(next.Items) == 0 && tableNumber != "" {
		next.TableNumber = tableNumber
	}

	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range next.Items {
		if next.Items[i].MenuItemID == item.MenuItemID {
			next.Items[i].Quantity += item.Quantity
			return next, nil
		}
	}
	next.Items = append(next.Items, item)
	return next, nil
}

// RemoveItem drops the line for the given menu item. Removing the last line
// releases the table pin.
func (c Cart) RemoveItem(menuItemID uuid.UUID) Cart {
	next := Cart{TableNumber: c.TableNumber}
	for _, item := range c.Items {
		if item.MenuItemID != menuItemID {
			next.Items = append(next.Items, item)
		}
	}
	if len(next.Items) == 0 {
		next.TableNumber = ""
	}
	return next
}

// UpdateQuantity sets the quantity of an existing line. Quantities below one
// are ignored and the cart is returned unchanged.
func (c Cart) UpdateQuantity(menuItemID uuid.UUID, quantity int) Cart {
	if quantity < 1 {
		return c
	}
	next := c.clone()
	for i := range next.Items {
		if next.Items[i].MenuItemID == menuItemID {
			next.Items[i].Quantity = quantity
		}
	}
	return next
}

func (c Cart) Clear() Cart {
	return Cart{}
}

func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c Cart) clone() Cart {
	next := Cart{TableNumber: c.TableNumber}
	if len(c.Items) > 0 {
		next.Items = make([]CartItem, len(c.Items))
		copy(next.Items, c.Items)
	}
	return next
}
