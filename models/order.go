package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// ActiveStatuses are the states shown on the staff board; DELIVERED and
// CANCELLED are terminal.
var ActiveStatuses = []OrderStatus{StatusPending, StatusConfirmed, StatusPreparing, StatusReady}

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether next is reachable from s in the normal
// workflow. The status update endpoint deliberately does not enforce this;
// it is available for callers that want the stricter machine.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusConfirmed
	case StatusConfirmed:
		return next == StatusPreparing
	case StatusPreparing:
		return next == StatusReady
	case StatusReady:
		return next == StatusDelivered
	}
	return false
}

const (
	TaxRate           = 0.10
	ServiceChargeRate = 0.05
)

type Order struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	UserID        uuid.UUID   `db:"user_id" json:"user_id"`
	TableNumber   *string     `db:"table_number" json:"table_number,omitempty"`
	SpecialNotes  *string     `db:"special_notes" json:"special_notes,omitempty"`
	TotalAmount   float64     `db:"total_amount" json:"total_amount"`
	Tax           float64     `db:"tax" json:"tax"`
	ServiceCharge float64     `db:"service_charge" json:"service_charge"`
	FinalAmount   float64     `db:"final_amount" json:"final_amount"`
	Status        OrderStatus `db:"status" json:"status"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
	Items         []OrderItem `db:"-" json:"items"`
}

// OrderItem holds the unit price captured at order time. It is never
// recomputed from the live MenuItem, so later price edits or menu removals
// leave historical orders untouched.
type OrderItem struct {
	ID         int64     `db:"id" json:"id"`
	OrderID    uuid.UUID `db:"order_id" json:"order_id"`
	MenuItemID uuid.UUID `db:"menu_item_id" json:"menu_item_id"`
	Quantity   int       `db:"quantity" json:"quantity"`
	Price      float64   `db:"price" json:"price"`
	MenuItem   *MenuItem `db:"-" json:"menu_item,omitempty"`
}

type OrderTotals struct {
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	ServiceCharge float64 `json:"service_charge"`
	FinalAmount   float64 `json:"final_amount"`
}

// ComputeTotals derives the financial fields of an order from its priced
// lines: subtotal, 10% tax, 5% service charge and the final amount.
func ComputeTotals(items []OrderItem) OrderTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	totals := OrderTotals{
		Subtotal:      subtotal,
		Tax:           subtotal * TaxRate,
		ServiceCharge: subtotal * ServiceChargeRate,
	}
	totals.FinalAmount = totals.Subtotal + totals.Tax + totals.ServiceCharge
	return totals
}
