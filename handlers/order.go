package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/qrcafe/database"
	"github.com/ray-remotestate/qrcafe/database/dbhelper"
	"github.com/ray-remotestate/qrcafe/middlewares"
	"github.com/ray-remotestate/qrcafe/models"
)

// CreateOrder validates every line, snapshots each menu item's current price
// onto the line, derives the totals and writes the order atomically. Any
// missing menu item aborts the whole request before the transaction starts.
func CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	type orderLine struct {
		MenuItemID uuid.UUID `json:"menu_item_id"`
		Quantity   int       `json:"quantity"`
	}
	type request struct {
		Items        []orderLine `json:"items"`
		TableNumber  *string     `json:"table_number"`
		SpecialNotes *string     `json:"special_notes"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "order must contain at least one item", http.StatusBadRequest)
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			http.Error(w, "quantity must be a positive integer", http.StatusBadRequest)
			return
		}

		menuItem, err := dbhelper.GetMenuItemByID(line.MenuItemID)
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "menu item "+line.MenuItemID.String()+" not found", http.StatusNotFound)
			return
		}
		if err != nil {
			logrus.Errorf("failed to fetch menu item: %v", err)
			http.Error(w, "failed to fetch menu item", http.StatusInternalServerError)
			return
		}

		items = append(items, models.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   line.Quantity,
			Price:      menuItem.Price,
			MenuItem:   &menuItem,
		})
	}

	totals := models.ComputeTotals(items)
	order := models.Order{
		UserID:        claims.UserID,
		TableNumber:   req.TableNumber,
		SpecialNotes:  req.SpecialNotes,
		TotalAmount:   totals.Subtotal,
		Tax:           totals.Tax,
		ServiceCharge: totals.ServiceCharge,
		FinalAmount:   totals.FinalAmount,
		Status:        models.StatusPending,
		Items:         items,
	}

	txErr := database.Tx(func(tx *sql.Tx) error {
		return dbhelper.CreateOrder(tx, &order)
	})
	if txErr != nil {
		logrus.Errorf("failed to create order: %v", txErr)
		http.Error(w, "failed to create order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := dbhelper.GetOrderByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logrus.Errorf("failed to fetch order: %v", err)
		http.Error(w, "failed to fetch order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func GetMyOrders(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := dbhelper.GetUserOrders(claims.UserID)
	if err != nil {
		logrus.Errorf("failed to fetch user orders: %v", err)
		http.Error(w, "failed to fetch orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func GetActiveOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := dbhelper.GetActiveOrders()
	if err != nil {
		logrus.Errorf("failed to fetch active orders: %v", err)
		http.Error(w, "failed to fetch orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// UpdateOrderStatus accepts any of the enumerated statuses; it does not
// verify the transition is reachable from the current state.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	type request struct {
		Status models.OrderStatus `json:"status"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if !req.Status.IsValid() {
		http.Error(w, "invalid order status", http.StatusBadRequest)
		return
	}

	if err := dbhelper.UpdateOrderStatus(id, req.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		logrus.Errorf("failed to update order status: %v", err)
		http.Error(w, "failed to update order status", http.StatusInternalServerError)
		return
	}

	order, err := dbhelper.GetOrderByID(id)
	if err != nil {
		logrus.Errorf("failed to fetch updated order: %v", err)
		http.Error(w, "failed to fetch updated order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}
