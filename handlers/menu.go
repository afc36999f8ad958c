package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/qrcafe/database/dbhelper"
	"github.com/ray-remotestate/qrcafe/models"
)

func ListMenuItems(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var items []models.MenuItem
	var err error
	if category != "" {
		items, err = dbhelper.GetMenuItemsByCategory(category)
	} else {
		items, err = dbhelper.GetAvailableMenuItems()
	}
	if err != nil {
		logrus.Errorf("failed to query menu items: %v", err)
		http.Error(w, "failed to fetch menu", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid menu item id", http.StatusBadRequest)
		return
	}

	item, err := dbhelper.GetMenuItemByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "menu item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logrus.Errorf("failed to fetch menu item: %v", err)
		http.Error(w, "failed to fetch menu item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Category    string  `json:"category"`
		Image       *string `json:"image"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Category == "" {
		http.Error(w, "name and category are required", http.StatusBadRequest)
		return
	}
	if req.Price < 0 {
		http.Error(w, "price must not be negative", http.StatusBadRequest)
		return
	}

	item, err := dbhelper.CreateMenuItem(models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		IsAvailable: true,
	})
	if err != nil {
		logrus.Errorf("failed to create menu item: %v", err)
		http.Error(w, "failed to create menu item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

// UpdateMenuItem applies a partial update; absent fields keep their current
// value. Price edits never touch the snapshots stored on past orders.
func UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid menu item id", http.StatusBadRequest)
		return
	}

	type request struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Category    *string  `json:"category"`
		Image       *string  `json:"image"`
		IsAvailable *bool    `json:"is_available"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	item, err := dbhelper.GetMenuItemByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "menu item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logrus.Errorf("failed to fetch menu item: %v", err)
		http.Error(w, "failed to fetch menu item", http.StatusInternalServerError)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			http.Error(w, "price must not be negative", http.StatusBadRequest)
			return
		}
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Image != nil {
		item.Image = req.Image
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := dbhelper.UpdateMenuItem(item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "menu item not found", http.StatusNotFound)
			return
		}
		logrus.Errorf("failed to update menu item: %v", err)
		http.Error(w, "failed to update menu item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid menu item id", http.StatusBadRequest)
		return
	}

	if err := dbhelper.DeleteMenuItem(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "menu item not found", http.StatusNotFound)
			return
		}
		logrus.Errorf("failed to delete menu item: %v", err)
		http.Error(w, "failed to delete menu item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "menu item deleted"})
}
