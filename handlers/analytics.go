package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/qrcafe/database/dbhelper"
	"github.com/ray-remotestate/qrcafe/models"
	"github.com/ray-remotestate/qrcafe/utils"
)

// Analytics endpoints never error on empty data; an empty window produces
// empty lists or zeroed aggregates.

func GetDailyOrders(w http.ResponseWriter, r *http.Request) {
	date, err := utils.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	start, end := utils.DayBoundsUTC(date)
	orders, err := dbhelper.GetOrdersBetween(start, end)
	if err != nil {
		logrus.Errorf("failed to fetch daily orders: %v", err)
		http.Error(w, "failed to fetch orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func GetMonthlyOrders(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	start, end := utils.MonthBoundsUTC(year, month)
	orders, err := dbhelper.GetOrdersBetween(start, end)
	if err != nil {
		logrus.Errorf("failed to fetch monthly orders: %v", err)
		http.Error(w, "failed to fetch orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func GetQRCodeScans(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	scans, err := dbhelper.GetQRScansBetween(start, end)
	if err != nil {
		logrus.Errorf("failed to fetch qr scans: %v", err)
		http.Error(w, "failed to fetch qr scans", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scans)
}

func GetPopularItems(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	items, err := dbhelper.GetOrderItemsBetween(start, end)
	if err != nil {
		logrus.Errorf("failed to fetch order items: %v", err)
		http.Error(w, "failed to fetch order items", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.AggregatePopularItems(items))
}

func GetRevenueStats(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	orders, err := dbhelper.GetNonCancelledOrdersBetween(start, end)
	if err != nil {
		logrus.Errorf("failed to fetch orders for revenue stats: %v", err)
		http.Error(w, "failed to fetch orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ComputeRevenueStats(orders))
}

// parseDateRange reads startDate/endDate query params and widens them to
// whole UTC days. On failure it writes a 400 and returns ok = false.
func parseDateRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("startDate"))
	if err != nil {
		http.Error(w, "invalid startDate", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	endDate, err := utils.ParseDate(r.URL.Query().Get("endDate"))
	if err != nil {
		http.Error(w, "invalid endDate", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}

	start, end := utils.RangeBoundsUTC(startDate, endDate)
	return start, end, true
}
