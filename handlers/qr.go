package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/ray-remotestate/qrcafe/config"
	"github.com/ray-remotestate/qrcafe/database/dbhelper"
)

// RecordQRScan appends a scan to the log read by analytics. The endpoint is
// public: it fires when a customer scans a table code, before any login.
func RecordQRScan(w http.ResponseWriter, r *http.Request) {
	type request struct {
		TableNumber string `json:"table_number"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.TableNumber == "" {
		http.Error(w, "table_number is required", http.StatusBadRequest)
		return
	}

	scan, err := dbhelper.RecordQRScan(req.TableNumber)
	if err != nil {
		logrus.Errorf("failed to record qr scan: %v", err)
		http.Error(w, "failed to record scan", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(scan)
}

// GenerateTableQR renders a PNG QR code pointing customers at the menu for
// the given table.
func GenerateTableQR(w http.ResponseWriter, r *http.Request) {
	table := mux.Vars(r)["table"]
	if table == "" {
		http.Error(w, "table is required", http.StatusBadRequest)
		return
	}

	target := fmt.Sprintf("%s/menu?table=%s", config.MenuBaseURL(), url.QueryEscape(table))
	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		logrus.Errorf("failed to render qr code: %v", err)
		http.Error(w, "failed to render qr code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
