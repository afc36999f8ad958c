package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/qrcafe/database/dbhelper"
	"github.com/ray-remotestate/qrcafe/middlewares"
)

func StaffCheckIn(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	open, err := dbhelper.HasOpenAttendance(claims.UserID)
	if err != nil {
		logrus.Errorf("failed to check attendance: %v", err)
		http.Error(w, "failed to check attendance", http.StatusInternalServerError)
		return
	}
	if open {
		http.Error(w, "staff member already checked in", http.StatusConflict)
		return
	}

	attendance, err := dbhelper.CheckInStaff(claims.UserID)
	if err != nil {
		logrus.Errorf("failed to check in: %v", err)
		http.Error(w, "failed to check in", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(attendance)
}

func StaffCheckOut(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	attendance, err := dbhelper.CheckOutStaff(claims.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "no active check-in found", http.StatusNotFound)
		return
	}
	if err != nil {
		logrus.Errorf("failed to check out: %v", err)
		http.Error(w, "failed to check out", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(attendance)
}

func GetStaffAttendance(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetAuthenticatedUser(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	records, err := dbhelper.GetStaffAttendanceBetween(claims.UserID, start, end)
	if err != nil {
		logrus.Errorf("failed to fetch attendance: %v", err)
		http.Error(w, "failed to fetch attendance", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func GetActiveStaff(w http.ResponseWriter, r *http.Request) {
	records, err := dbhelper.GetActiveStaff()
	if err != nil {
		logrus.Errorf("failed to fetch active staff: %v", err)
		http.Error(w, "failed to fetch active staff", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}
