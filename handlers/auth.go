package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/qrcafe/config"
	"github.com/ray-remotestate/qrcafe/database/dbhelper"
	"github.com/ray-remotestate/qrcafe/models"
	"github.com/ray-remotestate/qrcafe/utils"
)

func Register(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name     string      `json:"name"`
		Email    string      `json:"email"`
		Password string      `json:"password"`
		Role     models.Role `json:"role"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "all fields are required", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 6 {
		http.Error(w, "password must be at least 6 characters", http.StatusBadRequest)
		return
	}
	if req.Role == "" {
		req.Role = models.RoleCustomer
	}
	if !req.Role.IsValid() {
		http.Error(w, "invalid role", http.StatusBadRequest)
		return
	}

	exists, err := dbhelper.IsUserExists(req.Email)
	if err != nil {
		logrus.Errorf("failed to check user existence: %v", err)
		http.Error(w, "failed to check user existence", http.StatusInternalServerError)
		return
	}
	if exists {
		http.Error(w, "email already exists", http.StatusConflict)
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	user, err := dbhelper.CreateUser(req.Name, req.Email, hashedPassword, req.Role)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			http.Error(w, "email already exists", http.StatusConflict)
			return
		}
		logrus.Errorf("failed to create user: %v", err)
		http.Error(w, "user creation failed", http.StatusInternalServerError)
		return
	}

	accToken, refToken, err := utils.GenerateTokens(user.ID, string(user.Role))
	if err != nil {
		logrus.Errorf("failed to generate tokens: %v", err)
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user":          user,
		"token":         accToken,
		"refresh_token": refToken,
	})
}

// RefreshToken redeems a refresh token for a fresh token pair. The user's
// current role is read back from the store so a role change takes effect on
// the next refresh.
func RefreshToken(w http.ResponseWriter, r *http.Request) {
	type request struct {
		RefreshToken string `json:"refresh_token"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		http.Error(w, "refresh token missing", http.StatusUnauthorized)
		return
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.SecretKey), nil
	})
	if err != nil || !token.Valid {
		http.Error(w, "invalid or expired refresh token", http.StatusUnauthorized)
		return
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		http.Error(w, "invalid or expired refresh token", http.StatusUnauthorized)
		return
	}

	user, err := dbhelper.GetUserByID(userID)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "invalid or expired refresh token", http.StatusUnauthorized)
		return
	}
	if err != nil {
		logrus.Errorf("failed to fetch user for refresh: %v", err)
		http.Error(w, "failed to refresh token", http.StatusInternalServerError)
		return
	}

	accToken, refToken, err := utils.GenerateTokens(user.ID, string(user.Role))
	if err != nil {
		logrus.Errorf("failed to generate tokens: %v", err)
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"token":         accToken,
		"refresh_token": refToken,
	})
}

func Login(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := dbhelper.GetUserByEmail(req.Email)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		logrus.Errorf("failed to fetch user: %v", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	accToken, refToken, err := utils.GenerateTokens(user.ID, string(user.Role))
	if err != nil {
		logrus.Errorf("failed to generate tokens: %v", err)
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user":          user,
		"token":         accToken,
		"refresh_token": refToken,
	})
}
