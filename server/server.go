package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ray-remotestate/qrcafe/handlers"
	"github.com/ray-remotestate/qrcafe/middlewares"
	"github.com/ray-remotestate/qrcafe/models"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes() *Server {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")
	router.HandleFunc("/register", handlers.Register).Methods("POST")
	router.HandleFunc("/login", handlers.Login).Methods("POST")
	router.HandleFunc("/refresh", handlers.RefreshToken).Methods("POST")
	router.HandleFunc("/qr/scan", handlers.RecordQRScan).Methods("POST")

	authRoutes := router.PathPrefix("/api").Subrouter()
	authRoutes.Use(middlewares.AuthMiddleware)

	authRoutes.HandleFunc("/menu", handlers.ListMenuItems).Methods("GET")
	authRoutes.HandleFunc("/menu/{id}", handlers.GetMenuItem).Methods("GET")

	authRoutes.HandleFunc("/orders", handlers.CreateOrder).Methods("POST")
	authRoutes.HandleFunc("/orders/my-orders", handlers.GetMyOrders).Methods("GET")

	// admin n staff
	staff := authRoutes.NewRoute().Subrouter()
	staff.Use(middlewares.RoleBasedMiddleware(models.RoleAdmin, models.RoleStaff))

	staff.HandleFunc("/orders/active", handlers.GetActiveOrders).Methods("GET")
	staff.HandleFunc("/orders/{id}/status", handlers.UpdateOrderStatus).Methods("PUT")
	staff.HandleFunc("/staff/check-in", handlers.StaffCheckIn).Methods("POST")
	staff.HandleFunc("/staff/check-out", handlers.StaffCheckOut).Methods("POST")
	staff.HandleFunc("/staff/attendance", handlers.GetStaffAttendance).Methods("GET")

	authRoutes.HandleFunc("/orders/{id}", handlers.GetOrderByID).Methods("GET")

	// admin only
	admin := authRoutes.PathPrefix("/admin").Subrouter()
	admin.Use(middlewares.RoleBasedMiddleware(models.RoleAdmin))

	admin.HandleFunc("/menu", handlers.CreateMenuItem).Methods("POST")
	admin.HandleFunc("/menu/{id}", handlers.UpdateMenuItem).Methods("PUT")
	admin.HandleFunc("/menu/{id}", handlers.DeleteMenuItem).Methods("DELETE")

	admin.HandleFunc("/analytics/daily-orders", handlers.GetDailyOrders).Methods("GET")
	admin.HandleFunc("/analytics/monthly-orders", handlers.GetMonthlyOrders).Methods("GET")
	admin.HandleFunc("/analytics/qr-scans", handlers.GetQRCodeScans).Methods("GET")
	admin.HandleFunc("/analytics/popular-items", handlers.GetPopularItems).Methods("GET")
	admin.HandleFunc("/analytics/revenue-stats", handlers.GetRevenueStats).Methods("GET")

	admin.HandleFunc("/staff/active", handlers.GetActiveStaff).Methods("GET")
	admin.HandleFunc("/qr/{table}", handlers.GenerateTableQR).Methods("GET")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
