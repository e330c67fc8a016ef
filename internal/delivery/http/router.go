package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"roomblock/internal/delivery/http/controllers"
	"roomblock/internal/delivery/http/middleware"
	"roomblock/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	conferenceController *controllers.ConferenceController,
	hotelController *controllers.HotelController,
	orderController *controllers.OrderController,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Public registration routes
	mux.HandleFunc("GET /api/conferences", conferenceController.List)
	mux.HandleFunc("GET /api/conferences/{conferenceID}", conferenceController.GetByID)
	mux.HandleFunc("GET /api/conference-hotels", hotelController.List)
	mux.HandleFunc("GET /api/conference-hotels/{conferenceHotelID}", hotelController.GetByID)
	mux.HandleFunc("POST /api/orders/submit", orderController.Submit)

	// Auth
	mux.HandleFunc("POST /api/auth/login", authController.Login)

	// Admin dashboard
	auth := middleware.RequireAuth(verifier, logger)
	mux.HandleFunc("GET /api/admin/orders", auth(adminController.ListOrders))
	mux.HandleFunc("GET /api/admin/orders/{orderID}", auth(adminController.GetOrder))
	mux.HandleFunc("GET /api/admin/conferences", auth(adminController.ListConferences))
	mux.HandleFunc("GET /api/admin/stats/conferences", auth(adminController.ConferenceStats))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
