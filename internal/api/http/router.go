// Package http exposes the REST API. All routes live under /api/v1;
// everything except signup, login, password reset, and asset serving
// requires a Bearer access token.
package http

import (
	"net/http"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gorilla/mux"

	"vehicle-rental-backend/internal/agreement"
	"vehicle-rental-backend/internal/security"
	"vehicle-rental-backend/internal/service"
	"vehicle-rental-backend/internal/storage"
)

// RouterDeps carries everything the router wires together.
type RouterDeps struct {
	AuthSvc      service.AuthService
	VehicleSvc   service.VehicleService
	RentalSvc    service.RentalService
	DashboardSvc service.DashboardService
	Renderer     *agreement.Renderer
	Assets       storage.AssetStore
	Tokens       security.TokenManager
	// FirebaseAuth, when non-nil, enables /auth/firebase token exchange.
	FirebaseAuth *fbauth.Client
	MaxBodySize  int64
}

func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	api := router.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(deps.AuthSvc, deps.FirebaseAuth)
	vehicleHandler := NewVehicleHandler(deps.VehicleSvc)
	rentalHandler := NewRentalHandler(deps.RentalSvc)
	dashboardHandler := NewDashboardHandler(deps.DashboardSvc)
	agreementHandler := NewAgreementHandler(deps.RentalSvc, deps.Renderer)
	assetHandler := NewAssetHandler(deps.Assets, deps.MaxBodySize)

	// Public routes
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/password-reset/request", authHandler.RequestPasswordReset).Methods(http.MethodPost)
	api.HandleFunc("/auth/password-reset/confirm", authHandler.ResetPassword).Methods(http.MethodPost)
	api.HandleFunc("/assets/{key:.+}", assetHandler.Serve).Methods(http.MethodGet)

	if deps.FirebaseAuth != nil {
		api.HandleFunc("/auth/firebase", authHandler.FirebaseLogin).Methods(http.MethodPost)
	}

	// Protected routes
	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(deps.Tokens))

	protected.HandleFunc("/vehicles", vehicleHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles", vehicleHandler.Add).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/rentals/quote", rentalHandler.Quote).Methods(http.MethodPost)
	protected.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/rentals/{id:[0-9]+}/payment", rentalHandler.UpdatePayment).Methods(http.MethodPut)
	protected.HandleFunc("/rentals/{id:[0-9]+}/mark-paid", rentalHandler.MarkPaid).Methods(http.MethodPost)
	protected.HandleFunc("/rentals/{id:[0-9]+}/agreement", agreementHandler.Render).Methods(http.MethodGet)

	protected.HandleFunc("/dashboard/stats", dashboardHandler.Stats).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/upcoming-returns", dashboardHandler.UpcomingReturns).Methods(http.MethodGet)
	protected.HandleFunc("/clients", dashboardHandler.Clients).Methods(http.MethodGet)

	protected.HandleFunc("/assets", assetHandler.Upload).Methods(http.MethodPost)
	protected.HandleFunc("/assets/{key:.+}", assetHandler.Delete).Methods(http.MethodDelete)

	return router
}
