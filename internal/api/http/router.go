package http

import (
	"github.com/gorilla/mux"

	"smartrentals-backend/internal/service"
)

// Handler bundles the rental services behind the HTTP API.
type Handler struct {
	availability service.AvailabilityService
	pricing      service.PricingService
	booking      service.BookingService
	lifecycle    service.LifecycleService
}

func NewHandler(
	availability service.AvailabilityService,
	pricing service.PricingService,
	booking service.BookingService,
	lifecycle service.LifecycleService,
) *Handler {
	return &Handler{
		availability: availability,
		pricing:      pricing,
		booking:      booking,
		lifecycle:    lifecycle,
	}
}

// Register mounts all rental routes under /api.
func (h *Handler) Register(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/availability/units/{unitID}", h.CheckUnitAvailability).Methods("GET")
	api.HandleFunc("/availability/products/{productID}", h.ListAvailableUnits).Methods("GET")

	api.HandleFunc("/quotes", h.CreateQuote).Methods("POST")

	api.HandleFunc("/orders", h.CreateOrder).Methods("POST")
	api.HandleFunc("/orders", h.PurgeOrders).Methods("DELETE")
	api.HandleFunc("/orders/{orderID}", h.GetOrder).Methods("GET")
	api.HandleFunc("/orders/{orderID}", h.DeleteOrder).Methods("DELETE")
	api.HandleFunc("/orders/{orderID}/payments", h.RecordPayment).Methods("POST")
	api.HandleFunc("/orders/{orderID}/pickup", h.MarkPickedUp).Methods("POST")
	api.HandleFunc("/orders/{orderID}/return", h.MarkReturned).Methods("POST")
	api.HandleFunc("/orders/{orderID}/cancel", h.CancelOrder).Methods("POST")

	api.HandleFunc("/reports/late-rentals", h.ListLateRentals).Methods("GET")
}
