package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// HotelHandler is the handler surface the router wires up.
type HotelHandler interface {
	GetHotelListings(w http.ResponseWriter, r *http.Request)
	GetHotelDetails(w http.ResponseWriter, r *http.Request)
	GetMetrics(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	hotelHandler HotelHandler
	router       *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	hotelHandler HotelHandler,
	router *mux.Router) *Router {
	return &Router{
		hotelHandler: hotelHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?destination_id=...&checkin=YYYY-MM-DD&checkout=YYYY-MM-DD&guests=2|1&currency=SGD
	r.router.HandleFunc("/api/hotels", r.hotelHandler.GetHotelListings).Methods("GET")

	// expects the same criteria query args as the listing search
	r.router.HandleFunc("/api/hotels/{id}", r.hotelHandler.GetHotelDetails).Methods("GET")

	r.router.HandleFunc("/metrics", r.hotelHandler.GetMetrics).Methods("GET")
	r.router.HandleFunc("/health", r.hotelHandler.Health).Methods("GET")
	r.router.HandleFunc("/ping", r.hotelHandler.Ping).Methods("GET")
}
