package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"hotels-server/api"
	"hotels-server/config"
	"hotels-server/models"
	"hotels-server/obs"
	"hotels-server/poller"
	services "hotels-server/service"
)

const (
	DESTINATION_ID_QUERY_ARG = "destination_id"
	CHECKIN_QUERY_ARG        = "checkin"
	CHECKOUT_QUERY_ARG       = "checkout"
	GUESTS_QUERY_ARG         = "guests"
	CURRENCY_QUERY_ARG       = "currency"
	COUNTRY_CODE_QUERY_ARG   = "country_code"
	LANG_QUERY_ARG           = "lang"
	ENRICH_QUERY_ARG         = "enrich"
)

// ErrorResponse is the structured error envelope every failure is reported
// with.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HotelHandler exposes the listing search and hotel detail operations.
type HotelHandler struct {
	listingService *services.ListingService
	metrics        *obs.Metrics
}

func NewHotelHandler(listingService *services.ListingService, metrics *obs.Metrics) *HotelHandler {
	return &HotelHandler{listingService: listingService, metrics: metrics}
}

// GetHotelListings handles GET /api/hotels. The response is either the
// complete, consistent listing array or a structured error; a partial result
// is never passed off as complete.
func (h *HotelHandler) GetHotelListings(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncRequests()

	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if enrich, _ := strconv.ParseBool(r.URL.Query().Get(ENRICH_QUERY_ARG)); enrich {
		listings, err := h.listingService.GetDetailedListings(r.Context(), criteria)
		if err != nil {
			h.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, listings)
		return
	}

	listings, err := h.listingService.GetListings(r.Context(), criteria)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

// GetHotelDetails handles GET /api/hotels/{id}.
func (h *HotelHandler) GetHotelDetails(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncRequests()

	hotelID := mux.Vars(r)["id"]
	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	details, err := h.listingService.GetHotelDetails(r.Context(), hotelID, criteria)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// GetMetrics handles GET /metrics with the in-process counters.
func (h *HotelHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.metrics.Snapshot())
}

// Health handles GET /health
func (h *HotelHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ping handles GET /ping
func (h *HotelHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// parseCriteria builds SearchCriteria from the request query, applying the
// configured defaults for the optional fields. Full validation happens in the
// service; only guests needs parsing up front.
func parseCriteria(vals url.Values) (*models.SearchCriteria, error) {
	guests, err := models.ParseGuests(vals.Get(GUESTS_QUERY_ARG))
	if err != nil {
		return nil, err
	}

	criteria := &models.SearchCriteria{
		DestinationID: vals.Get(DESTINATION_ID_QUERY_ARG),
		CheckIn:       vals.Get(CHECKIN_QUERY_ARG),
		CheckOut:      vals.Get(CHECKOUT_QUERY_ARG),
		Guests:        guests,
		Currency:      vals.Get(CURRENCY_QUERY_ARG),
		CountryCode:   vals.Get(COUNTRY_CODE_QUERY_ARG),
		Lang:          vals.Get(LANG_QUERY_ARG),
	}
	criteria.ApplyDefaults(config.DEFAULT_LANG, config.DEFAULT_CURRENCY, config.DEFAULT_COUNTRY_CODE, config.HOTEL_API_PARTNER_ID)
	return criteria, nil
}

// writeServiceError maps service failures onto the error envelope. The poll
// timeout gets a distinct code so clients can tell "upstream slow" from
// "upstream broken".
func (h *HotelHandler) writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	var timeoutErr *poller.TimeoutError
	var upstreamErr *api.UpstreamError

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, "validation_error", validationErr.Error())
	case errors.As(err, &timeoutErr):
		writeError(w, http.StatusInternalServerError, "poll_timeout",
			"price search did not complete in time: "+timeoutErr.Error())
	case errors.As(err, &upstreamErr):
		writeError(w, http.StatusInternalServerError, "upstream_error", upstreamErr.Error())
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write.
		log.Printf("[HotelHandler] Request cancelled: %v", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("[HotelHandler] Error encoding response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}
