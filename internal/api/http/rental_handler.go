package http

import (
	"net/http"
	"strconv"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

// Quote prices an in-progress booking without persisting anything. The
// booking form calls this on every pricing input change.
func (h *RentalHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req service.QuoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quote, err := h.rentalSvc.Quote(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

type createRentalRequest struct {
	domain.Rental
	ManualTotal        bool   `json:"manual_total,omitempty"`
	ClientSignatureURI string `json:"client_signature_data_uri,omitempty"`
	OwnerSignatureURI  string `json:"owner_signature_data_uri,omitempty"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.VehicleID == 0 {
		respondError(w, http.StatusBadRequest, "vehicle_id is required")
		return
	}
	if req.Client.FullName == "" || req.Client.CNIC == "" {
		respondError(w, http.StatusBadRequest, "client name and CNIC are required")
		return
	}

	rental, err := h.rentalSvc.CreateRental(r.Context(), service.CreateRentalInput{
		Rental:             &req.Rental,
		ManualTotal:        req.ManualTotal,
		ClientSignatureURI: req.ClientSignatureURI,
		OwnerSignatureURI:  req.OwnerSignatureURI,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	rental, err := h.rentalSvc.GetRental(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var rental domain.Rental
	if err := decodeJSON(r, &rental); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rental.ID = id

	if err := h.rentalSvc.UpdateRental(r.Context(), &rental); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.rentalSvc.DeleteRental(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := queryInt32(q.Get("page"), 1)
	pageSize := queryInt32(q.Get("page_size"), 20)

	rentals, total, err := h.rentalSvc.ListRentals(r.Context(), q.Get("payment_status"), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"rentals":   rentals,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

type updatePaymentRequest struct {
	AdvancePayment int64 `json:"advance_payment"`
}

// UpdatePayment is the invoice edit: a new advance payment amount is
// recorded and the balance and status are re-derived server side.
func (h *RentalHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updatePaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rental, err := h.rentalSvc.UpdatePayment(r.Context(), id, req.AdvancePayment)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	rental, err := h.rentalSvc.MarkFullyPaid(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func queryInt32(raw string, fallback int32) int32 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 1 {
		return fallback
	}
	return int32(v)
}
