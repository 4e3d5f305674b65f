package http

import (
	"net/http"

	"vehicle-rental-backend/internal/agreement"
	"vehicle-rental-backend/internal/service"
)

type AgreementHandler struct {
	rentalSvc service.RentalService
	renderer  *agreement.Renderer
}

func NewAgreementHandler(rentalSvc service.RentalService, renderer *agreement.Renderer) *AgreementHandler {
	return &AgreementHandler{rentalSvc: rentalSvc, renderer: renderer}
}

// Render returns the printable agreement document for a rental.
func (h *AgreementHandler) Render(w http.ResponseWriter, r *http.Request) {
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

	doc, err := h.renderer.Render(rental)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
