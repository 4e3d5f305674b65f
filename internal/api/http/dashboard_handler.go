package http

import (
	"net/http"

	"vehicle-rental-backend/internal/service"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardSvc.GetStats(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) UpcomingReturns(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.dashboardSvc.UpcomingReturns(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"rentals": rentals})
}

func (h *DashboardHandler) Clients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.dashboardSvc.ListClients(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"clients": clients})
}
