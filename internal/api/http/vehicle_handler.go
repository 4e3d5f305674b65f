package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
}

func NewVehicleHandler(vehicleSvc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc}
}

type vehicleRequest struct {
	domain.Vehicle
	ImageDataURI string `json:"image_data_uri,omitempty"`
	LogoDataURI  string `json:"logo_data_uri,omitempty"`
}

func (h *VehicleHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "vehicle name is required")
		return
	}

	if err := h.vehicleSvc.AddVehicle(r.Context(), &req.Vehicle, req.ImageDataURI, req.LogoDataURI); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, req.Vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	vehicle, err := h.vehicleSvc.GetVehicle(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req vehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Vehicle.ID = id

	if err := h.vehicleSvc.UpdateVehicle(r.Context(), &req.Vehicle, req.ImageDataURI, req.LogoDataURI); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req.Vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.vehicleSvc.DeleteVehicle(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicleSvc.ListVehicles(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"vehicles": vehicles})
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}
