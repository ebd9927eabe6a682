package vehicles

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mahiganga/marketplace-backend/internal/models"
	"github.com/mahiganga/marketplace-backend/internal/store"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// VehicleStore defines the interface for vehicle persistence. Both the file
// and the Postgres backend implement it.
type VehicleStore interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, id int) (*models.Vehicle, error)
	CreateVehicle(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id int, partial []byte) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int) error
}

// Handler holds vehicle CRUD handlers.
type Handler struct {
	vehicles VehicleStore
}

func NewHandler(vehicles VehicleStore) *Handler {
	return &Handler{vehicles: vehicles}
}

// vehicleID parses the {id} route parameter. A non-numeric id can never match
// a record, so the caller treats a parse failure like a missing id.
func vehicleID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// List returns all vehicles.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.ListVehicles(r.Context())
	if err != nil {
		log.Printf("list vehicles error: %v", err)
		http.Error(w, `{"error":"database error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// Get returns a single vehicle by id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := vehicleID(r)
	if err != nil {
		http.Error(w, "Vehicle not found.", http.StatusNotFound)
		return
	}
	vehicle, err := h.vehicles.GetVehicle(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Vehicle not found.", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("get vehicle error: %v", err)
		http.Error(w, `{"error":"database error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// Create stores a new vehicle and returns it with its assigned id.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var v models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	created, err := h.vehicles.CreateVehicle(r.Context(), &v)
	if err != nil {
		log.Printf("create vehicle error: %v", err)
		http.Error(w, `{"error":"database error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update merges the supplied fields over the stored vehicle. Fields absent
// from the body are left untouched.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := vehicleID(r)
	if err != nil {
		http.Error(w, "Vehicle not found.", http.StatusNotFound)
		return
	}

	partial, err := io.ReadAll(r.Body)
	if err != nil || !json.Valid(partial) {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	updated, err := h.vehicles.UpdateVehicle(r.Context(), id, partial)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Vehicle not found.", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("update vehicle error: %v", err)
		http.Error(w, `{"error":"database error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a vehicle by id.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := vehicleID(r)
	if err != nil {
		http.Error(w, "Vehicle not found.", http.StatusNotFound)
		return
	}

	err = h.vehicles.DeleteVehicle(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Vehicle not found.", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("delete vehicle error: %v", err)
		http.Error(w, `{"error":"database error"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
