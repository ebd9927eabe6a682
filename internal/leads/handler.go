package leads

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mahiganga/marketplace-backend/internal/models"
)

// Handler accepts sell-request submissions and appends them to the lead log.
type Handler struct {
	leads *Log
}

func NewHandler(leads *Log) *Handler {
	return &Handler{leads: leads}
}

// Submit appends one lead row per submission.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := h.leads.Append(req); err != nil {
		log.Printf("lead log error: %v", err)
		http.Error(w, `{"error":"failed to record request"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Request submitted successfully.",
	})
}
