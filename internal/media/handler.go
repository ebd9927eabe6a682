package media

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
)

// Uploader defines the interface to the external media host.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// Handler forwards uploaded images to the media host. uploader may be nil
// when no media credentials are configured; the route then reports failure
// without touching any host.
type Handler struct {
	uploader Uploader
}

func NewHandler(uploader Uploader) *Handler {
	return &Handler{uploader: uploader}
}

// Upload reads the multipart "image" file into memory, forwards it and
// returns the host-assigned URL.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, `{"error":"no file provided"}`, http.StatusBadRequest)
		return
	}
	defer file.Close()

	if h.uploader == nil {
		http.Error(w, `{"error":"media host not configured"}`, http.StatusInternalServerError)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, `{"error":"failed to read file"}`, http.StatusInternalServerError)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	url, err := h.uploader.Upload(r.Context(), data, contentType)
	if err != nil {
		log.Printf("media upload error: %v", err)
		http.Error(w, `{"error":"upload failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"imageUrl": url})
}
