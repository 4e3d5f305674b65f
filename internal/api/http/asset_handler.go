package http

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"vehicle-rental-backend/internal/storage"
)

// AssetHandler serves stored assets and accepts uploads outside the
// booking flow (e.g. extra damage photos attached after handover).
type AssetHandler struct {
	assets      storage.AssetStore
	maxBodySize int64
}

func NewAssetHandler(assets storage.AssetStore, maxBodySize int64) *AssetHandler {
	return &AssetHandler{assets: assets, maxBodySize: maxBodySize}
}

type uploadRequest struct {
	Folder  string `json:"folder"`
	DataURI string `json:"data_uri"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload accepts a base64 data URI and stores it, returning the public
// URL for the stored asset.
func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req uploadRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Folder == "" {
		req.Folder = "misc"
	}

	url, err := h.assets.SaveDataURI(r.Context(), req.Folder, req.DataURI)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, uploadResponse{URL: url})
}

// Serve streams a stored asset by key.
func (h *AssetHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		respondError(w, http.StatusBadRequest, "missing asset key")
		return
	}

	file, err := h.assets.Open(r.Context(), key)
	if err != nil {
		respondError(w, http.StatusNotFound, "asset not found")
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	case ".webp":
		contentType = "image/webp"
	case ".pdf":
		contentType = "application/pdf"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		respondError(w, http.StatusBadRequest, "missing asset key")
		return
	}

	if err := h.assets.Delete(r.Context(), key); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
