package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/slklaos/backoffice/internal/api/types"
	"github.com/slklaos/backoffice/internal/storage"
)

// 25 MiB, enough for brochure PDFs.
const maxUploadBytes = 25 << 20

type UploadsHandler struct {
	store *storage.Store
}

func NewUploadsHandler(store *storage.Store) *UploadsHandler {
	return &UploadsHandler{store: store}
}

// Upload stores a multipart file in the named bucket and returns the public
// URL under the key {category}/{slugified-title}/{timestamp}-{filename}.
func (h *UploadsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	bucket := chi.URLParam(r, "bucket")
	if !storage.ValidBucket(bucket) {
		writeErrorStr(w, http.StatusBadRequest, "unknown bucket")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	title := r.FormValue("title")
	if title == "" {
		writeErrorStr(w, http.StatusBadRequest, "title field is required")
		return
	}
	category := r.FormValue("category")

	key := storage.ObjectKey(category, title, header.Filename)
	url, err := h.store.Save(bucket, key, file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, types.APIResponse{
		Success: true,
		Data: map[string]string{
			"bucket": bucket,
			"key":    key,
			"url":    url,
		},
	})
}
