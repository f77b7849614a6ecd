//go:generate go run go.uber.org/mock/mockgen -source=handlers.go -destination=../../mocks/mock_handlers.go -package=mocks

// Package handlers provides HTTP handlers for the GameSnap X-Ray API.
//
// This package contains the endpoints for image upload, retrieval of
// uploaded images, the demo gallery listing and result view resolution.
//
// Example usage:
//
//	h := handlers.NewAPIHandler(store, lister, resolver, maxUploadBytes, logger)
//	r := chi.NewRouter()
//	r.Post("/api/upload", h.UploadImage)
//
// All handlers are designed to be used with the chi router.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"gamesnap-xray/internal/blobstore"
	"gamesnap-xray/internal/demos"
	"gamesnap-xray/internal/mimetypes"
	"gamesnap-xray/internal/result"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// multipart parts above this size are spooled to disk while parsing
const maxFormMemory = 8 << 20

type BlobStore interface {
	Save(u blobstore.Upload) (blobstore.StoredBlob, error)
	Open(name string) (blobstore.Blob, error)
}

type DemoLister interface {
	List() []demos.Item
}

type APIHandler struct {
	Store          BlobStore
	Demos          DemoLister
	Results        *result.Resolver
	MaxUploadBytes int64
	Logger         *slog.Logger
}

func NewAPIHandler(store BlobStore, lister DemoLister, resolver *result.Resolver, maxUploadBytes int64, logger *slog.Logger) *APIHandler {
	return &APIHandler{Store: store, Demos: lister, Results: resolver, MaxUploadBytes: maxUploadBytes, Logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

type demosResponse struct {
	Items []demos.Item `json:"items"`
}

// UploadImage godoc
// @Summary      Upload a screenshot
// @Description  Stores an image under a server-generated filename
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200  {object}  blobstore.StoredBlob
// @Failure      400  {object}  errorResponse  "No file provided"
// @Failure      413  {object}  errorResponse  "File too large"
// @Router       /api/upload [post]
func (h *APIHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.MaxUploadBytes {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "File too large"})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)

	upload, err := readUpload(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "File too large"})
			return
		}
		h.Logger.Debug("unreadable upload", "error", err, "request_id", middleware.GetReqID(r.Context()))
		upload = blobstore.Upload{}
	}

	blob, err := h.Store.Save(upload)
	if errors.Is(err, blobstore.ErrValidation) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No file provided. Please choose an image file."})
		return
	}
	if err != nil {
		h.Logger.Error("failed to store upload", "error", err, "request_id", middleware.GetReqID(r.Context()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to save file"})
		return
	}

	h.Logger.Info("upload stored", "filename", blob.Filename, "mime", blob.MIME)
	writeJSON(w, http.StatusOK, blob)
}

// readUpload turns the "file" form field into an Upload. A missing field is
// not an error: it yields an Upload without a file.
func readUpload(r *http.Request) (blobstore.Upload, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return blobstore.Upload{}, err
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return blobstore.Upload{}, nil
	}
	if err != nil {
		return blobstore.Upload{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return blobstore.Upload{}, err
	}

	mime := header.Header.Get("Content-Type")
	if mime == "" {
		mime = mimetypes.Sniff(data)
	}
	return blobstore.Upload{File: &blobstore.UploadedFile{Name: header.Filename, MIME: mime, Data: data}}, nil
}

// DownloadUpload godoc
// @Summary      Fetch an uploaded image
// @Description  Returns the raw bytes of a previously uploaded image
// @Tags         uploads
// @Produce      image/jpeg,image/png,image/webp,image/gif,application/octet-stream
// @Param        filename  path  string  true  "Stored filename"
// @Success      200  {file}    file    "Image bytes"
// @Failure      400  {string}  string  "Bad filename"
// @Failure      404  {string}  string  "Not found"
// @Router       /api/uploads/{filename} [get]
func (h *APIHandler) DownloadUpload(w http.ResponseWriter, r *http.Request) {
	// chi hands back the raw segment only when it routed on RawPath;
	// otherwise the parameter is already decoded and must not be decoded again.
	name := chi.URLParam(r, "filename")
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(name)
		if err != nil {
			http.Error(w, "Bad filename", http.StatusBadRequest)
			return
		}
		name = decoded
	}

	blob, err := h.Store.Open(name)
	switch {
	case errors.Is(err, blobstore.ErrInvalidName):
		http.Error(w, "Bad filename", http.StatusBadRequest)
		return
	case errors.Is(err, blobstore.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
		return
	case err != nil:
		h.Logger.Error("failed to read upload", "error", err, "request_id", middleware.GetReqID(r.Context()))
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", blob.MIME)
	w.Header().Set("Content-Length", strconv.Itoa(len(blob.Data)))
	w.Header().Set("Cache-Control", "private, max-age=60")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(blob.Data)
	}
}

// ListDemos godoc
// @Summary      List demo images
// @Description  Lists the sample images of the demo folder, newest first
// @Tags         demos
// @Produce      json
// @Success      200  {object}  demosResponse
// @Router       /api/demos [get]
func (h *APIHandler) ListDemos(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, demosResponse{Items: h.Demos.List()})
}

// GetResult godoc
// @Summary      Resolve a result view
// @Description  Picks the image of a result view (src, then demo, then f) and returns the placeholder analysis
// @Tags         results
// @Produce      json
// @Param        id    path   string  true   "Result ID"
// @Param        f     query  string  false  "Uploaded filename"
// @Param        demo  query  string  false  "1 for the built-in sample"
// @Param        src   query  string  false  "Public static path under the demo prefix, /images/ or /gallery/"
// @Success      200  {object}  result.View
// @Router       /api/results/{id} [get]
func (h *APIHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view := h.Results.Resolve(chi.URLParam(r, "id"), result.Query{
		F:    q.Get("f"),
		Demo: q.Get("demo"),
		Src:  q.Get("src"),
	})
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, view)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
