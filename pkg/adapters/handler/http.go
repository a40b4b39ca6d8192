package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/pkamnerd/linkdesk/pkg/core/domain"
	"github.com/pkamnerd/linkdesk/pkg/ports"
	"github.com/pkamnerd/linkdesk/pkg/qr"
)

type LinkHandler struct {
	service ports.LinkService
	baseURL string
	log     *zap.Logger
}

func NewLinkHandler(service ports.LinkService, baseURL string, log *zap.Logger) *LinkHandler {
	return &LinkHandler{service: service, baseURL: baseURL, log: log}
}

// ShortenRequest payload
type ShortenRequest struct {
	URL string `json:"url"`
}

// ShortenResponse payload
type ShortenResponse struct {
	ShortID  string `json:"short_id"`
	ShortURL string `json:"short_url"`
	FullURL  string `json:"full_url"`
	Message  string `json:"message,omitempty"`
}

// QRCodeRequest payload
type QRCodeRequest struct {
	URL   string `json:"url"`
	Color string `json:"color"`
}

// Shorten creates or reuses a short id for the submitted URL
func (h *LinkHandler) Shorten(w http.ResponseWriter, r *http.Request) {
	var req ShortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !isHTTPURL(req.URL) {
		writeError(w, http.StatusBadRequest, "Invalid URL")
		return
	}

	link, reused, err := h.service.Shorten(r.Context(), req.URL)
	if err != nil {
		h.log.Error("shorten failed", zap.String("url", req.URL), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to shorten URL")
		return
	}

	resp := ShortenResponse{
		ShortID:  link.ShortID,
		ShortURL: h.baseURL + "/" + link.ShortID,
		FullURL:  link.FullURL,
	}
	if reused {
		resp.Message = "URL already exists"
	} else {
		h.log.Info("link created", zap.String("short_id", link.ShortID))
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListAll returns every link record, newest first
func (h *LinkHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	links, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("list failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to list URLs")
		return
	}
	writeJSON(w, http.StatusOK, links)
}

// Stats returns the record behind a short id without counting a visit
func (h *LinkHandler) Stats(w http.ResponseWriter, r *http.Request) {
	link, err := h.service.Stats(r.Context(), r.PathValue("short_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Short URL not found")
			return
		}
		h.log.Error("stats failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"short_id":   link.ShortID,
		"full_url":   link.FullURL,
		"created_at": link.CreatedAt,
		"clicks":     link.Clicks,
	})
}

// Delete removes a link by short id
func (h *LinkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	shortID := r.PathValue("short_id")
	if err := h.service.Remove(r.Context(), shortID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Short URL not found")
			return
		}
		h.log.Error("delete failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete URL")
		return
	}

	h.log.Info("link deleted", zap.String("short_id", shortID))
	writeJSON(w, http.StatusOK, map[string]string{"message": "URL deleted successfully"})
}

// Redirect resolves a short id, counts the click and redirects
func (h *LinkHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	shortID := r.PathValue("short_id")
	link, err := h.service.Resolve(r.Context(), shortID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Short URL not found")
			return
		}
		h.log.Error("resolve failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to resolve URL")
		return
	}

	h.log.Info("redirect", zap.String("short_id", shortID), zap.Int64("clicks", link.Clicks))
	http.Redirect(w, r, link.FullURL, http.StatusFound)
}

// QRCode renders the submitted URL as a PNG
func (h *LinkHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	var req QRCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	png, err := qr.Render(req.URL, req.Color)
	if err != nil {
		h.log.Error("qr render failed", zap.String("color", req.Color), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// Root is the liveness endpoint
func (h *LinkHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "URL Shortener Service is running!"})
}

func isHTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
