package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/pkamnerd/linkdesk/pkg/ports"
)

// NewShortURLRouter wires the URL shortener surface. The bare /{short_id}
// wildcard sits below the literal routes, so /all and friends keep
// priority.
func NewShortURLRouter(service ports.LinkService, baseURL string, log *zap.Logger) http.Handler {
	h := NewLinkHandler(service, baseURL, log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("POST /shorten", h.Shorten)
	mux.HandleFunc("GET /all", h.ListAll)
	mux.HandleFunc("GET /stats/{short_id}", h.Stats)
	mux.HandleFunc("DELETE /delete/{short_id}", h.Delete)
	mux.HandleFunc("POST /qrcode", h.QRCode)
	mux.HandleFunc("GET /{short_id}", h.Redirect)

	return CORS(RequestLogger(log)(mux))
}

// NewTodoRouter wires the to-do surface
func NewTodoRouter(service ports.TaskService, log *zap.Logger) http.Handler {
	h := NewTaskHandler(service, log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("POST /items", h.Create)
	mux.HandleFunc("GET /items", h.List)
	mux.HandleFunc("GET /items/{id}", h.Get)
	mux.HandleFunc("PUT /items/{id}", h.Update)
	mux.HandleFunc("DELETE /items/{id}", h.Delete)

	return CORS(RequestLogger(log)(mux))
}
