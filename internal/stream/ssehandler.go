package stream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	aqm "github.com/appetiteclub/apt"
	"github.com/go-chi/chi/v5"
)

// Heartbeat cadence. Intermediary proxies tend to drop idle connections
// after 30-60s, so stay comfortably under that.
const keepaliveInterval = 25 * time.Second

// SSEHandler serves the change-subscription stream for display clients.
// Each connection subscribes to its screen's channel on the bus and is
// unregistered when the client disconnects.
type SSEHandler struct {
	bus    *Bus
	logger aqm.Logger
}

// NewSSEHandler creates the SSE boundary handler.
func NewSSEHandler(bus *Bus, logger aqm.Logger) *SSEHandler {
	if logger == nil {
		logger = aqm.NewNoopLogger()
	}
	return &SSEHandler{bus: bus, logger: logger}
}

// RegisterRoutes registers the stream endpoint.
func (h *SSEHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/stream/{screenId}", h.Stream)
}

// Stream handles GET /api/stream/{screenId}.
func (h *SSEHandler) Stream(w http.ResponseWriter, r *http.Request) {
	screenID := chi.URLParam(r, "screenId")
	if screenID == "" {
		aqm.RespondError(w, http.StatusBadRequest, "Missing screenId parameter")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		aqm.RespondError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache, no-transform")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	sub := h.bus.Subscribe(screenID)
	defer h.bus.Unsubscribe(sub)

	h.logger.Info("display connected", "screen_id", screenID, "subscriber_id", sub.ID)

	// Confirm the connection and hint the browser's reconnect delay.
	writeEvent(w, Event{Type: EventConnected, ScreenID: screenID})
	fmt.Fprintf(w, "retry: 2000\n\n")
	flusher.Flush()

	ticker := time.NewTicker(keepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("display disconnected", "screen_id", screenID, "subscriber_id", sub.ID)
			return

		case <-ticker.C:
			// Comment frame: keeps intermediaries from timing the
			// connection out, carries nothing consumers act on.
			fmt.Fprintf(w, ": keepalive\n\n")
			flusher.Flush()

		case evt, open := <-sub.Events():
			if !open {
				h.logger.Info("subscription closed", "screen_id", screenID, "subscriber_id", sub.ID)
				return
			}
			writeEvent(w, evt)
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, evt Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
}
