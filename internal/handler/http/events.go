package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/handler/http/response"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/jwt"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/sse"
)

type EventsHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventsHandlerImpl struct {
	hub        *sse.Hub
	jwtService jwt.Service
}

func NewEventsHandler(hub *sse.Hub, jwtService jwt.Service) EventsHandler {
	return &eventsHandlerImpl{
		hub:        hub,
		jwtService: jwtService,
	}
}

// Stream implements EventsHandler. The panel subscribes here and re-renders
// on every data-changed notification instead of polling.
func (h *eventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// EventSource cannot set headers, so the short-lived token rides the URL.
	token := r.URL.Query().Get("token")
	if token == "" {
		response.Unauthorized(w, "SSE token is required")
		return
	}
	if _, err := h.jwtService.ValidateSSEToken(token); err != nil {
		response.Unauthorized(w, "Invalid SSE token")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events, cleanup := h.hub.Subscribe()
	defer cleanup()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": heartbeat\n\n")
			flusher.Flush()
		case event, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, payload)
			flusher.Flush()
		}
	}
}
