package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/settings"
)

var eventsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origins are policed by the CORS layer on the HTTP side.
		return true
	},
}

// EventsHandler pushes settings changes to connected clients so open
// tabs stay in sync when language, theme, or the API key change.
type EventsHandler struct {
	settings *settings.Manager
	log      *zap.Logger
}

func NewEventsHandler(st *settings.Manager, log *zap.Logger) *EventsHandler {
	return &EventsHandler{settings: st, log: log}
}

type settingsEvent struct {
	Type    string `json:"type"`
	Setting string `json:"setting"`
	Value   string `json:"value"`
}

// Serve upgrades the connection and streams settings change events until
// the client disconnects.
func (h *EventsHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := eventsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	changes, cancel := h.settings.Subscribe()
	defer cancel()

	done := make(chan struct{})

	// Writer: forward settings changes to this connection.
	go func() {
		defer close(done)
		for change := range changes {
			evt := settingsEvent{
				Type:    "settings_changed",
				Setting: change.Setting,
				Value:   change.Value,
			}
			if err := conn.WriteJSON(evt); err != nil {
				h.log.Debug("websocket write failed", zap.Error(err))
				return
			}
		}
	}()

	// Reader: drain pings and detect disconnects.
	conn.SetReadLimit(4 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		return nil
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			cancel()
			<-done
			return
		}

		var msg struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if msg.Type == "ping" {
			_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		}
	}
}
