package handlers

import (
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sbilibin2017/invest-ledger/internal/dashboard"
	"github.com/sbilibin2017/invest-ledger/internal/logger"
	"github.com/sbilibin2017/invest-ledger/internal/models"
	"github.com/sbilibin2017/invest-ledger/internal/services"
)

const streamWriteTimeout = 10 * time.Second

// Stream message types
const (
	StreamView  = "view"
	StreamClear = "clear"
	StreamPing  = "ping"
	StreamPong  = "pong"
)

// StreamMessage is one frame of the dashboard stream
// swagger:model StreamMessage
type StreamMessage struct {
	Type string                `json:"type"`
	View *models.DashboardView `json:"view,omitempty"`
}

// NewUpgrader returns a WebSocket upgrader accepting the given browser
// origins. "*" accepts any origin.
func NewUpgrader(allowedOrigins []string) *websocket.Upgrader {
	return &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
		},
	}
}

// wsRenderer renders dashboard views as JSON frames on a WebSocket.
// Once closed it drops every frame.
type wsRenderer struct {
	conn   *websocket.Conn
	mu     sync.Mutex
	closed bool
}

// close stops further writes; the peer is gone.
func (r *wsRenderer) close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}

func (r *wsRenderer) Render(view models.DashboardView) {
	r.write(StreamMessage{Type: StreamView, View: &view})
}

func (r *wsRenderer) Clear() {
	r.write(StreamMessage{Type: StreamClear})
}

func (r *wsRenderer) write(msg StreamMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	_ = r.conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
	if err := r.conn.WriteJSON(msg); err != nil {
		logger.Log.Warnw("failed to write dashboard frame", "type", msg.Type, "error", err)
	}
}

// NewDashboardStreamHandler returns a WebSocket handler that pushes a new
// dashboard view on every change of the caller's account, and a clear frame
// when the feed fails. Closing the socket releases the subscription.
// @Summary Live dashboard
// @Description WebSocket. Frames are {"type":"view","view":{...}} or {"type":"clear"}. Send {"type":"ping"} to receive a pong.
// @Tags dashboard
// @Router /dashboard/stream [get]
// @Security BearerAuth
func NewDashboardStreamHandler(feed dashboard.AccountSubscriber, upgrader *websocket.Upgrader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(r)
		if !ok {
			writeError(w, services.ErrUnauthenticated)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Errorw("failed to upgrade to WebSocket", "error", err)
			return
		}
		defer conn.Close()

		renderer := &wsRenderer{conn: conn}
		presenter := dashboard.NewPresenter(feed, renderer)
		if err := presenter.Start(r.Context(), identity.UserID); err != nil {
			return
		}
		defer presenter.Stop()

		for {
			var msg StreamMessage
			if err := conn.ReadJSON(&msg); err != nil {
				renderer.close()
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.Log.Warnw("dashboard stream closed", "userID", identity.UserID, "error", err)
				}
				return
			}
			if msg.Type == StreamPing {
				renderer.write(StreamMessage{Type: StreamPong})
			}
		}
	}
}
