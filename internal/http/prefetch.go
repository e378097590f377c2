package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/mrlokans/mybible/internal/prefetch"
)

const wsWriteTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API serves a local single-user client on any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// PrefetchHandlers start, inspect and cancel offline downloads.
type PrefetchHandlers struct {
	prefetch PrefetchController
	baseCtx  context.Context
}

func NewPrefetchHandlers(ctrl PrefetchController, baseCtx context.Context) *PrefetchHandlers {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &PrefetchHandlers{prefetch: ctrl, baseCtx: baseCtx}
}

// POST /api/prefetch/:version
func (ph *PrefetchHandlers) Start(c *gin.Context) {
	version, ok := parseVersion(c, c.Param("version"), "")
	if !ok {
		return
	}

	run, err := ph.prefetch.Start(ph.baseCtx, version, nil)
	if errors.Is(err, prefetch.ErrAlreadyRunning) {
		existing, _ := ph.prefetch.Active(version)
		var current any
		if existing != nil {
			current = existing.Progress()
		}
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "already_running", Details: current})
		return
	}
	if err != nil {
		respondInternalError(c, err, "start prefetch")
		return
	}
	respondAccepted(c, "prefetch started", run.Progress())
}

// GET /api/prefetch/:version
func (ph *PrefetchHandlers) Status(c *gin.Context) {
	version, ok := parseVersion(c, c.Param("version"), "")
	if !ok {
		return
	}
	p, err := ph.prefetch.Status(version)
	if err != nil {
		respondInternalError(c, err, "prefetch status")
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/prefetch/:version
func (ph *PrefetchHandlers) Abort(c *gin.Context) {
	version, ok := parseVersion(c, c.Param("version"), "")
	if !ok {
		return
	}
	if !ph.prefetch.Abort(version) {
		respondNotFound(c, "active prefetch")
		return
	}
	respondSuccess(c, "prefetch cancelled")
}

// GET /ws/prefetch/:version streams progress until the run ends. With no
// active run the current snapshot is sent and the socket closed.
func (ph *PrefetchHandlers) Stream(c *gin.Context) {
	version, ok := parseVersion(c, c.Param("version"), "")
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[PREFETCH] WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	run, active := ph.prefetch.Active(version)
	if !active {
		p, err := ph.prefetch.Status(version)
		if err != nil {
			writeWSJSON(conn, ErrorResponse{Error: err.Error()})
		} else {
			writeWSJSON(conn, p)
		}
		closeWS(conn)
		return
	}

	events, unsubscribe := run.Subscribe()
	defer unsubscribe()

	// Reads only detect the client going away.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case p, open := <-events:
			if !open {
				writeWSJSON(conn, run.Progress())
				closeWS(conn)
				return
			}
			if err := writeWSJSON(conn, p); err != nil {
				return
			}
		case <-gone:
			return
		}
	}
}

func writeWSJSON(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteJSON(v)
}

func closeWS(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
}
