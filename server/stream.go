package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/x4b1/relay"
)

const writeWait = 5 * time.Second

func (s *Server) openStream(ctx context.Context, c *gin.Context) (*relay.Stream, bool) {
	stream, err := s.relay.OpenStream(ctx)
	if err == nil {
		return stream, true
	}

	if errors.Is(err, relay.ErrClosed) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	} else {
		s.log.Error().Err(err).Msg("opening stream")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "opening stream"})
	}

	return nil, false
}

// handleEvents streams the snapshot and every broadcast as server sent events.
func (s *Server) handleEvents(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	stream, ok := s.openStream(ctx, c)
	if !ok {
		return
	}

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	if _, err := fmt.Fprint(c.Writer, ": connected\n\n"); err != nil {
		return
	}
	c.Writer.Flush()

	ticker := time.NewTicker(s.keepalive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stream.Done():
			s.log.Debug().Str("observer", stream.ID()).Msg("sse stream closed by relay")
			return
		case data := <-stream.Events():
			if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", data); err != nil {
				return
			}
			c.Writer.Flush()
		case <-ticker.C:
			if _, err := fmt.Fprint(c.Writer, ": keepalive\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}

// handleWebsocket sends the snapshot and every broadcast as websocket text frames.
// Client frames are discarded, reading only detects the disconnection.
func (s *Server) handleWebsocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("upgrading websocket")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := s.relay.OpenStream(ctx)
	if err != nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, err.Error()),
			time.Now().Add(writeWait))
		return
	}

	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.keepalive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stream.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "stream closed"),
				time.Now().Add(writeWait))
			return
		case data := <-stream.Events():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
