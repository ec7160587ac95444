// Package server exposes the relay over HTTP: the retained messages, the live
// SSE and websocket streams, the push endpoint and the inspector page.
package server

import (
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/x4b1/relay"
	"github.com/x4b1/relay/broker/pubsub"
	"github.com/x4b1/relay/inspect"
)

const defaultKeepalive = 15 * time.Second

// Option defines the optional parameters for Server.
type Option func(*Server)

// WithLogger sets the request and connection logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// WithKeepalive sets the interval of the SSE keepalive comments and websocket pings.
func WithKeepalive(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.keepalive = d
		}
	}
}

// WithAllowedOrigins restricts the cross origin requests to the given origins. Any origin is allowed when empty.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// New returns a Server exposing r.
func New(r *relay.Relay, opts ...Option) *Server {
	s := Server{
		relay:     r,
		log:       zerolog.Nop(),
		keepalive: defaultKeepalive,
	}

	for _, opt := range opts {
		opt(&s)
	}

	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(req *http.Request) bool {
			return s.originAllowed(req.Header.Get("Origin"))
		},
	}
	s.inspector = inspect.NewInspector(r)

	return &s
}

// Server is the HTTP shell of the relay.
type Server struct {
	relay          *relay.Relay
	log            zerolog.Logger
	keepalive      time.Duration
	allowedOrigins []string
	upgrader       websocket.Upgrader
	inspector      *inspect.Inspector
}

// Routes returns the handler serving every endpoint.
func (s *Server) Routes() http.Handler {
	engine := gin.New()
	engine.Use(s.requestLogger(), gin.Recovery(), s.corsMiddleware())
	engine.GET("/", gin.WrapH(s.inspector))
	engine.GET("/health", s.handleHealth)
	engine.GET("/messages", s.handleMessages)
	engine.GET("/events", s.handleEvents)
	engine.GET("/ws", s.handleWebsocket)
	engine.POST("/push", s.handlePush)
	engine.POST("/example", s.handleExample)
	return engine
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleMessages returns the retained messages in arrival order.
func (s *Server) handleMessages(c *gin.Context) {
	c.JSON(http.StatusOK, s.relay.Messages())
}

// handlePush ingests a pubsub push envelope or a raw JSON body. Once the message is
// stored it answers success, whatever happens with the broadcast.
func (s *Server) handlePush(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reading body"})
		return
	}

	msg, ok, err := pubsub.ParsePush(body)
	if err == nil {
		if ok {
			err = s.relay.Ingest(c.Request.Context(), msg)
		} else {
			msg, err = s.relay.IngestPush(c.Request.Context(), body)
		}
	}

	if err != nil {
		var decodeErr *relay.DecodeError
		switch {
		case errors.As(err, &decodeErr):
			s.log.Warn().Err(err).Msg("malformed push message")
			c.JSON(http.StatusBadRequest, gin.H{"error": decodeErr.Error()})
		case errors.Is(err, relay.ErrClosed):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			s.log.Error().Err(err).Msg("ingesting push message")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ingesting message"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "id": msg.ID})
}

type exampleRequest struct {
	Message string `json:"message" binding:"required"`
}

// handleExample echoes the received message. It stores nothing and is meant to check a
// client can reach the relay.
func (s *Server) handleExample(c *gin.Context) {
	var req exampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "success",
		"message":         "example endpoint, subscribe to /events to receive the relayed messages",
		"receivedMessage": req.Message,
	})
}

func (s *Server) originAllowed(origin string) bool {
	return len(s.allowedOrigins) == 0 || slices.Contains(s.allowedOrigins, origin)
}
