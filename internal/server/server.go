// Package server exposes the tutoring engine over HTTP. Authentication
// happens upstream at the API gateway; this service trusts the user id
// it forwards and enforces per-session ownership on top of it.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yojanabuddy/teachme/internal/session"
)

// ServiceVersion is reported by the health endpoint.
const ServiceVersion = "0.1.0"

// userHeader carries the authenticated user id set by the gateway.
const userHeader = "X-User-ID"

// ErrorResponse is the uniform error body. Error is safe to show the
// learner; Code is for clients and dashboards.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Handlers contains the HTTP handlers for the tutoring service.
type Handlers struct {
	engine *session.Engine
}

// NewHandlers creates handlers for the given engine.
func NewHandlers(engine *session.Engine) *Handlers {
	return &Handlers{engine: engine}
}

// Router builds the gin engine with all routes registered.
func (h *Handlers) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", h.HandleHealth)

	v1 := r.Group("/v1/teachme")
	{
		v1.POST("/sessions", h.HandleStartSession)
		v1.POST("/sessions/:id/answers", h.HandleSubmitAnswer)
		v1.GET("/sessions/:id/summary", h.HandleSummary)
	}

	return r
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": ServiceVersion})
}

// requestLogger logs one line per request with its id and latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := getOrCreateRequestID(c)

		c.Next()

		slog.Info("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds())
	}
}

// getOrCreateRequestID returns the inbound X-Request-ID or mints one.
func getOrCreateRequestID(c *gin.Context) string {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Header("X-Request-ID", id)
	return id
}

// callerID returns the gateway-authenticated user id, or fails the
// request when the header is missing.
func callerID(c *gin.Context) (string, bool) {
	id := c.GetHeader(userHeader)
	if id == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "Missing user identity",
			Code:  "NO_USER",
		})
		return "", false
	}
	return id, true
}
