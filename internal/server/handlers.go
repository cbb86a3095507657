package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yojanabuddy/teachme/internal/analysis"
	"github.com/yojanabuddy/teachme/internal/llm"
	"github.com/yojanabuddy/teachme/internal/session"
)

// maxAnswerLen bounds learner answers; longer submissions are rejected
// before reaching the oracle.
const maxAnswerLen = 8000

// StartSessionRequest is the body of POST /v1/teachme/sessions.
type StartSessionRequest struct {
	NoteID string `json:"note_id" binding:"required"`
}

// SubmitAnswerRequest is the body of POST /v1/teachme/sessions/:id/answers.
type SubmitAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// HandleStartSession handles POST /v1/teachme/sessions.
//
// Response:
//
//	200 OK: session.StartResult
//	404 Not Found: unknown note
//	422 Unprocessable Entity: note has no usable concepts
//	502 Bad Gateway: oracle unavailable
func (h *Handlers) HandleStartSession(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleStartSession")

	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	res, err := h.engine.Start(c.Request.Context(), req.NoteID, userID)
	if err != nil {
		writeEngineError(c, logger, "Start failed", err)
		return
	}

	logger.Info("Session started",
		"session_id", res.SessionID,
		"note_id", req.NoteID,
		"total_concepts", res.TotalConcepts)

	c.JSON(http.StatusOK, res)
}

// HandleSubmitAnswer handles POST /v1/teachme/sessions/:id/answers.
//
// Response:
//
//	200 OK: session.SubmitResult
//	404 Not Found: unknown session
//	403 Forbidden: session belongs to another user
//	409 Conflict: completed session, or a lost concurrent-write race
//	502 Bad Gateway: oracle unavailable or unusable output
func (h *Handlers) HandleSubmitAnswer(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleSubmitAnswer")

	userID, ok := callerID(c)
	if !ok {
		return
	}
	sessionID := c.Param("id")

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}
	if strings.TrimSpace(req.Answer) == "" || len(req.Answer) > maxAnswerLen {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Answer must be non-empty and under the size limit",
			Code:  "INVALID_ANSWER",
		})
		return
	}

	res, err := h.engine.SubmitAnswer(c.Request.Context(), sessionID, userID, req.Answer)
	if err != nil {
		writeEngineError(c, logger, "Submit failed", err)
		return
	}

	logger.Info("Answer processed",
		"session_id", sessionID,
		"action", res.Action,
		"score", res.Concept.UnderstandingScore,
		"mastered", res.Concept.IsMastered,
		"completed", res.Session.IsCompleted)

	c.JSON(http.StatusOK, res)
}

// HandleSummary handles GET /v1/teachme/sessions/:id/summary.
//
// Response:
//
//	200 OK: session.Summary
//	404 Not Found: unknown session
//	403 Forbidden: session belongs to another user
//	409 Conflict: session not completed yet
func (h *Handlers) HandleSummary(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleSummary")

	userID, ok := callerID(c)
	if !ok {
		return
	}

	res, err := h.engine.CompletionSummary(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeEngineError(c, logger, "Summary failed", err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// writeEngineError maps engine errors onto HTTP responses. The learner
// sees a generic message; the log line keeps the operator detail.
func writeEngineError(c *gin.Context, logger *slog.Logger, msg string, err error) {
	statusCode := http.StatusInternalServerError
	errCode := "INTERNAL"
	public := "Something went wrong. Please try again."

	var parseErr *analysis.ParseError
	var unavail *llm.ErrProviderUnavailable

	switch {
	case errors.Is(err, session.ErrNotFound):
		statusCode = http.StatusNotFound
		errCode = "NOT_FOUND"
		public = "Session not found."
	case errors.Is(err, session.ErrNotAuthorized):
		statusCode = http.StatusForbidden
		errCode = "FORBIDDEN"
		public = "You don't have access to this session."
	case errors.Is(err, session.ErrInvalidState):
		statusCode = http.StatusConflict
		errCode = "INVALID_STATE"
		public = "This session can't accept that right now."
	case errors.Is(err, session.ErrConflict):
		statusCode = http.StatusConflict
		errCode = "CONFLICT_RETRY"
		public = "Your session just changed. Please retry."
	case errors.Is(err, session.ErrNoContent):
		statusCode = http.StatusUnprocessableEntity
		errCode = "NO_USABLE_CONTENT"
		public = "This note has no concepts to teach from yet."
	case errors.As(err, &parseErr):
		statusCode = http.StatusBadGateway
		errCode = "ORACLE_MALFORMED"
		public = "The tutor had trouble with that one. Please resubmit your answer."
	case errors.As(err, &unavail):
		statusCode = http.StatusBadGateway
		errCode = "ORACLE_UNAVAILABLE"
		public = "The tutor is briefly unavailable. Please resubmit your answer."
	}

	if statusCode >= 500 {
		logger.Error(msg, "error", err)
	} else {
		logger.Warn(msg, "error", err)
	}

	c.JSON(statusCode, ErrorResponse{Error: public, Code: errCode})
}
