package handlers

import (
	"context"
	"net/http"

	"study-service/internal/metrics"
	"study-service/internal/models"
	"study-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Service *service.SessionService
	// DefaultQuizSize is used when a creation request does not name a count.
	DefaultQuizSize int
}

func NewSessionHandler(s *service.SessionService, defaultQuizSize int) *SessionHandler {
	return &SessionHandler{Service: s, DefaultQuizSize: defaultQuizSize}
}

// CreateSession starts a quiz: samples a random question subset, pins its
// order server-side, and returns the questions without answers.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req struct {
		NumQuestions int `json:"num_questions"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request format",
				"details": err.Error(),
			})
			return
		}
	}
	count := req.NumQuestions
	if count == 0 {
		count = h.DefaultQuizSize
	}

	session, questions, err := h.Service.CreateSession(context.Background(), c.Param("materialId"), currentUser(c), count)
	if err != nil {
		writeError(c, err)
		return
	}
	metrics.QuizSessionsCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{
		"session_id":      session.SessionID,
		"total_questions": len(questions),
		"questions":       questions,
	})
}

// EvaluateSession grades a submission against the pinned question order.
func (h *SessionHandler) EvaluateSession(c *gin.Context) {
	var req struct {
		Answers []models.QuestionAnswer `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid answer format",
			"details": err.Error(),
		})
		return
	}

	result, err := h.Service.Evaluate(
		context.Background(),
		c.Param("sessionId"),
		c.Param("materialId"),
		currentUser(c),
		req.Answers,
	)
	if err != nil {
		metrics.QuizEvaluations.WithLabelValues("error").Inc()
		writeError(c, err)
		return
	}
	metrics.QuizEvaluations.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, result)
}
