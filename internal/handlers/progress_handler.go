package handlers

import (
	"context"
	"net/http"

	"study-service/internal/metrics"
	"study-service/internal/models"
	"study-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Service *service.ProgressService
}

func NewProgressHandler(s *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{Service: s}
}

// GetProgress returns the raw progress snapshot for a material.
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	progress, err := h.Service.GetProgress(context.Background(), c.Param("materialId"), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// GetStats returns detailed progress statistics for a material.
func (h *ProgressHandler) GetStats(c *gin.Context) {
	stats, err := h.Service.GetMaterialStats(context.Background(), c.Param("materialId"), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetWeakAreas returns the category-level weakness analysis for a material.
func (h *ProgressHandler) GetWeakAreas(c *gin.Context) {
	report, err := h.Service.GetWeakAreas(context.Background(), c.Param("materialId"), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetWeakTopics returns the persisted weak-topic labels for a material.
func (h *ProgressHandler) GetWeakTopics(c *gin.Context) {
	topics, err := h.Service.GetWeakTopics(context.Background(), c.Param("materialId"), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

// ListMaterialsProgress returns the paginated per-material overview.
func (h *ProgressHandler) ListMaterialsProgress(c *gin.Context) {
	page, perPage := pageParams(c)
	list, err := h.Service.ListMaterialProgress(context.Background(), currentUser(c), page, perPage)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateFlashcardReview merges flashcard review scores into the progress row.
func (h *ProgressHandler) UpdateFlashcardReview(c *gin.Context) {
	h.updateReview(c, models.ScoreKindFlashcard)
}

// UpdateQuestionReview merges question review scores into the progress row.
func (h *ProgressHandler) UpdateQuestionReview(c *gin.Context) {
	h.updateReview(c, models.ScoreKindQuestion)
}

func (h *ProgressHandler) updateReview(c *gin.Context, kind models.ScoreKind) {
	var req struct {
		Scores map[string]float64 `json:"scores" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	progress, err := h.Service.UpdateProgress(context.Background(), c.Param("materialId"), currentUser(c), req.Scores, kind)
	if err != nil {
		metrics.ProgressMerges.WithLabelValues("error").Inc()
		writeError(c, err)
		return
	}
	metrics.ProgressMerges.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, progress)
}
