package handlers

import (
	"context"
	"net/http"

	"study-service/internal/models"
	"study-service/internal/service"

	"github.com/gin-gonic/gin"
)

type MaterialHandler struct {
	Service *service.MaterialService
}

func NewMaterialHandler(s *service.MaterialService) *MaterialHandler {
	return &MaterialHandler{Service: s}
}

func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var req struct {
		Title      string `json:"title" binding:"required"`
		Content    string `json:"content" binding:"required"`
		SourceType string `json:"source_type" binding:"required"`
		SourceURL  string `json:"source_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	material, err := h.Service.CreateMaterial(context.Background(), currentUser(c), req.Title, req.Content, req.SourceType, req.SourceURL)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, material)
}

func (h *MaterialHandler) GetMaterial(c *gin.Context) {
	material, err := h.Service.GetMaterial(context.Background(), c.Param("materialId"), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, material)
}

func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	page, perPage := pageParams(c)
	materials, total, err := h.Service.ListMaterials(context.Background(), currentUser(c), page, perPage)
	if err != nil {
		writeError(c, err)
		return
	}
	if materials == nil {
		materials = []models.Material{}
	}
	c.JSON(http.StatusOK, gin.H{
		"materials": materials,
		"total":     total,
		"page":      page,
		"per_page":  perPage,
	})
}

func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	if err := h.Service.DeleteMaterial(context.Background(), c.Param("materialId"), currentUser(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// ListQuestions returns the material's questions without correct answers.
func (h *MaterialHandler) ListQuestions(c *gin.Context) {
	questions, err := h.Service.ListQuestions(context.Background(), c.Param("materialId"), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"questions":       questions,
		"total_questions": len(questions),
	})
}

func (h *MaterialHandler) ListFlashcards(c *gin.Context) {
	flashcards, err := h.Service.ListFlashcards(context.Background(), c.Param("materialId"), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"flashcards":     flashcards,
		"total_returned": len(flashcards),
	})
}

// AddQuestions stores a batch of generated questions for the material.
func (h *MaterialHandler) AddQuestions(c *gin.Context) {
	var req struct {
		Questions []models.Question `json:"questions" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	if err := h.Service.AddQuestions(context.Background(), c.Param("materialId"), currentUser(c), req.Questions); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"created": len(req.Questions)})
}

// AddFlashcards stores a batch of generated flashcards for the material.
func (h *MaterialHandler) AddFlashcards(c *gin.Context) {
	var req struct {
		Flashcards []models.Flashcard `json:"flashcards" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	if err := h.Service.AddFlashcards(context.Background(), c.Param("materialId"), currentUser(c), req.Flashcards); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"created": len(req.Flashcards)})
}
