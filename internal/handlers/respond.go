package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"study-service/internal/apperr"

	"github.com/gin-gonic/gin"
)

// writeError maps the service error taxonomy to HTTP statuses. Anything
// without a code is an internal failure and stays opaque to the client.
func writeError(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	status := http.StatusInternalServerError
	switch e.Code {
	case apperr.CodeValidation, apperr.CodeInvalidAnswer:
		status = http.StatusBadRequest
	case apperr.CodeNotFound, apperr.CodeSessionExpired:
		status = http.StatusNotFound
	case apperr.CodeForbidden:
		status = http.StatusForbidden
	case apperr.CodeConflict:
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": e.Message, "code": string(e.Code)})
}

// currentUser reads the authenticated user set by the upstream gateway.
func currentUser(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if err != nil || perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}
