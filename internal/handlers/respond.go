package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luminasalon/backend/internal/database"
	"github.com/luminasalon/backend/internal/models"
)

// ErrorResponse is the JSON shape of error replies
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is the JSON shape of simple confirmations
type SuccessResponse struct {
	Message string `json:"message"`
}

// respondUpdateError is respondError for writes whose validation failures
// arrive as plain errors; those become 400s instead of 500s.
func respondUpdateError(c *gin.Context, err error) {
	if errors.Is(err, database.ErrNotFound) || errors.Is(err, database.ErrInvalidID) ||
		errors.Is(err, models.ErrOverpayment) || errors.Is(err, models.ErrInvalidPaymentAmount) {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// respondError maps store and domain errors onto HTTP statuses. Unmapped
// errors become a generic 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, database.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
	case errors.Is(err, models.ErrOverpayment):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidPaymentAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
