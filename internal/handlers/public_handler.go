package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garageops/workshop-api/internal/domain/billing"
)

type PublicHandler struct{}

func NewPublicHandler() *PublicHandler {
	return &PublicHandler{}
}

// GetRate exposes the flat hourly rate for display and client-side
// validation.
func (h *PublicHandler) GetRate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"hourly_rate": billing.HourlyRate,
		"billing":     "per started hour",
	})
}
