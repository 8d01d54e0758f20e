package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary      Health check
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status := "connected"
	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		status = "disconnected"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "server is running",
		"database": status,
	})
}
