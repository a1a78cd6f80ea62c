package http

import "github.com/gin-gonic/gin"

// Register registers the simulation routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/simulation/run", h.RunSimulation)
	rg.GET("/simulation/history", h.GetHistory)
	rg.GET("/simulation/runs/:id", h.GetRun)
}
