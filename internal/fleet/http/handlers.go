package http

import (
	"context"
	"net/http"

	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/fleet/domain"
	"github.com/gin-gonic/gin"
)

// Reader is the read side of the master data store.
type Reader interface {
	ActiveDrivers(ctx context.Context) ([]domain.Driver, error)
	Routes(ctx context.Context) ([]domain.Route, error)
	Orders(ctx context.Context) ([]domain.Order, error)
}

// Handler serves read-only master data lists for the dashboard.
type Handler struct {
	reader Reader
}

func New(reader Reader) *Handler {
	return &Handler{reader: reader}
}

// Register registers the master data routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/drivers", h.ListDrivers)
	rg.GET("/routes", h.ListRoutes)
	rg.GET("/orders", h.ListOrders)
}

func (h *Handler) ListDrivers(c *gin.Context) {
	drivers, err := h.reader.ActiveDrivers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list drivers"})
		return
	}

	if drivers == nil {
		drivers = []domain.Driver{}
	}
	c.JSON(http.StatusOK, gin.H{"drivers": drivers})
}

func (h *Handler) ListRoutes(c *gin.Context) {
	routes, err := h.reader.Routes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list routes"})
		return
	}

	if routes == nil {
		routes = []domain.Route{}
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.reader.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
