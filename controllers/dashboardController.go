package controllers

import (
	"go-food-ordering/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardController struct {
	orders *services.AdminOrderService
	log    *zap.Logger
}

func NewDashboardController(orders *services.AdminOrderService, log *zap.Logger) *DashboardController {
	return &DashboardController{orders: orders, log: log}
}

func (dc *DashboardController) GetDashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := dc.orders.Aggregates(c.Request.Context())
		if err != nil {
			respondError(c, dc.log, err)
			return
		}
		respond(c, "Dashboard fetched successfully", stats)
	}
}
