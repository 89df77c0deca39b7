package controllers

import (
	"go-food-ordering/apperrors"
	"go-food-ordering/models"
	"go-food-ordering/realtime"
	"go-food-ordering/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SocketController serves the live views. Each socket owns its subscriptions
// and drops them when the client disconnects.
type SocketController struct {
	catalog  *services.CatalogService
	admin    *services.AdminOrderService
	menu     *services.MenuService
	customer *services.CustomerOrderService
	log      *zap.Logger
}

func NewSocketController(catalog *services.CatalogService, admin *services.AdminOrderService, menu *services.MenuService, customer *services.CustomerOrderService, log *zap.Logger) *SocketController {
	return &SocketController{catalog: catalog, admin: admin, menu: menu, customer: customer, log: log}
}

func pusher[T any](send func(realtime.Message), event string) func(T, error) {
	return func(v T, err error) {
		if err != nil {
			send(realtime.Message{Event: "error", Payload: apperrors.From(err)})
			return
		}
		send(realtime.Message{Event: event, Payload: v})
	}
}

func (sc *SocketController) serve(c *gin.Context, view realtime.View) {
	realtime.Serve(c.Writer, c.Request, sc.log, view)
}

func (sc *SocketController) Dashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc.serve(c, func(send func(realtime.Message)) func() {
			return sc.admin.WatchAggregates(pusher[*services.DashboardStats](send, "dashboard"))
		})
	}
}

func (sc *SocketController) Foods() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc.serve(c, func(send func(realtime.Message)) func() {
			return sc.catalog.WatchFoods(pusher[[]models.Food](send, "foods"))
		})
	}
}

func (sc *SocketController) Categories() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc.serve(c, func(send func(realtime.Message)) func() {
			return sc.catalog.WatchCategories(pusher[[]models.CategoryRow](send, "categories"))
		})
	}
}

func (sc *SocketController) Menu() gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.DefaultQuery("category", services.AllCategories)
		sc.serve(c, func(send func(realtime.Message)) func() {
			return sc.menu.WatchMenu(category, pusher[[]models.Food](send, "menu"))
		})
	}
}

func (sc *SocketController) MyOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := uid(c)
		sc.serve(c, func(send func(realtime.Message)) func() {
			return sc.customer.WatchMyOrders(userID, pusher[*services.MyOrders](send, "orders"))
		})
	}
}
