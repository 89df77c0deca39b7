package routes

import (
	controller "go-food-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func AdminOrderRoutes(admin *gin.RouterGroup, oc *controller.OrderController, dc *controller.DashboardController) {
	admin.GET("/orders", oc.GetOrders())
	admin.GET("/orders/:order_id", oc.GetOrder())
	admin.PATCH("/orders/:order_id/status", oc.UpdateOrderStatus())
	admin.GET("/dashboard", dc.GetDashboard())
}

// CustomerRoutes needs the cart session on every route and auth on the
// signed-in ones.
func CustomerRoutes(incomingRoutes *gin.Engine, auth, cartSession gin.HandlerFunc, cc *controller.CartController, oc *controller.OrderController, pc *controller.ProfileController) {
	cart := incomingRoutes.Group("/cart", cartSession)
	cart.GET("", cc.GetCart())
	cart.POST("/items", cc.AddItem())
	cart.PATCH("/items/:index", cc.ChangeQuantity())
	cart.DELETE("/items/:index", cc.RemoveItem())
	cart.GET("/summary", cc.GetSummary())

	incomingRoutes.POST("/orders", cartSession, auth, oc.CreateOrder())
	incomingRoutes.GET("/orders/me", auth, oc.GetMyOrders())

	profile := incomingRoutes.Group("/profile", auth)
	profile.GET("", pc.GetProfile())
	profile.PATCH("", pc.UpdateProfile())
	profile.PUT("/address", pc.UpdateAddress())
}
