package routes

import (
	controller "go-food-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func SocketRoutes(incomingRoutes *gin.Engine, auth, adminOnly gin.HandlerFunc, sc *controller.SocketController) {
	admin := incomingRoutes.Group("/ws/admin", auth, adminOnly)
	admin.GET("/dashboard", sc.Dashboard())
	admin.GET("/foods", sc.Foods())
	admin.GET("/categories", sc.Categories())

	incomingRoutes.GET("/ws/menu", sc.Menu())
	incomingRoutes.GET("/ws/orders/me", auth, sc.MyOrders())
}
