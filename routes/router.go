package routes

import (
	controller "go-food-ordering/controllers"
	"go-food-ordering/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Users      *controller.UserController
	Foods      *controller.FoodController
	Categories *controller.CategoryController
	Orders     *controller.OrderController
	Dashboard  *controller.DashboardController
	Menu       *controller.MenuController
	Cart       *controller.CartController
	Profile    *controller.ProfileController
	Sockets    *controller.SocketController
}

// Register mounts every route. auth and cartSession are the configured
// Authentication and CartSession middleware.
func Register(router *gin.Engine, h Handlers, auth, cartSession gin.HandlerFunc) {
	adminOnly := middleware.AdminOnly()

	UserRoutes(router, h.Users, auth)
	MenuRoutes(router, h.Menu)

	admin := router.Group("/admin", auth, adminOnly)
	FoodRoutes(admin, h.Foods, h.Categories)
	AdminOrderRoutes(admin, h.Orders, h.Dashboard)

	CustomerRoutes(router, auth, cartSession, h.Cart, h.Orders, h.Profile)
	SocketRoutes(router, auth, adminOnly, h.Sockets)
}
