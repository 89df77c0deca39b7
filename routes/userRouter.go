package routes

import (
	controller "go-food-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine, uc *controller.UserController, auth gin.HandlerFunc) {
	incomingRoutes.POST("/users/signup", uc.SignUp())
	incomingRoutes.POST("/users/login", uc.Login())
	incomingRoutes.POST("/users/logout", auth, uc.Logout())
	incomingRoutes.GET("/users/me", auth, uc.Me())
}
