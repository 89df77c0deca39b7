package routes

import (
	controller "go-food-ordering/controllers"

	"github.com/gin-gonic/gin"
)

// FoodRoutes mounts the admin catalog under an already guarded group.
func FoodRoutes(admin *gin.RouterGroup, fc *controller.FoodController, cc *controller.CategoryController) {
	admin.GET("/foods", fc.GetFoods())
	admin.POST("/foods", fc.CreateFood())
	admin.PATCH("/foods/:food_id", fc.UpdateFood())
	admin.DELETE("/foods/:food_id", fc.DeleteFood())

	admin.GET("/categories", cc.GetCategories())
	admin.POST("/categories", cc.CreateCategory())
	admin.DELETE("/categories/:category_id", cc.DeleteCategory())
}

func MenuRoutes(incomingRoutes *gin.Engine, mc *controller.MenuController) {
	incomingRoutes.GET("/menu", mc.GetMenu())
	incomingRoutes.GET("/menu/categories", mc.GetCategoryNames())
}
