package controllers

import (
	"go-food-ordering/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MenuController struct {
	menu *services.MenuService
	log  *zap.Logger
}

func NewMenuController(menu *services.MenuService, log *zap.Logger) *MenuController {
	return &MenuController{menu: menu, log: log}
}

func (mc *MenuController) GetMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		foods, err := mc.menu.ListMenu(c.Request.Context(), c.DefaultQuery("category", services.AllCategories))
		if err != nil {
			respondError(c, mc.log, err)
			return
		}
		respond(c, "Menu items fetched successfully", foods)
	}
}

func (mc *MenuController) GetCategoryNames() gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := mc.menu.CategoryNames(c.Request.Context())
		if err != nil {
			respondError(c, mc.log, err)
			return
		}
		respond(c, "Categories fetched successfully", names)
	}
}
