package controllers

import (
	"net/http"

	"go-food-ordering/apperrors"
	"go-food-ordering/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryController struct {
	catalog *services.CatalogService
	log     *zap.Logger
}

func NewCategoryController(catalog *services.CatalogService, log *zap.Logger) *CategoryController {
	return &CategoryController{catalog: catalog, log: log}
}

type categoryRequest struct {
	Name string `json:"name" form:"name"`
}

// GetCategories returns each category with its derived item count.
func (cc *CategoryController) GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := cc.catalog.CategoryTable(c.Request.Context())
		if err != nil {
			respondError(c, cc.log, err)
			return
		}
		respond(c, "Categories fetched successfully", rows)
	}
}

func (cc *CategoryController) CreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categoryRequest
		if err := c.ShouldBind(&in); err != nil {
			respondError(c, cc.log, apperrors.New(apperrors.KindValidation, err.Error(), err))
			return
		}
		category, err := cc.catalog.AddCategory(c.Request.Context(), in.Name)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindWrite {
				err = apperrors.Write("Error adding category", err)
			}
			respondError(c, cc.log, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "message": services.CategoryAdded, "data": category})
	}
}

func (cc *CategoryController) DeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cc.catalog.DeleteCategory(c.Request.Context(), c.Param("category_id"), confirmed(c)); err != nil {
			respondError(c, cc.log, err)
			return
		}
		respond(c, "Category deleted", nil)
	}
}
