package controllers

import (
	"errors"
	"net/http"

	"go-food-ordering/apperrors"
	"go-food-ordering/media"
	"go-food-ordering/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxImageSize = 10 << 20

type FoodController struct {
	catalog *services.CatalogService
	log     *zap.Logger
}

func NewFoodController(catalog *services.CatalogService, log *zap.Logger) *FoodController {
	return &FoodController{catalog: catalog, log: log}
}

func (fc *FoodController) GetFoods() gin.HandlerFunc {
	return func(c *gin.Context) {
		foods, err := fc.catalog.ListFoods(c.Request.Context())
		if err != nil {
			respondError(c, fc.log, err)
			return
		}
		respond(c, "Food items fetched successfully", foods)
	}
}

// CreateFood takes a multipart form with an optional "image" file.
func (fc *FoodController) CreateFood() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.FoodInput
		if err := c.ShouldBind(&in); err != nil {
			respondError(c, fc.log, apperrors.New(apperrors.KindValidation, err.Error(), err))
			return
		}

		var image *media.File
		header, err := c.FormFile("image")
		switch {
		case err == nil:
			if header.Size > maxImageSize {
				respondError(c, fc.log, apperrors.Validation("Image is larger than 10MB."))
				return
			}
			f, err := header.Open()
			if err != nil {
				respondError(c, fc.log, apperrors.Validation("Could not read the image."))
				return
			}
			defer f.Close()
			image = &media.File{
				Name:        header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Size:        header.Size,
				Body:        f,
			}
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		default:
			respondError(c, fc.log, apperrors.New(apperrors.KindValidation, err.Error(), err))
			return
		}

		res, err := fc.catalog.AddFood(c.Request.Context(), in, image)
		if err != nil {
			respondError(c, fc.log, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"status":  http.StatusCreated,
			"message": res.Message,
			"warning": res.Warning,
			"data":    res.Food,
		})
	}
}

func (fc *FoodController) DeleteFood() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fc.catalog.DeleteFood(c.Request.Context(), c.Param("food_id"), confirmed(c)); err != nil {
			respondError(c, fc.log, err)
			return
		}
		respond(c, "Food deleted", nil)
	}
}

func (fc *FoodController) UpdateFood() gin.HandlerFunc {
	return func(c *gin.Context) {
		respondError(c, fc.log, fc.catalog.EditFood(c.Request.Context(), c.Param("food_id")))
	}
}
