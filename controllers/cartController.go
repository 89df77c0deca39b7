package controllers

import (
	"strconv"

	"go-food-ordering/apperrors"
	"go-food-ordering/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartController struct {
	cart *services.CartService
	log  *zap.Logger
}

func NewCartController(cart *services.CartService, log *zap.Logger) *CartController {
	return &CartController{cart: cart, log: log}
}

type quantityRequest struct {
	Delta int `json:"delta"`
}

func (cc *CartController) GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := cc.cart.Get(c.Request.Context(), cartKey(c))
		if err != nil {
			respondError(c, cc.log, err)
			return
		}
		respond(c, "Cart fetched successfully", view)
	}
}

func (cc *CartController) AddItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.CartItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, cc.log, apperrors.New(apperrors.KindValidation, err.Error(), err))
			return
		}
		res, err := cc.cart.Add(c.Request.Context(), cartKey(c), in)
		if err != nil {
			respondError(c, cc.log, err)
			return
		}
		respond(c, res.Toast.Message, res)
	}
}

func (cc *CartController) ChangeQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		index, ok := cc.index(c)
		if !ok {
			return
		}
		var in quantityRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, cc.log, apperrors.New(apperrors.KindValidation, err.Error(), err))
			return
		}
		view, err := cc.cart.ChangeQuantity(c.Request.Context(), cartKey(c), index, in.Delta)
		if err != nil {
			respondError(c, cc.log, err)
			return
		}
		respond(c, "Cart updated", view)
	}
}

func (cc *CartController) RemoveItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		index, ok := cc.index(c)
		if !ok {
			return
		}
		view, err := cc.cart.Remove(c.Request.Context(), cartKey(c), index)
		if err != nil {
			respondError(c, cc.log, err)
			return
		}
		respond(c, "Cart updated", view)
	}
}

func (cc *CartController) GetSummary() gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := cc.cart.Summary(c.Request.Context(), cartKey(c))
		if err != nil {
			respondError(c, cc.log, err)
			return
		}
		respond(c, "Cart summary fetched successfully", summary)
	}
}

func (cc *CartController) index(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondError(c, cc.log, apperrors.Validation("index must be a number"))
		return 0, false
	}
	return index, true
}
