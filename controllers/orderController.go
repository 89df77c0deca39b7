package controllers

import (
	"net/http"

	"go-food-ordering/apperrors"
	"go-food-ordering/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderController struct {
	admin    *services.AdminOrderService
	customer *services.CustomerOrderService
	log      *zap.Logger
}

func NewOrderController(admin *services.AdminOrderService, customer *services.CustomerOrderService, log *zap.Logger) *OrderController {
	return &OrderController{admin: admin, customer: customer, log: log}
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (oc *OrderController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := oc.admin.ListOrders(c.Request.Context())
		if err != nil {
			respondError(c, oc.log, err)
			return
		}
		respond(c, "Orders fetched successfully", rows)
	}
}

func (oc *OrderController) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := oc.admin.ViewOrder(c.Request.Context(), c.Param("order_id"))
		if err != nil {
			respondError(c, oc.log, err)
			return
		}
		respond(c, "Order fetched successfully", order)
	}
}

func (oc *OrderController) UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in statusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, oc.log, apperrors.New(apperrors.KindValidation, err.Error(), err))
			return
		}
		rows, err := oc.admin.UpdateStatus(c.Request.Context(), c.Param("order_id"), in.Status)
		if err != nil {
			respondError(c, oc.log, err)
			return
		}
		respond(c, "Status Updated!", rows)
	}
}

func (oc *OrderController) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.CheckoutInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, oc.log, apperrors.New(apperrors.KindValidation, err.Error(), err))
			return
		}
		res, err := oc.customer.PlaceOrder(c.Request.Context(), uid(c), cartKey(c), in)
		if err != nil {
			respondError(c, oc.log, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"status":   http.StatusCreated,
			"message":  res.Message,
			"data":     res.Order,
			"redirect": res.Redirect,
		})
	}
}

func (oc *OrderController) GetMyOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := oc.customer.MyOrders(c.Request.Context(), uid(c))
		if err != nil {
			respondError(c, oc.log, err)
			return
		}
		respond(c, "Orders fetched successfully", view)
	}
}
