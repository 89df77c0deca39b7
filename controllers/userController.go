package controllers

import (
	"net/http"

	"go-food-ordering/apperrors"
	"go-food-ordering/middleware"
	"go-food-ordering/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserController struct {
	auth *services.AuthService
	log  *zap.Logger
}

func NewUserController(auth *services.AuthService, log *zap.Logger) *UserController {
	return &UserController{auth: auth, log: log}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (uc *UserController) SignUp() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.SignupInput
		if err := c.BindJSON(&in); err != nil {
			respondError(c, uc.log, apperrors.New(apperrors.KindValidation, err.Error(), err))
			return
		}
		user, err := uc.auth.Signup(c.Request.Context(), in)
		if err != nil {
			respondError(c, uc.log, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"status":   http.StatusCreated,
			"message":  "User registered successfully!",
			"data":     user,
			"redirect": services.LoginPage,
		})
	}
}

func (uc *UserController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginRequest
		if err := c.BindJSON(&in); err != nil {
			respondError(c, uc.log, apperrors.New(apperrors.KindValidation, err.Error(), err))
			return
		}
		res, err := uc.auth.Login(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			respondError(c, uc.log, err)
			return
		}
		respond(c, "Login successful", res)
	}
}

func (uc *UserController) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		dest, err := uc.auth.Logout(c.Request.Context(), c.GetString(middleware.KeySessionID), confirmed(c))
		if err != nil {
			respondError(c, uc.log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "message": "Logged out", "redirect": dest})
	}
}

func (uc *UserController) Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := uc.auth.CurrentUser(c.Request.Context(), uid(c))
		if err != nil {
			respondError(c, uc.log, err)
			return
		}
		respond(c, "User fetched successfully", user)
	}
}
