package controllers

import (
	"go-food-ordering/apperrors"
	"go-food-ordering/middleware"
	"go-food-ordering/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileController struct {
	profiles *services.ProfileService
	log      *zap.Logger
}

func NewProfileController(profiles *services.ProfileService, log *zap.Logger) *ProfileController {
	return &ProfileController{profiles: profiles, log: log}
}

type addressRequest struct {
	Address string `json:"address"`
}

func (pc *ProfileController) GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := pc.profiles.Load(c.Request.Context(), uid(c), c.GetString(middleware.KeyEmail))
		if err != nil {
			respondError(c, pc.log, err)
			return
		}
		respond(c, "Profile fetched successfully", view)
	}
}

func (pc *ProfileController) UpdateProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ProfileInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, pc.log, apperrors.New(apperrors.KindValidation, err.Error(), err))
			return
		}
		name, err := pc.profiles.Save(c.Request.Context(), uid(c), in)
		if err != nil {
			respondError(c, pc.log, err)
			return
		}
		respond(c, services.ProfileUpdated, gin.H{"displayName": name, "phone": in.Phone})
	}
}

func (pc *ProfileController) UpdateAddress() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in addressRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, pc.log, apperrors.New(apperrors.KindValidation, err.Error(), err))
			return
		}
		address, err := pc.profiles.UpdateAddress(c.Request.Context(), uid(c), in.Address)
		if err != nil {
			respondError(c, pc.log, err)
			return
		}
		respond(c, services.AddressUpdated, gin.H{"address": address})
	}
}
