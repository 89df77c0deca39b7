package controllers

import (
	"net/http"
	"strconv"

	"go-food-ordering/apperrors"
	"go-food-ordering/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError writes {"error": kind, "message": text} with the status of the
// error kind.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	appErr := apperrors.From(err)
	if appErr.Code >= http.StatusInternalServerError {
		log.Error(appErr.Message, zap.String("kind", string(appErr.Kind)), zap.Error(appErr.Err))
	} else {
		log.Debug(appErr.Message, zap.String("kind", string(appErr.Kind)))
	}
	_ = c.Error(err)
	c.JSON(appErr.Code, appErr)
}

func respond(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": message,
		"data":    data,
	})
}

func confirmed(c *gin.Context) bool {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return ok
}

func uid(c *gin.Context) string {
	return c.GetString(middleware.KeyUID)
}

func cartKey(c *gin.Context) string {
	return c.GetString(middleware.KeyCartKey)
}
