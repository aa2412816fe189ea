package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Единый формат ответа API: {success, data|message|error}.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func OKMessage(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg, "data": data})
}

func Created(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": msg, "data": data})
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": msg})
}

func PayloadTooLarge(c *gin.Context, msg string) {
	c.JSON(http.StatusRequestEntityTooLarge, gin.H{"success": false, "message": msg})
}

func ServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msg})
}
