package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root handles the root greeting endpoint
//
//	@Summary		Root greeting
//	@Description	Returns the hello-world greeting
//	@Produce		json
//	@Success		200	{object}	map[string]string	"Greeting message"
//	@Router			/ [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Hello World",
	})
}
