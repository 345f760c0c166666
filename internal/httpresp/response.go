package httpresp

import "github.com/gin-gonic/gin"

// The frontend consumes bare arrays and objects, so there is no envelope
// around list responses.

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}
