package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// intParam reads a numeric path parameter and answers 400 when it is not one.
func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(400, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return value, true
}
