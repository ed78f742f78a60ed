package controller

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PingController struct {
	db *gorm.DB
}

func setupPingController(deps *Dependencies) []RouteInfo {
	e := &PingController{db: deps.DB}
	return []RouteInfo{
		{Method: "GET", Path: "/ping", HandlerFunc: e.pingHandler()},
	}
}

// @id Ping
// @Description Reports whether the database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (e *PingController) pingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := e.db.DB()
		if err != nil {
			c.JSON(503, gin.H{"status": "unavailable"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(ctx); err != nil {
			c.JSON(503, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	}
}
