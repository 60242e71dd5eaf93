package server

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

func NewRouter(stats *StatsHandler) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", Health)
	r.GET("/stats/:pair", stats.GetStatsHandler)

	return r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
