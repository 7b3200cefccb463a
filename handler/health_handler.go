package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/naludev/cohabitdb/services"
	"github.com/naludev/cohabitdb/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthHandler struct {
	mongoClient *mongo.Client
	revoker     *services.RedisTokenRevoker
}

func NewHealthHandler(mongoClient *mongo.Client, revoker *services.RedisTokenRevoker) *HealthHandler {
	return &HealthHandler{mongoClient: mongoClient, revoker: revoker}
}

// Health reports store connectivity and basic system load. Degraded
// dependencies turn the status unhealthy with a 503.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	mongoOK := h.mongoClient.Ping(ctx, nil) == nil
	redisOK := h.revoker.IsConnected()

	status := "ok"
	code := http.StatusOK
	if !mongoOK || !redisOK {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status": status,
		"mongo":  mongoOK,
		"redis":  redisOK,
		"system": gin.H{
			"cpu_percent":    utils.CPUUsagePercent(),
			"memory_percent": utils.MemoryUsagePercent(),
		},
	})
}
