package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mmdatafocus/hotel_analytics/utils"
)

const CorrelationIdHeader = "x-correlation-id"

// RequestContextMiddleware attaches a correlation id (taken from the request
// header or generated) and the client ip to the request context.
func RequestContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(CorrelationIdHeader)
		if cid == "" {
			cid = uuid.NewString()
		}
		ctx := utils.SetCorrelationIdInContext(c.Request.Context(), cid)
		ctx = utils.SetClientIPInContext(ctx, c.ClientIP())
		c.Request = c.Request.WithContext(ctx)
		c.Header(CorrelationIdHeader, cid)
		c.Next()
	}
}
