package api

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Context keys set by the middleware layer
const (
	databaseKey  = "moe.db"
	requestIDKey = "moe.request_id"
)

// Database returns the request-scoped sub-database handle. The second
// return is false when the binding subsystem is disabled. The handle
// borrows the shared connection; callers must not disconnect it.
func Database(c *gin.Context) (*mongo.Database, bool) {
	v, ok := c.Get(databaseKey)
	if !ok {
		return nil, false
	}
	handle, ok := v.(*mongo.Database)
	return handle, ok
}

// RequestIDFrom returns the request ID assigned by the middleware
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
