package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"ecommerce-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

// authMiddleware resolves the bearer token into a Caller and stores it on
// the request. Missing or invalid credentials abort with 401.
func authMiddleware(auth authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			return
		}
		caller, err := auth.ResolveCaller(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			return
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

// adminOnly gates routes on the admin role. It runs after authMiddleware.
func adminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := domain.RequireAdmin(callerFrom(c)); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Admin access required"})
			return
		}
		c.Next()
	}
}

func callerFrom(c *gin.Context) domain.Caller {
	v, _ := c.Get(callerKey)
	caller, _ := v.(domain.Caller)
	return caller
}

// pathID parses a positive integer path parameter; a malformed value aborts
// with 400.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "invalid " + name})
		return 0, false
	}
	return id, true
}
