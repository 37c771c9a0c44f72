package httpx

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/resto-app/resto-backend/internal/account"
)

const userKey = "current_user"

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		log.Printf("[http] rid=%v %s %s status=%d dur=%s",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// TokenResolver maps a bearer token key to its user.
type TokenResolver interface {
	UserByToken(ctx context.Context, key string) (*account.User, error)
}

// Auth resolves the caller from an "Authorization: Token <key>" header and
// aborts with 401 when it is missing or unknown.
func Auth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		key, ok := strings.CutPrefix(header, "Token ")
		if !ok || key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		u, err := resolver.UserByToken(c.Request.Context(), key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		SetCurrentUser(c, u)
		c.Next()
	}
}

// SetCurrentUser stores the authenticated user on the request context.
// Exposed for handler tests.
func SetCurrentUser(c *gin.Context, u *account.User) {
	c.Set(userKey, u)
}

// CurrentUser returns the authenticated user set by Auth.
func CurrentUser(c *gin.Context) (*account.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*account.User)
	return u, ok
}
