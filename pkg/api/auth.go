package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/neonhq/neon/pkg/models"
)

const principalKey = "neon.principal"

// authMiddleware resolves the bearer token to a principal. Resolution is
// pluggable; the key-map resolver below is the built-in one.
func authMiddleware(resolve func(token string) (*models.Principal, bool)) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		principal, ok := resolve(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// keyMapResolver resolves tokens from a static key map.
func keyMapResolver(keys map[string]models.Principal) func(string) (*models.Principal, bool) {
	return func(token string) (*models.Principal, bool) {
		p, ok := keys[token]
		if !ok {
			return nil, false
		}
		return &p, true
	}
}

// requireScope gates a route on one scope; admin passes everything.
func requireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := principalFrom(c)
		if principal == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		if !principal.HasScope(scope) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient scope"})
			return
		}
		c.Next()
	}
}

func principalFrom(c *gin.Context) *models.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*models.Principal)
	return p
}
