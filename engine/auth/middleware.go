// Package auth provides the access-control gates applied to protected
// routes: cookie-credential authentication and the admin-role check.
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopdash/shopdash/engine/auth/token"
	"github.com/shopdash/shopdash/engine/auth/uc"
	"github.com/shopdash/shopdash/engine/auth/userctx"
	"github.com/shopdash/shopdash/pkg/logger"
)

// CookieName is the cookie carrying the signed credential.
const CookieName = "token"

// Middleware holds the dependencies for the authentication and
// authorization gates.
type Middleware struct {
	tokens   *token.Service
	denylist token.Denylist
	repo     uc.Repository
}

// NewMiddleware creates a new access-control middleware instance
func NewMiddleware(tokens *token.Service, denylist token.Denylist, repo uc.Repository) *Middleware {
	return &Middleware{tokens: tokens, denylist: denylist, repo: repo}
}

// Authenticate is the gin middleware for cookie-credential authentication.
// A missing cookie fails with 401; a malformed, badly signed, expired, or
// revoked credential fails with 403. On success the decoded claims are
// attached to the request context.
func (m *Middleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			log.Debug("missing credential cookie", "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		claims, err := m.tokens.Verify(tokenString)
		if err != nil {
			log.Debug("credential verification failed", "error", err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		if m.denylist != nil {
			revoked, err := m.denylist.IsRevoked(c.Request.Context(), tokenString)
			if err != nil {
				log.Error("revocation check failed", "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authentication service unavailable"})
				return
			}
			if revoked {
				log.Debug("revoked credential presented", "email", claims.Email)
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
				return
			}
		}
		ctx := userctx.WithClaims(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAdmin is the gin middleware for the admin gate. It resolves the
// authenticated email against the user store on every request; a missing
// user or a non-admin role fails with 403.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		claims, ok := userctx.ClaimsFromContext(ctx)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, err := m.repo.GetUserByEmail(ctx, claims.Email)
		if err != nil {
			if errors.Is(err, uc.ErrUserNotFound) {
				log.Debug("admin gate: unknown user", "email", claims.Email)
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
				return
			}
			log.Error("admin gate: user lookup failed", "error", err, "email", claims.Email)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while checking permissions."})
			return
		}
		if !user.IsAdmin() {
			log.Debug("admin gate: insufficient role", "email", claims.Email, "role", user.Role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
