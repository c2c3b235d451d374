package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopdash/shopdash/engine/auth"
	"github.com/shopdash/shopdash/engine/auth/token"
	"github.com/shopdash/shopdash/engine/auth/uc"
	"github.com/shopdash/shopdash/pkg/logger"
)

// LoginRequest is the payload for credential issuance.
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RegisterUserRequest is the payload for first-time registration.
type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// Handler handles auth-related HTTP requests
type Handler struct {
	factory    *uc.Factory
	tokens     *token.Service
	denylist   token.Denylist
	production bool
}

// NewHandler creates a new auth handler
func NewHandler(factory *uc.Factory, tokens *token.Service, denylist token.Denylist, production bool) *Handler {
	return &Handler{factory: factory, tokens: tokens, denylist: denylist, production: production}
}

// setCookieAttributes applies the environment-dependent cookie policy:
// cross-site delivery needs Secure + SameSite=None, local development uses
// SameSite=Strict over plain HTTP.
func (h *Handler) setCookieAttributes(c *gin.Context) {
	if h.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
}

// Login issues a signed credential for the submitted email and transfers it
// to the client as an HTTP-only cookie.
func (h *Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	signed, err := h.tokens.Issue(req.Email)
	if err != nil {
		log.Error("failed to issue credential", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while creating the token."})
		return
	}
	h.setCookieAttributes(c)
	c.SetCookie(auth.CookieName, signed, 0, "/", "", h.production, true)
	log.Info("credential issued", "email", req.Email)
	c.JSON(http.StatusOK, gin.H{"loginSuccess": true})
}

// Logout clears the credential cookie and revokes the presented token until
// its natural expiry.
func (h *Handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	if tokenString, err := c.Cookie(auth.CookieName); err == nil && tokenString != "" && h.denylist != nil {
		if claims, verr := h.tokens.Verify(tokenString); verr == nil && claims.ExpiresAt != nil {
			if rerr := h.denylist.Revoke(ctx, tokenString, claims.ExpiresAt.Time); rerr != nil {
				// The cookie still gets cleared; the token just stays valid
				// until expiry.
				log.Warn("failed to revoke credential on logout", "error", rerr)
			}
		}
	}
	h.setCookieAttributes(c)
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.production, true)
	c.JSON(http.StatusOK, gin.H{"logoutSuccess": true})
}

// ListUsers returns every user record.
func (h *Handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	users, err := h.factory.ListUsers().Execute(ctx)
	if err != nil {
		log.Error("failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching users."})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin reports the admin status for the email in the path.
func (h *Handler) CheckAdmin(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	email := c.Param("email")
	admin, err := h.factory.CheckAdmin(email).Execute(ctx)
	if err != nil {
		log.Error("failed to check admin status", "error", err, "email", email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while checking admin status."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// RegisterUser inserts a new user record, or reports that the email is
// already taken.
func (h *Handler) RegisterUser(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	input := &uc.RegisterUserInput{Email: req.Email, Name: req.Name, PhotoURL: req.PhotoURL}
	out, err := h.factory.RegisterUser(input).Execute(ctx)
	if err != nil {
		log.Error("failed to register user", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while inserting the user."})
		return
	}
	if out.AlreadyExists {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists", "insertedId": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": out.InsertedID.Hex()})
}

// parseIDParam parses the storage-native hex id from the path. Malformed
// ids surface as a generic server error, matching the storage layer's own
// failure mode.
func parseIDParam(c *gin.Context, message string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
		return primitive.NilObjectID, false
	}
	return id, true
}

// PromoteUser grants the admin role to the user with the given id.
func (h *Handler) PromoteUser(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	id, ok := parseIDParam(c, "An error occurred while updating the user role.")
	if !ok {
		return
	}
	out, err := h.factory.PromoteUser(id).Execute(ctx)
	if err != nil {
		log.Error("failed to promote user", "error", err, "user_id", id.Hex())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while updating the user role."})
		return
	}
	log.Info("user promoted", "user_id", id.Hex(), "matched", out.MatchedCount, "modified", out.ModifiedCount)
	c.JSON(http.StatusOK, out)
}

// RemoveUser deletes the user with the given id.
func (h *Handler) RemoveUser(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	id, ok := parseIDParam(c, "An error occurred while deleting the user.")
	if !ok {
		return
	}
	out, err := h.factory.RemoveUser(id).Execute(ctx)
	if err != nil {
		log.Error("failed to delete user", "error", err, "user_id", id.Hex())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while deleting the user."})
		return
	}
	log.Info("user removed", "user_id", id.Hex(), "deleted", out.DeletedCount)
	c.JSON(http.StatusOK, out)
}
