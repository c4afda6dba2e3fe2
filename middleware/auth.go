package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/services"
)

const currentUserKey = "current_user"

// RequireSession rejects requests while no one is logged in, and stores
// the session user in the Gin context for handlers downstream.
func RequireSession(sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sessions.Current()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "You must be logged in",
				},
			})
			c.Abort()
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireApproved additionally rejects customers still awaiting approval.
// Staff roles are always active once created.
func RequireApproved(sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions.State() == services.StateAwaitingApproval {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "PENDING_APPROVAL",
					"message": "Your account is awaiting approval",
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStaff rejects any session whose role is not a staff role.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := CurrentUser(c)
		if err != nil || !user.Role.IsStaff() {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Staff access required",
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser extracts the session user placed by RequireSession.
func CurrentUser(c *gin.Context) (models.User, error) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return models.User{}, &AuthError{Code: "MISSING_USER", Message: "User not found in context"}
	}
	user, ok := value.(models.User)
	if !ok {
		return models.User{}, &AuthError{Code: "INVALID_USER", Message: "User in context has unexpected type"}
	}
	return user, nil
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
