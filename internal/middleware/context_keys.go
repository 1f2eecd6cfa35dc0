package middleware

import "github.com/gin-gonic/gin"

// adminIDKey is the key used to store the authenticated admin's ID in the
// request context. Using a custom type prevents collisions.
const adminIDKey = contextKey("adminID")

// GetAdminIDFromContext retrieves the authenticated admin ID from the Gin
// context. It returns the admin ID and a boolean indicating if it was found.
func GetAdminIDFromContext(c *gin.Context) (string, bool) {
	adminIDVal := c.Request.Context().Value(adminIDKey)
	if adminIDVal == nil {
		return "", false
	}

	adminID, ok := adminIDVal.(string)
	if !ok {
		return "", false
	}

	return adminID, true
}
