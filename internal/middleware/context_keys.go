package middleware

import "github.com/gin-gonic/gin"

// Keys used to store the authenticated request identity in the Gin context.
const (
	userIDKey   = contextKey("userID")
	tenantIDKey = contextKey("tenantID")
	branchIDKey = contextKey("branchID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and whether it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return getStringFromContext(c, userIDKey)
}

// GetTenantIDFromContext retrieves the caller's tenant ID from the Gin context.
func GetTenantIDFromContext(c *gin.Context) (string, bool) {
	return getStringFromContext(c, tenantIDKey)
}

// GetBranchIDFromContext retrieves the caller's optional branch ID from the
// Gin context. The boolean is false when no branch claim was present.
func GetBranchIDFromContext(c *gin.Context) (string, bool) {
	return getStringFromContext(c, branchIDKey)
}

func getStringFromContext(c *gin.Context, key contextKey) (string, bool) {
	val, exists := c.Get(string(key))
	if !exists {
		// check the request context as well
		reqVal := c.Request.Context().Value(key)
		if s, ok := reqVal.(string); ok {
			return s, true
		}
		return "", false
	}
	s, ok := val.(string)
	if !ok {
		return "", false
	}
	return s, true
}
