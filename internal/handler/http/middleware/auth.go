package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub/internal/domain/entity"
	"stayhub/internal/handler/http/dto"
	usecasecontract "stayhub/internal/usecase/contract"
)

// SessionAuth resolves the persisted session snapshot and places it on
// the context. There is no token: whoever the snapshot names is the
// current user.
func SessionAuth(auth usecasecontract.IAuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c.Request.Context())
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not logged in"})
			return
		}
		c.Set("currentUser", *user)
		c.Next()
	}
}

// RequireRoles guards a route group to the given roles.
func RequireRoles(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("currentUser")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not logged in"})
			return
		}
		user, ok := value.(entity.User)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not logged in"})
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Insufficient role"})
	}
}
