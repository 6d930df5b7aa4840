package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"backend/controllers"
	"backend/models"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the bearer token, resolves the member it names and
// attaches it to the request context. Everything downstream reads the member
// from there; nothing else is ambient.
func AuthMiddleware(db *gorm.DB, tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.NewHTTPError(http.StatusUnauthorized, "Invalid Token"))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		memberID, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.NewHTTPError(http.StatusUnauthorized, "Invalid Token"))
			return
		}

		var member models.Member
		if err := db.First(&member, memberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					models.NewHTTPError(http.StatusUnauthorized, "Invalid Token"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				models.NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred"))
			return
		}

		controllers.SetCurrentMember(c, &member)
		c.Next()
	}
}
