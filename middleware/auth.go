package middleware

import (
	"errors"
	"strings"

	"newshub-api/config"
	"newshub-api/helper"
	"newshub-api/models"
	"newshub-api/repositories"
	"newshub-api/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

var HTTPHelper = &helper.HTTPHelper{}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Auth extracts and verifies the bearer token, then stores the
// authenticated email in the request context. Every other guard assumes it
// has already run.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required")
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			HTTPHelper.SendUnauthorizedError(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}

// RequireAdmin permits the request only when the stored user record carries
// the admin role. The role in the token is never trusted on its own.
func RequireAdmin(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authentication required")
			c.Abort()
			return
		}

		user, err := userRepo.GetByEmail(email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				HTTPHelper.SendForbiddenError(c, "Admin access required")
			} else {
				HTTPHelper.SendError(c, err)
			}
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin {
			HTTPHelper.SendForbiddenError(c, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSubscription permits the request only for users with a valid
// subscription. An expired window is healed (flag and expiry cleared) and
// the request is still denied: access resumes only after a new purchase.
func RequireSubscription(subscription services.SubscriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authentication required")
			c.Abort()
			return
		}

		if err := subscription.Check(email); err != nil {
			switch {
			case errors.Is(err, models.ErrSubscriptionExpired):
				HTTPHelper.SendForbiddenError(c, "Subscription expired")
			case errors.Is(err, models.ErrForbidden):
				HTTPHelper.SendForbiddenError(c, "Subscription required")
			default:
				HTTPHelper.SendError(c, err)
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
