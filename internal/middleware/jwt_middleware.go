package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mhafidzn/daftarin/internal/helpers"
)

func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Authorization header is missing.")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Authorization header must be a Bearer token.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid token claims.")
			c.Abort()
			return
		}

		subject, _ := claims["customer_id"].(string)
		customerID, err := uuid.Parse(subject)
		if err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid customer ID in token.")
			c.Abort()
			return
		}

		c.Set("customer_id", customerID)
		c.Next()
	}
}
