package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderUserID = "X-User-ID"

	userIDKey = "user_id"
)

// RequireUser trusts the gateway-authenticated user forwarded in X-User-ID
// and rejects requests without a valid one.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderUserID)

		id, err := uuid.Parse(raw)
		if raw == "" || err != nil || id == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "unauthorized",
				Message: "missing or invalid user identity",
				Field:   "",
			})

			return
		}

		c.Set(userIDKey, id.String())
		c.Next()
	}
}

func userID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
