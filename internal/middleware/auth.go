package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sables/internal/dto"
	"github.com/lshigami/Sables/internal/model"
	"github.com/lshigami/Sables/internal/service"
	"github.com/rs/zerolog/log"
)

const userContextKey = "currentUser"

// BearerAuth guards protected routes. It extracts the bearer token, resolves
// it through the session service and stores the authenticated user in the
// request context. Every resolution failure is reported as a uniform 401 so
// clients learn nothing about why a token was rejected.
func BearerAuth(sessions service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid credentials"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid credentials"})
			return
		}

		user, err := sessions.Resolve(parts[1])
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) || errors.Is(err, service.ErrUnknownUser) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid credentials"})
				return
			}
			log.Error().Err(err).Msg("BearerAuth: session resolution failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by BearerAuth.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	val, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := val.(*model.User)
	return user, ok
}
