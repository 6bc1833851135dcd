package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/moodscape-io/moodscape/internal/config"
	"github.com/moodscape-io/moodscape/internal/modules/model"
	"github.com/moodscape-io/moodscape/internal/modules/serializer"
	"github.com/moodscape-io/moodscape/internal/pkg/utils"
)

// UserAuth returns a middleware that authenticates requests using user bearer tokens.
// It validates the token, looks up the user in the database, and sets the user in the context.
// It also sets the user_id attribute on the current span for telemetry filtering.
func UserAuth(cfg *config.Config, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		secret, ok := utils.ParseToken(raw, cfg.Root.UserBearerTokenPrefix)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		lookup := utils.HMAC256Hex(cfg.Root.SecretPepper, secret)

		var user model.User
		if err := db.WithContext(c.Request.Context()).Where(&model.User{APIKeyHMAC: lookup}).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}

		// Set user_id attribute on the current span for telemetry filtering
		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			span.SetAttributes(attribute.String("user_id", user.ID.String()))
		}

		c.Set("user", &user)
		c.Next()
	}
}

// CurrentUser fetches the authenticated user set by UserAuth.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}
