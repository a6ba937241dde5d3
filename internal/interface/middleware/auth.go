package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	repo "github.com/jobtrail/jobtrail-api/internal/domain/repository"
	"github.com/jobtrail/jobtrail-api/pkg/helpers"
	"github.com/jobtrail/jobtrail-api/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserIDKey    = "userID"
	CtxUserNameKey  = "userName"
	CtxUserEmailKey = "userEmail"
)

// Auth validates the Authorization bearer token and resolves it to a user
// before any business logic runs. The Redis session hash written at login is
// consulted first; on a miss the user record is loaded from the store and the
// session repopulated. Users are never deleted by any exposed operation, so a
// session hit cannot resurrect a removed account.
func Auth(jwtm *helpers.JWTManager, users repo.UserRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.AbortError(c, http.StatusUnauthorized, "malformed authorization header", nil)
			return
		}

		claims, err := jwtm.ParseToken(parts[1])
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired token", nil)
			return
		}

		ctx := c.Request.Context()

		if rdb != nil {
			key := helpers.SessionKey(claims.UserID)
			data, rErr := rdb.HGetAll(ctx, key).Result()
			if rErr == nil && data["user_id"] == claims.UserID {
				c.Set(CtxUserIDKey, data["user_id"])
				c.Set(CtxUserNameKey, data["name"])
				c.Set(CtxUserEmailKey, data["email"])
				c.Next()
				return
			}
		}

		u, err := users.GetByID(claims.UserID)
		if err != nil || u == nil {
			response.AbortError(c, http.StatusUnauthorized, "not authorized", nil)
			return
		}
		if rdb != nil {
			key := helpers.SessionKey(u.ID)
			pipe := rdb.Pipeline()
			pipe.HSet(ctx, key, map[string]any{
				"user_id":         u.ID,
				"name":            u.Name,
				"email":           u.Email,
				"profile_picture": u.ProfilePicture,
			})
			pipe.Expire(ctx, key, 24*time.Hour)
			_, _ = pipe.Exec(ctx)
		}

		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUserNameKey, u.Name)
		c.Set(CtxUserEmailKey, u.Email)
		c.Next()
	}
}
