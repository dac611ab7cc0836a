package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/user"
	"library/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key under which the authenticated user
// is stored by the auth middleware.
const actorContextKey = "actor"

var errNoActor = errors.New("no authenticated user in request context")

// RequestLogger logs one line per finished request with its status and latency.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("http request",
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
			)
			return err
		}
	}
}

// AuthMiddleware verifies the bearer token and resolves the calling user.
// The token's sub claim carries the user ID; the user record is the source of
// truth for the role, so a stale role claim in the token cannot escalate
// access.
type AuthMiddleware struct {
	secret []byte
	users  ports.UserRepository
	logger *slog.Logger
}

// NewAuthMiddleware creates the auth middleware with the HS256 signing secret.
func NewAuthMiddleware(secret string, users ports.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		secret: []byte(secret),
		users:  users,
		logger: logger,
	}
}

// Authenticate rejects requests without a valid token and stores the resolved
// user in the request context for handlers to read via actorFromContext.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.parseSubject(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			m.logger.Warn("authentication failed",
				"error", err,
				"remote_ip", c.RealIP(),
			)
			return c.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Unauthorized",
			})
		}

		actor, err := m.users.Get(c.Request().Context(), userID)
		if err != nil {
			m.logger.Warn("authenticated user not found",
				"user_id", userID.String(),
				"error", err,
			)
			return c.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Unauthorized",
			})
		}

		c.Set(actorContextKey, actor)
		return next(c)
	}
}

// parseSubject validates the bearer token and extracts the user ID from the
// sub claim.
func (m *AuthMiddleware) parseSubject(authHeader string) (kernel.UUID, error) {
	tokenStr := strings.TrimSpace(authHeader)
	if after, ok := strings.CutPrefix(tokenStr, "Bearer "); ok {
		tokenStr = strings.TrimSpace(after)
	}
	if tokenStr == "" {
		return kernel.UUID{}, errors.New("missing bearer token")
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return kernel.UUID{}, err
	}
	if !token.Valid {
		return kernel.UUID{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return kernel.UUID{}, errors.New("invalid claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return kernel.UUID{}, errors.New("sub missing in claims")
	}

	return kernel.UUIDFromString(sub)
}

// actorFromContext returns the user stored by the auth middleware.
func actorFromContext(c echo.Context) (*user.User, error) {
	actor, ok := c.Get(actorContextKey).(*user.User)
	if !ok || actor == nil {
		return nil, errNoActor
	}
	return actor, nil
}
