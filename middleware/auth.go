package middleware

import (
	"errors"
	"inspection-app/logger"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Locals keys set by AuthMiddleware.
const (
	LocalUserID   = "userID"
	LocalUsername = "username"
)

var errInvalidSigningMethod = errors.New("invalid signing method")

// AuthMiddleware validates the Bearer token signed with secret and stores the
// caller in the request locals.
func AuthMiddleware(secret string) fiber.Handler {
	log := logger.New("authMiddleware").Function("AuthMiddleware")

	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(ctx, "Missing Authorization header")
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			return unauthorized(ctx, "Invalid Authorization header format")
		}

		token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errInvalidSigningMethod
			}
			return []byte(secret), nil
		}, jwt.WithExpirationRequired())
		if err != nil {
			log.Debug("rejected token", "error", err, "path", ctx.Path())
			return unauthorized(ctx, "Unauthorized: Invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			return unauthorized(ctx, "Unauthorized: Invalid token")
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			return unauthorized(ctx, "Unauthorized: Invalid user ID")
		}
		username, _ := claims["username"].(string)

		ctx.Locals(LocalUserID, userID)
		ctx.Locals(LocalUsername, username)
		return ctx.Next()
	}
}

func unauthorized(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// GenerateToken signs an HS256 token with the claims AuthMiddleware expects.
func GenerateToken(secret string, userID int, username string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti":      uuid.NewString(),
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// CallerIdentity names the authenticated caller. It prefers the username and
// falls back to the numeric user id. It is empty on unauthenticated routes.
func CallerIdentity(ctx *fiber.Ctx) string {
	if username, ok := ctx.Locals(LocalUsername).(string); ok && username != "" {
		return username
	}
	if userID, ok := ctx.Locals(LocalUserID).(float64); ok {
		return "user-" + strconv.FormatInt(int64(userID), 10)
	}
	return ""
}
