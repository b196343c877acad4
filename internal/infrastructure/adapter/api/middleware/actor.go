package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	domainerr "github.com/qr-tavoli/loyalty-core/internal/domain/error"
	coreport "github.com/qr-tavoli/loyalty-core/internal/domain/port/core"
	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/api/dto"
)

// Context keys set by the actor middleware
const (
	ActorIDKey   = "actorID"
	ActorRoleKey = "actorRole"
)

// JWT claim names issued by the staff identity provider
const (
	jwtClaimUserID = "user_id"
	jwtClaimRole   = "role"
)

// Known staff roles
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// Actor verifies the bearer token and injects the authenticated actor's
// identity into the gin context. Only HS256 tokens are accepted; this service
// verifies identity, it never issues tokens.
func Actor(jwtSecret string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err != nil {
			unauthorized(c, err.Error())
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			logger.Warn("Rejected bearer token", map[string]any{
				"path":  c.Request.URL.Path,
				"error": errString(err),
			})
			unauthorized(c, "Invalid or expired token")
			return
		}

		actorID, err := actorIDFromClaims(claims)
		if err != nil {
			unauthorized(c, "Invalid actor identity in token")
			return
		}

		role, _ := claims[jwtClaimRole].(string)

		c.Set(ActorIDKey, actorID)
		c.Set(ActorRoleKey, role)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated actor holds one of
// the given roles. Must run after Actor.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorRole := c.GetString(ActorRoleKey)
		for _, role := range roles {
			if role == actorRole {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidActorID),
			Message: "Insufficient permissions",
		})
	}
}

// ActorID returns the authenticated actor's ID from the gin context
func ActorID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(ActorIDKey)
	if !exists {
		return 0, false
	}
	actorID, ok := value.(uint64)
	return actorID, ok && actorID > 0
}

// bearerToken extracts the token from the Authorization header
func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", fmt.Errorf("missing Authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fmt.Errorf("malformed Authorization header")
	}
	return parts[1], nil
}

// actorIDFromClaims reads the user_id claim, tolerating the numeric and
// string encodings different token issuers produce
func actorIDFromClaims(claims jwt.MapClaims) (uint64, error) {
	raw, ok := claims[jwtClaimUserID]
	if !ok {
		return 0, fmt.Errorf("missing %q claim", jwtClaimUserID)
	}

	switch v := raw.(type) {
	case float64:
		if v <= 0 || v != float64(uint64(v)) {
			return 0, fmt.Errorf("invalid %q claim value", jwtClaimUserID)
		}
		return uint64(v), nil
	case string:
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil || id == 0 {
			return 0, fmt.Errorf("invalid %q claim value", jwtClaimUserID)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("unsupported %q claim type %T", jwtClaimUserID, raw)
	}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidActorID),
		Message: message,
	})
}

func errString(err error) string {
	if err == nil {
		return "token invalid"
	}
	return err.Error()
}
