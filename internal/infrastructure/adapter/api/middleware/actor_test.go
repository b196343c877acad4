package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qr-tavoli/loyalty-core/internal/infrastructure/adapter/logger"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newActorRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{Actor(testSecret, logger.NewNoopLogger())}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		actorID, _ := ActorID(c)
		c.JSON(http.StatusOK, gin.H{
			"actorId": actorID,
			"role":    c.GetString(ActorRoleKey),
		})
	})

	router.GET("/protected", handlers...)
	return router
}

func performRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestActorMiddleware(t *testing.T) {
	t.Run("accepts valid token and injects identity", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"user_id": float64(42),
			"role":    RoleCashier,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		w := performRequest(newActorRouter(), "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"actorId":42,"role":"cashier"}`, w.Body.String())
	})

	t.Run("accepts string-encoded user id claim", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"user_id": "7",
			"role":    RoleAdmin,
		})

		w := performRequest(newActorRouter(), "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"actorId":7,"role":"admin"}`, w.Body.String())
	})

	t.Run("rejects missing header", func(t *testing.T) {
		w := performRequest(newActorRouter(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects malformed header", func(t *testing.T) {
		w := performRequest(newActorRouter(), "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.MapClaims{
			"user_id": float64(42),
			"role":    RoleCashier,
		})

		w := performRequest(newActorRouter(), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"user_id": float64(42),
			"role":    RoleCashier,
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})

		w := performRequest(newActorRouter(), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects token without user id claim", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{"role": RoleCashier})

		w := performRequest(newActorRouter(), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("allows matching role", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"user_id": float64(1),
			"role":    RoleAdmin,
		})

		w := performRequest(newActorRouter(RequireRole(RoleAdmin)), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forbids other roles", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"user_id": float64(1),
			"role":    RoleCashier,
		})

		w := performRequest(newActorRouter(RequireRole(RoleAdmin)), "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
