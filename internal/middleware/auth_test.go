package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garageops/workshop-api/internal/config"
	"github.com/garageops/workshop-api/internal/domain/access"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func protectedRouter() (*gin.Engine, *access.Actor) {
	gin.SetMode(gin.TestMode)

	var captured access.Actor
	cfg := &config.Config{JWTSecret: testSecret}

	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		captured = ActorFromContext(c)
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestAuthMiddleware_ValidTokenBuildsActor(t *testing.T) {
	r, actor := protectedRouter()

	token := signToken(t, jwt.MapClaims{
		"sub":   float64(7),
		"email": "m1@x.com",
		"role":  "mechanic",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, access.RoleMechanic, actor.Role)
	assert.Equal(t, "m1@x.com", actor.Email)
}

func TestAuthMiddleware_RejectsBadRequests(t *testing.T) {
	r, _ := protectedRouter()

	expired := signToken(t, jwt.MapClaims{
		"sub":   float64(7),
		"email": "m1@x.com",
		"role":  "mechanic",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	wrongKey := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": float64(7), "email": "m1@x.com",
	})
	badSignature, err := wrongKey.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	missingEmail := signToken(t, jwt.MapClaims{
		"sub": float64(7),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + badSignature},
		{"missing email claim", "Bearer " + missingEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
