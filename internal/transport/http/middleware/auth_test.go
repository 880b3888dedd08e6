package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/pkg/jwtutil"
	"tripplanner/internal/transport/http/middleware"
)

const testSecret = "test-secret"

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.AuthBearer(testSecret), func(c *gin.Context) {
		identity, ok := middleware.IdentityFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID, "email": identity.Email})
	})
	return router
}

func get(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthBearer_ValidToken(t *testing.T) {
	router := newProtectedRouter()
	token, err := jwtutil.GenerateToken(testSecret, time.Hour, 7, "alice@example.com")
	require.NoError(t, err)

	rec := get(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":7`)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
}

func TestAuthBearer_MissingHeader(t *testing.T) {
	rec := get(newProtectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthBearer_WrongScheme(t *testing.T) {
	rec := get(newProtectedRouter(), "Basic abcdef")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthBearer_ExpiredToken(t *testing.T) {
	token, err := jwtutil.GenerateToken(testSecret, -time.Minute, 7, "alice@example.com")
	require.NoError(t, err)

	rec := get(newProtectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthBearer_ForgedSignature(t *testing.T) {
	token, err := jwtutil.GenerateToken("other-secret", time.Hour, 7, "alice@example.com")
	require.NoError(t, err)

	rec := get(newProtectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
