package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/pkg/auth"
)

func newTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	am := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/protected", am.JWTAuth(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	router.GET("/admin", am.JWTAuth(), am.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func newTestJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "campusdesk.test",
	})
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router := newTestRouter(newTestJWTService(time.Hour))

	w := doRequest(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_004")
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	router := newTestRouter(newTestJWTService(time.Hour))

	w := doRequest(router, "/protected", "token-without-bearer-prefix")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router := newTestRouter(jwtService)

	token, _, err := jwtService.GenerateToken(7, "student@campus.edu", "student")
	require.NoError(t, err)

	w := doRequest(router, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(-time.Minute)
	router := newTestRouter(jwtService)

	token, _, err := jwtService.GenerateToken(7, "student@campus.edu", "student")
	require.NoError(t, err)

	w := doRequest(router, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func TestRoleRequired(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router := newTestRouter(jwtService)

	studentToken, _, err := jwtService.GenerateToken(7, "student@campus.edu", "student")
	require.NoError(t, err)
	adminToken, _, err := jwtService.GenerateToken(1, "admin@campus.edu", "admin")
	require.NoError(t, err)

	w := doRequest(router, "/admin", "Bearer "+studentToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_005")

	w = doRequest(router, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
