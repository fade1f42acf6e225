package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alaayoubi/content-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(tokens *security.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(NewRequestIDMiddleware(), NewAuthMiddleware(tokens))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetString("userID"),
			"verified": c.GetBool("verified"),
		})
	})

	return r
}

func doAuthRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := newAuthTestRouter(security.NewTokenManager("test-secret", time.Hour, time.Hour))

	w := doAuthRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareNotBearer(t *testing.T) {
	r := newAuthTestRouter(security.NewTokenManager("test-secret", time.Hour, time.Hour))

	w := doAuthRequest(r, "Basic dXNlcjpwdw==")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareEmptyToken(t *testing.T) {
	r := newAuthTestRouter(security.NewTokenManager("test-secret", time.Hour, time.Hour))

	w := doAuthRequest(r, "Bearer ")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	r := newAuthTestRouter(security.NewTokenManager("test-secret", time.Hour, time.Hour))

	w := doAuthRequest(r, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", -time.Minute, time.Hour)
	r := newAuthTestRouter(tokens)

	token, err := tokens.IssueAccess("user-1", true)
	require.NoError(t, err)

	w := doAuthRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareVerificationTokenRejected(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour, time.Hour)
	r := newAuthTestRouter(tokens)

	token, err := tokens.IssueVerification("a@x.com")
	require.NoError(t, err)

	w := doAuthRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour, time.Hour)
	r := newAuthTestRouter(tokens)

	token, err := tokens.IssueAccess("user-1", true)
	require.NoError(t, err)

	w := doAuthRequest(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":"user-1","verified":true}`, w.Body.String())
}
