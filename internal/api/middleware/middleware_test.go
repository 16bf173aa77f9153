package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/pkg/jwthelper"
)

var testSigningKey = []byte("test-signing-key")

type fakeUserGetter struct {
	users map[uint]domain.User
}

func (f *fakeUserGetter) GetUser(_ context.Context, id uint) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, assert.AnError
	}

	return user, nil
}

func newTestRouter(t *testing.T, svc UserGetter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	authed := router.Group("/", NewAuthenticator(testSigningKey).VerifyJWT())
	authed.GET("/me", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	admin := router.Group("/admin", NewAuthenticator(testSigningKey).VerifyJWT(), RequireAdmin(svc))
	admin.GET("/users", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	return router
}

func doRequest(router *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestVerifyJWT_MissingHeader(t *testing.T) {
	router := newTestRouter(t, &fakeUserGetter{})

	resp := doRequest(router, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestVerifyJWT_MalformedHeader(t *testing.T) {
	router := newTestRouter(t, &fakeUserGetter{})

	resp := doRequest(router, "/me", "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestVerifyJWT_InvalidToken(t *testing.T) {
	router := newTestRouter(t, &fakeUserGetter{})

	resp := doRequest(router, "/me", "Bearer not-a-valid-token")
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestVerifyJWT_ValidToken(t *testing.T) {
	router := newTestRouter(t, &fakeUserGetter{})

	token, err := jwthelper.GenerateToken(testSigningKey, 1, "test")
	require.NoError(t, err)

	resp := doRequest(router, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestRequireAdmin_RejectsRegularUser(t *testing.T) {
	svc := &fakeUserGetter{users: map[uint]domain.User{
		1: {ID: 1, Role: domain.RoleUser},
	}}
	router := newTestRouter(t, svc)

	token, err := jwthelper.GenerateToken(testSigningKey, 1, "test")
	require.NoError(t, err)

	resp := doRequest(router, "/admin/users", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	svc := &fakeUserGetter{users: map[uint]domain.User{
		1: {ID: 1, Role: domain.RoleAdmin},
	}}
	router := newTestRouter(t, svc)

	token, err := jwthelper.GenerateToken(testSigningKey, 1, "test")
	require.NoError(t, err)

	resp := doRequest(router, "/admin/users", "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.Code)
}
