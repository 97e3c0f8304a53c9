package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/user"
	userSvc "library-backend/internal/domains/user/service"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/session"
	"library-backend/internal/testutil"
	"library-backend/pkg/jwt"
)

func newProbe(t *testing.T) (*gin.Engine, user.Service, *jwt.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	_, _, users := testutil.NewStores()
	tokens := jwt.NewManager("test-secret")
	svc := userSvc.NewUserService(users, tokens, "secret")

	r := gin.New()
	r.GET("/probe", middleware.Session(tokens, svc), func(c *gin.Context) {
		if u, ok := session.CurrentUser(c.Request.Context()); ok {
			c.JSON(http.StatusOK, gin.H{"user": u.Username})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": nil})
	})
	return r, svc, tokens
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNoHeaderIsAnonymous(t *testing.T) {
	r, _, _ := newProbe(t)

	w := request(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user": null}`, w.Body.String())
}

func TestNonBearerHeaderIsAnonymous(t *testing.T) {
	r, _, _ := newProbe(t)

	w := request(r, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user": null}`, w.Body.String())
}

func TestInvalidBearerTokenFailsRequest(t *testing.T) {
	r, _, _ := newProbe(t)

	// A token was presented, so there is no anonymous fallback
	w := request(r, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidBearerTokenLoadsUser(t *testing.T) {
	r, svc, _ := newProbe(t)

	created, err := svc.CreateUser(context.Background(), user.CreateUserInput{
		Username:      "alice",
		FavoriteGenre: "sci-fi",
	})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), user.LoginInput{
		Username: "alice",
		Password: "secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID.Hex())

	w := request(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user": "alice"}`, w.Body.String())
}

func TestBearerPrefixIsCaseInsensitive(t *testing.T) {
	r, svc, _ := newProbe(t)

	_, err := svc.CreateUser(context.Background(), user.CreateUserInput{
		Username:      "alice",
		FavoriteGenre: "sci-fi",
	})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), user.LoginInput{
		Username: "alice",
		Password: "secret",
	})
	require.NoError(t, err)

	w := request(r, "bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user": "alice"}`, w.Body.String())
}

func TestTokenForMissingUserFailsRequest(t *testing.T) {
	r, _, tokens := newProbe(t)

	// Token is validly signed but its subject does not exist
	token, err := tokens.Generate("ghost", "64f0c2a9e1b2c3d4e5f60718")
	require.NoError(t, err)

	w := request(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
