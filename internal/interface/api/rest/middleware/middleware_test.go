package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/jwt"
	"zentrix-api/internal/infrastructure/metrics"
)

const secret = "test-secret"

func token(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := jwt.New(secret).GenerateJWT(userID, role, time.Hour)
	require.NoError(t, err)
	return tok
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	js := jwt.New(secret)

	r.GET("/admin", AuthMiddleware(js), RequireRole(user.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/invoices/:id_user", AuthMiddleware(js), SelfOrAdmin("id_user"), func(c *gin.Context) {
		id, _ := CallerID(c)
		role, _ := CallerRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{name: "missing header", path: "/admin", want: http.StatusUnauthorized},
		{name: "not bearer", path: "/admin", header: "Token abc", want: http.StatusUnauthorized},
		{name: "bad token", path: "/admin", header: "Bearer abc", want: http.StatusUnauthorized},
		{name: "unknown role claim", path: "/admin", header: "Bearer " + token(t, "1", "root"), want: http.StatusUnauthorized},
		{name: "user on admin route", path: "/admin", header: "Bearer " + token(t, "2", "User"), want: http.StatusForbidden},
		{name: "admin on admin route", path: "/admin", header: "Bearer " + token(t, "1", "Admin"), want: http.StatusOK},
		{name: "user on own id", path: "/invoices/2", header: "Bearer " + token(t, "2", "User"), want: http.StatusOK},
		{name: "user on other id", path: "/invoices/3", header: "Bearer " + token(t, "2", "User"), want: http.StatusForbidden},
		{name: "user on garbage id", path: "/invoices/abc", header: "Bearer " + token(t, "2", "User"), want: http.StatusForbidden},
		{name: "admin on any id", path: "/invoices/3", header: "Bearer " + token(t, "1", "admin"), want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			require.Equal(t, tt.want, rr.Code)
			if tt.want != http.StatusOK {
				assert.Contains(t, rr.Body.String(), `"message"`)
			}
		})
	}
}

func TestRequestLogGin_OmitsCredentialBodies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(RequestLogGin(zap.New(core), metrics.NewUnregisteredCounter(), "/login"))
	echo := func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(b))
	}
	r.POST("/login", echo)
	r.POST("/notes", echo)

	for _, path := range []string{"/login", "/notes"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(`{"password":"S3creta!"}`)))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `{"password":"S3creta!"}`, rr.Body.String(), "handler must still see the body")
	}

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "<omitted>", entries[0].ContextMap()["body"])
	assert.True(t, strings.Contains(entries[1].ContextMap()["body"].(string), "password"))
}
