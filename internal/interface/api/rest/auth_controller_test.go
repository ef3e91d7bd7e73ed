package rest

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"zentrix-api/internal/application/services"
	domain "zentrix-api/internal/domain/user"
	"zentrix-api/internal/interface/api/rest/dto/auth"
)

func newAuthRouter(t *testing.T, us *FakeUserService, as *fakeAuthService, expose bool) *gin.Engine {
	t.Helper()
	r, js := newTestRouter(t)
	NewAuthController(r, zap.NewNop(), us, as, js, expose)
	return r
}

func TestAuthController_LoginHandler(t *testing.T) {
	type want struct {
		code   int
		jsonEq map[string]any
	}

	tests := []struct {
		name  string
		body  any
		login func(ctx context.Context, username, password string) (*domain.User, string, error)
		want  want
	}{
		{
			name: "invalid JSON",
			body: "{bad json",
			want: want{code: http.StatusBadRequest, jsonEq: map[string]any{"message": "JSON inválido"}},
		},
		{
			name: "missing fields",
			body: auth.LoginRequest{Username: "arestrepo"},
			want: want{code: http.StatusBadRequest, jsonEq: map[string]any{"message": "Faltan datos requeridos"}},
		},
		{
			name: "unknown or inactive user -> 401",
			body: auth.LoginRequest{Username: "nadie", Password: "x"},
			login: func(ctx context.Context, username, password string) (*domain.User, string, error) {
				return nil, "", services.ErrUserNotFound
			},
			want: want{code: http.StatusUnauthorized, jsonEq: map[string]any{"message": "Usuario no encontrado o inactivo"}},
		},
		{
			name: "wrong password -> 401",
			body: auth.LoginRequest{Username: "arestrepo", Password: "mala"},
			login: func(ctx context.Context, username, password string) (*domain.User, string, error) {
				return nil, "", services.ErrInvalidCredentials
			},
			want: want{code: http.StatusUnauthorized, jsonEq: map[string]any{"message": "Contraseña incorrecta"}},
		},
		{
			name: "store error -> 500",
			body: auth.LoginRequest{Username: "arestrepo", Password: "x"},
			login: func(ctx context.Context, username, password string) (*domain.User, string, error) {
				return nil, "", errors.New("db down")
			},
			want: want{code: http.StatusInternalServerError, jsonEq: map[string]any{"message": "Error interno del servidor"}},
		},
		{
			name: "success",
			body: auth.LoginRequest{Username: "arestrepo", Password: "S3creta!"},
			login: func(ctx context.Context, username, password string) (*domain.User, string, error) {
				return &domain.User{ID: 7, Name: "Ana", LastName: "Restrepo", Role: domain.RoleUser}, "tok_123", nil
			},
			want: want{code: http.StatusOK, jsonEq: map[string]any{
				"message":  "Login exitoso",
				"rol":      "User",
				"id_user":  float64(7),
				"nombre":   "Ana",
				"apellido": "Restrepo",
				"token":    "tok_123",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			as := &fakeAuthService{LoginFunc: tt.login}
			r := newAuthRouter(t, &FakeUserService{}, as, true)

			rr := do(t, r, http.MethodPost, RouteLogin, "", tt.body)
			require.Equal(t, tt.want.code, rr.Code)

			resp := decode(t, rr)
			for k, v := range tt.want.jsonEq {
				assert.Equal(t, v, resp[k], "field %q mismatch", k)
			}
		})
	}
}

func validRegisterBody() auth.RegisterRequest {
	return auth.RegisterRequest{
		Email:    "ana@example.com",
		Password: "S3creta!",
		Name:     "Ana",
		LastName: "Restrepo",
		Document: "1020304050",
		Phone:    "3001234567",
		Username: "arestrepo",
		Role:     "user",
	}
}

func TestAuthController_RegisterHandler(t *testing.T) {
	admin := bearer(t, "1", "Admin")

	tests := []struct {
		name     string
		auth     string
		body     any
		register func(ctx context.Context, u domain.User, password string) (*domain.User, error)
		wantCode int
		wantMsg  string
	}{
		{
			name:     "no token",
			body:     validRegisterBody(),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "non admin",
			auth:     bearer(t, "7", "User"),
			body:     validRegisterBody(),
			wantCode: http.StatusForbidden,
			wantMsg:  "Acceso denegado",
		},
		{
			name:     "missing fields",
			auth:     admin,
			body:     auth.RegisterRequest{Username: "arestrepo"},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Faltan datos requeridos",
		},
		{
			name: "duplicate username",
			auth: admin,
			body: validRegisterBody(),
			register: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
				return nil, domain.ErrUsernameTaken
			},
			wantCode: http.StatusConflict,
			wantMsg:  "El nombre de usuario ya existe",
		},
		{
			name: "duplicate document",
			auth: admin,
			body: validRegisterBody(),
			register: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
				return nil, domain.ErrDocumentTaken
			},
			wantCode: http.StatusConflict,
			wantMsg:  "El documento ya está registrado",
		},
		{
			name: "store error",
			auth: admin,
			body: validRegisterBody(),
			register: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
				return nil, errors.New("db down")
			},
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Error interno del servidor",
		},
		{
			name: "created",
			auth: admin,
			body: validRegisterBody(),
			register: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
				if u.Role != domain.RoleUser || password != "S3creta!" {
					return nil, errors.New("unexpected input")
				}
				u.ID = 12
				return &u, nil
			},
			wantCode: http.StatusCreated,
			wantMsg:  "Usuario registrado correctamente",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			us := &FakeUserService{RegisterFunc: tt.register}
			r := newAuthRouter(t, us, &fakeAuthService{}, true)

			rr := do(t, r, http.MethodPost, RouteRegister, tt.auth, tt.body)
			require.Equal(t, tt.wantCode, rr.Code)

			resp := decode(t, rr)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, resp["message"])
			}
			if tt.wantCode == http.StatusCreated {
				assert.Equal(t, float64(12), resp["id_user"])
			}
			if tt.wantCode == http.StatusBadRequest {
				assert.Contains(t, resp, "details")
			}
		})
	}
}

func TestAuthController_RequestResetHandler(t *testing.T) {
	as := &fakeAuthService{
		RequestResetFunc: func(ctx context.Context, username string) (string, error) {
			if username == "arestrepo" {
				return "abc123", nil
			}
			return "", services.ErrUserNotFound
		},
	}

	t.Run("token exposed", func(t *testing.T) {
		r := newAuthRouter(t, &FakeUserService{}, as, true)
		rr := do(t, r, http.MethodPost, RouteRequestReset, "", auth.RequestResetRequest{Username: "arestrepo"})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "abc123", decode(t, rr)["token"])
	})

	t.Run("token hidden", func(t *testing.T) {
		r := newAuthRouter(t, &FakeUserService{}, as, false)
		rr := do(t, r, http.MethodPost, RouteRequestReset, "", auth.RequestResetRequest{Username: "arestrepo"})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, decode(t, rr), "token")
	})

	t.Run("unknown user", func(t *testing.T) {
		r := newAuthRouter(t, &FakeUserService{}, as, true)
		rr := do(t, r, http.MethodPost, RouteRequestReset, "", auth.RequestResetRequest{Username: "nadie"})
		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Usuario no encontrado", decode(t, rr)["message"])
	})
}

func TestAuthController_ResetPasswordHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "missing token", body: auth.ResetPasswordRequest{NewPassword: "x"}, wantCode: http.StatusBadRequest, wantMsg: "Faltan datos requeridos"},
		{name: "invalid token", body: auth.ResetPasswordRequest{Token: "t", NewPassword: "x"}, err: services.ErrInvalidToken, wantCode: http.StatusUnauthorized, wantMsg: "Token inválido"},
		{name: "expired token", body: auth.ResetPasswordRequest{Token: "t", NewPassword: "x"}, err: services.ErrExpiredToken, wantCode: http.StatusUnauthorized, wantMsg: "Token expirado"},
		{name: "store error", body: auth.ResetPasswordRequest{Token: "t", NewPassword: "x"}, err: errors.New("db"), wantCode: http.StatusInternalServerError},
		{name: "ok", body: auth.ResetPasswordRequest{Token: "t", NewPassword: "x"}, wantCode: http.StatusOK, wantMsg: "Contraseña actualizada correctamente"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			as := &fakeAuthService{
				ConsumeResetTokenFunc: func(ctx context.Context, token, newPassword string) error { return tt.err },
			}
			r := newAuthRouter(t, &FakeUserService{}, as, true)

			rr := do(t, r, http.MethodPost, RouteResetPassword, "", tt.body)
			require.Equal(t, tt.wantCode, rr.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decode(t, rr)["message"])
			}
		})
	}
}
