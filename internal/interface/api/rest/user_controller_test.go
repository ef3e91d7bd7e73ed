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

	"zentrix-api/internal/domain/erpcompany"
	domain "zentrix-api/internal/domain/user"
	"zentrix-api/internal/interface/api/rest/dto/user"
)

func newUserRouter(t *testing.T, us *FakeUserService, cs *fakeCompanyService) *gin.Engine {
	t.Helper()
	r, js := newTestRouter(t)
	NewUserController(r, us, cs, zap.NewNop(), js)
	return r
}

func TestUserController_GetUsersHandler(t *testing.T) {
	us := &FakeUserService{
		FindUsersFunc: func(ctx context.Context) (domain.Users, error) {
			return domain.Users{{ID: 7, Username: "arestrepo", Role: domain.RoleUser, State: domain.StateActive}}, nil
		},
	}
	r := newUserRouter(t, us, &fakeCompanyService{})

	rr := do(t, r, http.MethodGet, RouteAdminUsers, bearer(t, "1", "Admin"), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	data := decode(t, rr)["data"].([]any)
	require.Len(t, data, 1)
	row := data[0].(map[string]any)
	assert.Equal(t, "arestrepo", row["username"])
	assert.Equal(t, "activo", row["estado"])
	assert.NotContains(t, row, "password_hash")

	rr = do(t, r, http.MethodGet, RouteAdminUsers, bearer(t, "7", "User"), nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestUserController_UpdateUserHandler(t *testing.T) {
	us := &FakeUserService{
		UpdateUserFunc: func(ctx context.Context, u domain.User) (*domain.User, error) {
			switch u.ID {
			case 99:
				return nil, nil
			case 98:
				return nil, domain.ErrDocumentTaken
			}
			return &u, nil
		},
	}
	r := newUserRouter(t, us, &fakeCompanyService{})
	admin := bearer(t, "1", "Admin")
	body := user.UpdateRequest{
		Name:     "Ana",
		LastName: "Restrepo",
		Document: "1020304050",
		Email:    "ana@example.com",
		Phone:    "3001234567",
		Role:     "admin",
	}

	rr := do(t, r, http.MethodPut, "/admin/users/7", admin, body)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Admin", decode(t, rr)["rol"])

	rr = do(t, r, http.MethodPut, "/admin/users/99", admin, body)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, r, http.MethodPut, "/admin/users/98", admin, body)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = do(t, r, http.MethodPut, "/admin/users/x", admin, body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	body.Role = "cliente"
	rr = do(t, r, http.MethodPut, "/admin/users/7", admin, body)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decode(t, rr), "details")
}

func TestUserController_SetStatusHandler(t *testing.T) {
	var gotActive bool
	us := &FakeUserService{
		SetActiveFunc: func(ctx context.Context, id domain.ID, active bool) (*domain.User, error) {
			gotActive = active
			if id == 99 {
				return nil, nil
			}
			state := domain.StateInactive
			if active {
				state = domain.StateActive
			}
			return &domain.User{ID: id, State: state, Role: domain.RoleUser}, nil
		},
	}
	r := newUserRouter(t, us, &fakeCompanyService{})
	admin := bearer(t, "1", "Admin")

	rr := do(t, r, http.MethodPatch, "/admin/users/7/status", admin, map[string]any{"active": false})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, gotActive)
	assert.Equal(t, "inactivo", decode(t, rr)["user"].(map[string]any)["estado"])

	rr = do(t, r, http.MethodPatch, "/admin/users/7/status", admin, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, r, http.MethodPatch, "/admin/users/99/status", admin, map[string]any{"active": true})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUserController_GetCompaniesHandler(t *testing.T) {
	cs := &fakeCompanyService{
		FindCompaniesFunc: func(ctx context.Context) (erpcompany.Companies, error) {
			return erpcompany.Companies{{ID: 1, Name: "Nueva EPS", TaxID: "900156264"}}, nil
		},
	}
	r := newUserRouter(t, &FakeUserService{}, cs)

	rr := do(t, r, http.MethodGet, RouteAdminErpCompanies, bearer(t, "1", "Admin"), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	data := decode(t, rr)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "900156264", data[0].(map[string]any)["nit"])

	cs.FindCompaniesFunc = func(ctx context.Context) (erpcompany.Companies, error) {
		return nil, errors.New("db down")
	}
	rr = do(t, r, http.MethodGet, RouteAdminErpCompanies, bearer(t, "1", "Admin"), nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
