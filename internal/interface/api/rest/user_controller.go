package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zentrix-api/internal/application/ports"
	domain "zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/jwt"
	"zentrix-api/internal/interface/api/rest/dto/erpcompany"
	"zentrix-api/internal/interface/api/rest/dto/user"
	"zentrix-api/internal/interface/api/rest/middleware"
	"zentrix-api/internal/interface/api/rest/validator"
)

// UserController serves the admin user management routes.
type UserController struct {
	userService    ports.UserService
	companyService ports.ErpCompanyService
	logger         *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	companyService ports.ErpCompanyService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService:    userService,
		companyService: companyService,
		logger:         logger,
	}

	admin := []gin.HandlerFunc{middleware.AuthMiddleware(jwtService), middleware.RequireRole(domain.RoleAdmin)}

	r.GET(RouteAdminUsers, append(admin, uc.GetUsersHandler)...)
	r.PUT(RouteAdminUser, append(admin, uc.UpdateUserHandler)...)
	r.PATCH(RouteAdminUserStatus, append(admin, uc.SetStatusHandler)...)
	r.GET(RouteAdminErpCompanies, append(admin, uc.GetCompaniesHandler)...)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	users, err := uc.userService.FindUsers(c.Request.Context())
	if err != nil {
		uc.logger.Error("FindUsers() error", zap.Error(err))
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Data: user.ToResponseUsers(users),
	})
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidJSON, nil)
		return
	}
	if errs := validator.ValidateUserUpdate(req); errs != nil {
		badRequest(c, msgMissingData, errs)
		return
	}

	uDomain, err := user.ToDomainUser(id, req)
	if err != nil {
		badRequest(c, msgMissingData, map[string]string{"rol": "Rol no reconocido"})
		return
	}

	u, err := uc.userService.UpdateUser(c.Request.Context(), uDomain)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": "El documento ya está registrado"})
			return
		}
		uc.logger.Error("UpdateUser() error", zap.Error(err), zap.Int64("user_id", int64(id)))
		internalError(c)
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) SetStatusHandler(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	var req user.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidJSON, nil)
		return
	}
	if req.Active == nil {
		badRequest(c, msgMissingData, map[string]string{"active": "campo requerido"})
		return
	}

	u, err := uc.userService.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		uc.logger.Error("SetActive() error", zap.Error(err), zap.Int64("user_id", int64(id)))
		internalError(c)
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Estado actualizado",
		"user":    user.ToResponseUser(*u),
	})
}

func (uc *UserController) GetCompaniesHandler(c *gin.Context) {
	companies, err := uc.companyService.FindCompanies(c.Request.Context())
	if err != nil {
		uc.logger.Error("FindCompanies() error", zap.Error(err))
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, erpcompany.ResponseData{
		Data: erpcompany.ToResponseCompanies(companies),
	})
}
