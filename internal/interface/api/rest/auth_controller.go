package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/application/services"
	domain "zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/jwt"
	"zentrix-api/internal/interface/api/rest/dto/auth"
	"zentrix-api/internal/interface/api/rest/middleware"
	"zentrix-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserService
	authService ports.Auth
	// exposeResetToken returns the reset token in the response body (demo mode)
	exposeResetToken bool
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	authService ports.Auth,
	jwtService *jwt.Service,
	exposeResetToken bool,
) *AuthController {
	ac := &AuthController{
		logger:           logger,
		userService:      userService,
		authService:      authService,
		exposeResetToken: exposeResetToken,
	}

	r.POST(RouteLogin, ac.LoginHandler)
	r.POST(RouteRequestReset, ac.RequestResetHandler)
	r.POST(RouteResetPassword, ac.ResetPasswordHandler)
	r.POST(
		RouteRegister,
		middleware.AuthMiddleware(jwtService),
		middleware.RequireRole(domain.RoleAdmin),
		ac.RegisterHandler,
	)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidJSON, nil)
		return
	}
	if errs := validator.ValidateLogin(req); errs != nil {
		badRequest(c, msgMissingData, errs)
		return
	}

	u, token, err := ac.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Usuario no encontrado o inactivo"})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Contraseña incorrecta"})
		default:
			ac.logger.Error("Login() error", zap.Error(err), zap.String("username", req.Username))
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, auth.LoginResponse{
		Message:  "Login exitoso",
		Role:     u.Role.String(),
		UserID:   int64(u.ID),
		Name:     u.Name,
		LastName: u.LastName,
		Token:    token,
	})
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidJSON, nil)
		return
	}
	if errs := validator.ValidateRegister(req); errs != nil {
		badRequest(c, msgMissingData, errs)
		return
	}

	uDomain, err := auth.ToDomainUser(req)
	if err != nil {
		badRequest(c, msgMissingData, map[string]string{"rol": "Rol no reconocido"})
		return
	}

	u, err := ac.userService.Register(c.Request.Context(), uDomain, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"message": "El nombre de usuario ya existe"})
		case errors.Is(err, domain.ErrDocumentTaken):
			c.JSON(http.StatusConflict, gin.H{"message": "El documento ya está registrado"})
		default:
			ac.logger.Error("Register() error", zap.Error(err), zap.String("username", req.Username))
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, auth.RegisterResponse{
		Message: "Usuario registrado correctamente",
		UserID:  int64(u.ID),
	})
}

func (ac *AuthController) RequestResetHandler(c *gin.Context) {
	var req auth.RequestResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidJSON, nil)
		return
	}
	if errs := validator.ValidateRequestReset(req); errs != nil {
		badRequest(c, msgMissingData, errs)
		return
	}

	token, err := ac.authService.RequestReset(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
			return
		}
		ac.logger.Error("RequestReset() error", zap.Error(err))
		internalError(c)
		return
	}

	resp := auth.RequestResetResponse{Message: "Token de recuperación generado"}
	if ac.exposeResetToken {
		resp.Token = token
	}

	c.JSON(http.StatusOK, resp)
}

func (ac *AuthController) ResetPasswordHandler(c *gin.Context) {
	var req auth.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidJSON, nil)
		return
	}
	if errs := validator.ValidateResetPassword(req); errs != nil {
		badRequest(c, msgMissingData, errs)
		return
	}

	err := ac.authService.ConsumeResetToken(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidToken):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Token inválido"})
		case errors.Is(err, services.ErrExpiredToken):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Token expirado"})
		default:
			ac.logger.Error("ConsumeResetToken() error", zap.Error(err))
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contraseña actualizada correctamente"})
}
