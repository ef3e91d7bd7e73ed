package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/jwt"
	"zentrix-api/internal/interface/api/rest/dto/dashboard"
	"zentrix-api/internal/interface/api/rest/middleware"
)

type DashboardController struct {
	dashboardService ports.DashboardService
	logger           *zap.Logger
}

func NewDashboardController(
	r *gin.Engine,
	dashboardService ports.DashboardService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *DashboardController {
	dc := &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}

	r.GET(RouteDashboard, middleware.AuthMiddleware(jwtService), dc.GetDashboardHandler)

	return dc
}

// GetDashboardHandler serves the admin view to admins only; the user view
// always counts the caller's own rows.
func (dc *DashboardController) GetDashboardHandler(c *gin.Context) {
	role, err := user.ParseRole(c.Param(paramRole))
	if err != nil {
		badRequest(c, "Rol no reconocido", nil)
		return
	}

	callerRole, _ := middleware.CallerRole(c)
	callerID, _ := middleware.CallerID(c)
	if role == user.RoleAdmin && callerRole != user.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Acceso denegado"})
		return
	}

	s, err := dc.dashboardService.Summary(c.Request.Context(), role, callerID)
	if err != nil {
		dc.logger.Error("Summary() error", zap.Error(err), zap.String("rol", role.String()))
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, dashboard.ToResponseSummary(*s))
}
