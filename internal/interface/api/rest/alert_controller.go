package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/infrastructure/jwt"
	"zentrix-api/internal/interface/api/rest/dto/alert"
	"zentrix-api/internal/interface/api/rest/middleware"
)

type AlertController struct {
	alertService ports.AlertService
	logger       *zap.Logger
	now          func() time.Time
}

func NewAlertController(
	r *gin.Engine,
	alertService ports.AlertService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AlertController {
	ac := &AlertController{
		alertService: alertService,
		logger:       logger,
		now:          time.Now,
	}

	r.GET(
		RouteInvoiceAlerts,
		middleware.AuthMiddleware(jwtService),
		middleware.SelfOrAdmin(paramUserID),
		ac.GetAlertsHandler,
	)

	return ac
}

func (ac *AlertController) GetAlertsHandler(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	alerts, err := ac.alertService.Generate(c.Request.Context(), id, ac.now())
	if err != nil {
		ac.logger.Error("Generate() error", zap.Error(err), zap.Int64("user_id", int64(id)))
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, alert.ToResponse(alerts))
}
