package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/application/services"
	domain "zentrix-api/internal/domain/notification"
	"zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/jwt"
	"zentrix-api/internal/interface/api/rest/dto/notification"
	"zentrix-api/internal/interface/api/rest/middleware"
	"zentrix-api/internal/interface/api/rest/validator"
)

type NotificationController struct {
	notificationService ports.NotificationService
	reportService       ports.ReportService
	logger              *zap.Logger
}

func NewNotificationController(
	r *gin.Engine,
	notificationService ports.NotificationService,
	reportService ports.ReportService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *NotificationController {
	nc := &NotificationController{
		notificationService: notificationService,
		reportService:       reportService,
		logger:              logger,
	}

	auth := middleware.AuthMiddleware(jwtService)
	self := middleware.SelfOrAdmin(paramUserID)
	admin := middleware.RequireRole(user.RoleAdmin)

	r.GET(RouteUserNotifications, auth, self, nc.GetUserNotificationsHandler)
	r.PATCH(RouteUserNotificationsRead, auth, self, nc.MarkAllReadHandler)
	r.PATCH(RouteUserNotificationRead, auth, self, nc.MarkReadHandler)
	r.DELETE(RouteUserNotificationsRead, auth, self, nc.DeleteReadHandler)
	r.GET(RouteAdminNotifications, auth, admin, nc.GetNotificationsHandler)
	r.GET(RouteAdminNotificationsExport, auth, admin, nc.ExportNotificationsHandler)

	return nc
}

func notificationFilter(c *gin.Context) (domain.Filter, bool) {
	f, errs := validator.NotificationFilter(
		c.Query("message"),
		c.Query("user"),
		c.Query("type"),
		c.Query("unread"),
	)
	if errs != nil {
		badRequest(c, msgInvalidFilters, errs)
		return f, false
	}
	return f, true
}

func (nc *NotificationController) allNotifications(c *gin.Context) (domain.Notifications, bool) {
	f, ok := notificationFilter(c)
	if !ok {
		return nil, false
	}

	ns, err := nc.notificationService.FindNotifications(c.Request.Context(), f)
	if err != nil {
		nc.logger.Error("FindNotifications() error", zap.Error(err))
		internalError(c)
		return nil, false
	}
	return ns, true
}

func (nc *NotificationController) GetUserNotificationsHandler(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	f, ok := notificationFilter(c)
	if !ok {
		return
	}
	f.UserName = ""

	ns, err := nc.notificationService.FindUserNotifications(c.Request.Context(), id, f)
	if err != nil {
		nc.logger.Error("FindUserNotifications() error", zap.Error(err), zap.Int64("user_id", int64(id)))
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, notification.ResponseData{Data: notification.ToResponseNotifications(ns)})
}

func (nc *NotificationController) MarkReadHandler(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	nID, ok := validator.ParseID(c.Param(paramNotificationID))
	if !ok {
		badRequest(c, msgInvalidID, nil)
		return
	}

	err := nc.notificationService.MarkRead(c.Request.Context(), id, domain.ID(nID))
	if err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Notificación no encontrada"})
			return
		}
		nc.logger.Error("MarkRead() error", zap.Error(err), zap.Int64("notification_id", nID))
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notificación marcada como leída"})
}

func (nc *NotificationController) MarkAllReadHandler(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	n, err := nc.notificationService.MarkAllRead(c.Request.Context(), id)
	if err != nil {
		nc.logger.Error("MarkAllRead() error", zap.Error(err), zap.Int64("user_id", int64(id)))
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, notification.AffectedResponse{
		Message:  "Notificaciones marcadas como leídas",
		Affected: n,
	})
}

func (nc *NotificationController) DeleteReadHandler(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	n, err := nc.notificationService.DeleteRead(c.Request.Context(), id)
	if err != nil {
		nc.logger.Error("DeleteRead() error", zap.Error(err), zap.Int64("user_id", int64(id)))
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, notification.AffectedResponse{
		Message:  "Notificaciones leídas eliminadas",
		Affected: n,
	})
}

func (nc *NotificationController) GetNotificationsHandler(c *gin.Context) {
	ns, ok := nc.allNotifications(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, notification.ResponseData{Data: notification.ToResponseNotifications(ns)})
}

func (nc *NotificationController) ExportNotificationsHandler(c *gin.Context) {
	format, ok := exportFormat(c)
	if !ok {
		return
	}
	ns, ok := nc.allNotifications(c)
	if !ok {
		return
	}

	f, err := nc.reportService.ExportNotifications(c.Request.Context(), format, ns, true)
	if err != nil {
		nc.logger.Error("ExportNotifications() error", zap.Error(err))
		internalError(c)
		return
	}

	sendFile(c, f)
}
