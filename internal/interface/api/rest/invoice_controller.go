package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/application/services"
	domain "zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/jwt"
	"zentrix-api/internal/interface/api/rest/dto/invoice"
	"zentrix-api/internal/interface/api/rest/middleware"
	"zentrix-api/internal/interface/api/rest/validator"
)

type InvoiceController struct {
	invoiceService ports.InvoiceService
	reportService  ports.ReportService
	logger         *zap.Logger
}

func NewInvoiceController(
	r *gin.Engine,
	invoiceService ports.InvoiceService,
	reportService ports.ReportService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *InvoiceController {
	ic := &InvoiceController{
		invoiceService: invoiceService,
		reportService:  reportService,
		logger:         logger,
	}

	auth := middleware.AuthMiddleware(jwtService)
	self := middleware.SelfOrAdmin(paramUserID)
	admin := middleware.RequireRole(user.RoleAdmin)

	r.GET(RouteUserInvoices, auth, self, ic.GetUserInvoicesHandler)
	r.GET(RouteUserInvoicesExport, auth, self, ic.ExportUserInvoicesHandler)
	r.GET(RouteAdminInvoices, auth, admin, ic.GetInvoicesHandler)
	r.GET(RouteAdminInvoicesExport, auth, admin, ic.ExportInvoicesHandler)

	return ic
}

func invoiceFilter(c *gin.Context) (domain.Filter, bool) {
	f, errs := validator.InvoiceFilter(
		c.Query("number"),
		c.Query("user"),
		c.Query("status"),
		c.Query("from"),
		c.Query("to"),
	)
	if errs != nil {
		badRequest(c, msgInvalidFilters, errs)
		return f, false
	}
	return f, true
}

func (ic *InvoiceController) userInvoices(c *gin.Context) (domain.Invoices, bool) {
	id, ok := userIDParam(c)
	if !ok {
		return nil, false
	}
	f, ok := invoiceFilter(c)
	if !ok {
		return nil, false
	}
	// the per-user list has no user column to match on
	f.UserName = ""

	invs, err := ic.invoiceService.FindUserInvoices(c.Request.Context(), id, f)
	if err != nil {
		ic.logger.Error("FindUserInvoices() error", zap.Error(err), zap.Int64("user_id", int64(id)))
		internalError(c)
		return nil, false
	}
	return invs, true
}

func (ic *InvoiceController) allInvoices(c *gin.Context) (domain.Invoices, bool) {
	f, ok := invoiceFilter(c)
	if !ok {
		return nil, false
	}

	invs, err := ic.invoiceService.FindInvoices(c.Request.Context(), f)
	if err != nil {
		ic.logger.Error("FindInvoices() error", zap.Error(err))
		internalError(c)
		return nil, false
	}
	return invs, true
}

func (ic *InvoiceController) GetUserInvoicesHandler(c *gin.Context) {
	invs, ok := ic.userInvoices(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, invoice.ResponseData{Data: invoice.ToResponseInvoices(invs)})
}

func (ic *InvoiceController) GetInvoicesHandler(c *gin.Context) {
	invs, ok := ic.allInvoices(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, invoice.ResponseData{Data: invoice.ToResponseInvoices(invs)})
}

func (ic *InvoiceController) ExportUserInvoicesHandler(c *gin.Context) {
	format, ok := exportFormat(c)
	if !ok {
		return
	}
	invs, ok := ic.userInvoices(c)
	if !ok {
		return
	}

	f, err := ic.reportService.ExportInvoices(c.Request.Context(), format, invs, false)
	if err != nil {
		ic.logger.Error("ExportInvoices() error", zap.Error(err))
		internalError(c)
		return
	}

	sendFile(c, f)
}

// ExportInvoicesHandler streams the report, or uploads it and returns a
// download link when archive=true.
func (ic *InvoiceController) ExportInvoicesHandler(c *gin.Context) {
	format, ok := exportFormat(c)
	if !ok {
		return
	}
	archive, err := strconv.ParseBool(c.DefaultQuery("archive", "false"))
	if err != nil {
		badRequest(c, msgInvalidFilters, map[string]string{"archive": "valor booleano inválido"})
		return
	}
	invs, ok := ic.allInvoices(c)
	if !ok {
		return
	}

	f, err := ic.reportService.ExportInvoices(c.Request.Context(), format, invs, true)
	if err != nil {
		ic.logger.Error("ExportInvoices() error", zap.Error(err))
		internalError(c)
		return
	}

	if !archive {
		sendFile(c, f)
		return
	}

	owner := "admin"
	if id, ok := middleware.CallerID(c); ok {
		owner = "user-" + strconv.FormatInt(int64(id), 10)
	}
	url, err := ic.reportService.Archive(c.Request.Context(), owner, f)
	if err != nil {
		if errors.Is(err, services.ErrArchiveDisabled) {
			badRequest(c, "El archivo de reportes no está habilitado", nil)
			return
		}
		ic.logger.Error("Archive() error", zap.Error(err))
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reporte archivado",
		"file":    f.Name,
		"url":     url,
	})
}
