package rest

const (
	// auth
	RouteRegister      = "/register"
	RouteLogin         = "/login"
	RouteRequestReset  = "/request-reset"
	RouteResetPassword = "/reset-password"

	RouteDashboard = "/dashboard/:rol"

	// per user
	RouteUserInvoices          = "/invoices/:id_user"
	RouteUserInvoicesExport    = RouteUserInvoices + "/export"
	RouteUserNotifications     = "/notifications/:id_user"
	RouteUserNotificationsRead = RouteUserNotifications + "/read"
	RouteUserNotificationRead  = RouteUserNotifications + "/:id_notification/read"
	RouteInvoiceAlerts         = "/invoice-alerts/:id_user"

	// admin
	RouteAdmin                    = "/admin"
	RouteAdminInvoices            = RouteAdmin + "/invoices"
	RouteAdminInvoicesExport      = RouteAdminInvoices + "/export"
	RouteAdminNotifications       = RouteAdmin + "/notifications"
	RouteAdminNotificationsExport = RouteAdminNotifications + "/export"
	RouteAdminUsers               = RouteAdmin + "/users"
	RouteAdminUser                = RouteAdminUsers + "/:id_user"
	RouteAdminUserStatus          = RouteAdminUser + "/status"
	RouteAdminErpCompanies        = RouteAdmin + "/erp-companies"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)

const (
	paramUserID         = "id_user"
	paramNotificationID = "id_notification"
	paramRole           = "rol"
)

// CredentialRoutes carry passwords or reset tokens in their bodies.
var CredentialRoutes = []string{RouteRegister, RouteLogin, RouteRequestReset, RouteResetPassword}
