package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// values of the "result" label
const (
	AppRequests             = "app_requests_total"
	LoginSucceeded          = "login_succeeded_total"
	LoginFailed             = "login_failed_total"
	UserRegistered          = "user_registered_total"
	UserUpdated             = "user_updated_total"
	RegistrationRolledBack  = "registration_rolled_back_total"
	NotificationCreated     = "notification_created_total"
	NotificationWriteFailed = "notification_write_failed_total"
	PasswordResetIssued     = "password_reset_issued_total"
	PasswordResetConsumed   = "password_reset_consumed_total"
	ReportExported          = "report_exported_total"
	ReportArchived          = "report_archived_total"
)

func NewCounter() *prometheus.CounterVec {
	return promauto.NewCounterVec(Opts(), []string{"result"})
}

// NewUnregisteredCounter is the same vector without touching the default registry.
func NewUnregisteredCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(Opts(), []string{"result"})
}

func Opts() prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: "zentrix",
		Name:      "general_counters",
	}
}
