package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"zentrix-api/internal/domain/alert"
	"zentrix-api/internal/domain/dashboard"
	"zentrix-api/internal/domain/erpcompany"
	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/notification"
	"zentrix-api/internal/domain/report"
	domain "zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/jwt"
)

const testSecret = "test-secret"

type FakeUserService struct {
	FindUserByIDFunc func(ctx context.Context, id domain.ID) (*domain.User, error)
	FindUsersFunc    func(ctx context.Context) (domain.Users, error)
	RegisterFunc     func(ctx context.Context, u domain.User, password string) (*domain.User, error)
	UpdateUserFunc   func(ctx context.Context, u domain.User) (*domain.User, error)
	SetActiveFunc    func(ctx context.Context, id domain.ID, active bool) (*domain.User, error)
}

func (f *FakeUserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	return f.FindUserByIDFunc(ctx, id)
}

func (f *FakeUserService) FindUsers(ctx context.Context) (domain.Users, error) {
	return f.FindUsersFunc(ctx)
}

func (f *FakeUserService) Register(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	return f.RegisterFunc(ctx, u, password)
}

func (f *FakeUserService) UpdateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	return f.UpdateUserFunc(ctx, u)
}

func (f *FakeUserService) SetActive(ctx context.Context, id domain.ID, active bool) (*domain.User, error) {
	return f.SetActiveFunc(ctx, id, active)
}

type fakeAuthService struct {
	LoginFunc             func(ctx context.Context, username, password string) (*domain.User, string, error)
	RequestResetFunc      func(ctx context.Context, username string) (string, error)
	ConsumeResetTokenFunc func(ctx context.Context, token, newPassword string) error
}

func (f *fakeAuthService) Hash(plain string) (string, error) { return "hash:" + plain, nil }

func (f *fakeAuthService) Verify(plain, digest string) bool { return digest == "hash:"+plain }

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	return f.LoginFunc(ctx, username, password)
}

func (f *fakeAuthService) IssueResetToken(ctx context.Context, userID domain.ID) (string, error) {
	return "", nil
}

func (f *fakeAuthService) RequestReset(ctx context.Context, username string) (string, error) {
	return f.RequestResetFunc(ctx, username)
}

func (f *fakeAuthService) ConsumeResetToken(ctx context.Context, token, newPassword string) error {
	return f.ConsumeResetTokenFunc(ctx, token, newPassword)
}

type fakeCompanyService struct {
	FindCompaniesFunc func(ctx context.Context) (erpcompany.Companies, error)
}

func (f *fakeCompanyService) FindCompanies(ctx context.Context) (erpcompany.Companies, error) {
	return f.FindCompaniesFunc(ctx)
}

type fakeInvoiceService struct {
	FindUserInvoicesFunc func(ctx context.Context, userID domain.ID, f invoice.Filter) (invoice.Invoices, error)
	FindInvoicesFunc     func(ctx context.Context, f invoice.Filter) (invoice.Invoices, error)
}

func (f *fakeInvoiceService) FindUserInvoices(ctx context.Context, userID domain.ID, flt invoice.Filter) (invoice.Invoices, error) {
	return f.FindUserInvoicesFunc(ctx, userID, flt)
}

func (f *fakeInvoiceService) FindInvoices(ctx context.Context, flt invoice.Filter) (invoice.Invoices, error) {
	return f.FindInvoicesFunc(ctx, flt)
}

type fakeNotificationService struct {
	FindUserNotificationsFunc func(ctx context.Context, userID domain.ID, f notification.Filter) (notification.Notifications, error)
	FindNotificationsFunc     func(ctx context.Context, f notification.Filter) (notification.Notifications, error)
	MarkReadFunc              func(ctx context.Context, userID domain.ID, id notification.ID) error
	MarkAllReadFunc           func(ctx context.Context, userID domain.ID) (int64, error)
	DeleteReadFunc            func(ctx context.Context, userID domain.ID) (int64, error)
}

func (f *fakeNotificationService) FindUserNotifications(
	ctx context.Context,
	userID domain.ID,
	flt notification.Filter,
) (notification.Notifications, error) {
	return f.FindUserNotificationsFunc(ctx, userID, flt)
}

func (f *fakeNotificationService) FindNotifications(ctx context.Context, flt notification.Filter) (notification.Notifications, error) {
	return f.FindNotificationsFunc(ctx, flt)
}

func (f *fakeNotificationService) MarkRead(ctx context.Context, userID domain.ID, id notification.ID) error {
	return f.MarkReadFunc(ctx, userID, id)
}

func (f *fakeNotificationService) MarkAllRead(ctx context.Context, userID domain.ID) (int64, error) {
	return f.MarkAllReadFunc(ctx, userID)
}

func (f *fakeNotificationService) DeleteRead(ctx context.Context, userID domain.ID) (int64, error) {
	return f.DeleteReadFunc(ctx, userID)
}

type fakeAlertService struct {
	GenerateFunc func(ctx context.Context, userID domain.ID, now time.Time) (alert.Alerts, error)
}

func (f *fakeAlertService) Generate(ctx context.Context, userID domain.ID, now time.Time) (alert.Alerts, error) {
	return f.GenerateFunc(ctx, userID, now)
}

type fakeDashboardService struct {
	SummaryFunc func(ctx context.Context, role domain.Role, callerID domain.ID) (*dashboard.Summary, error)
}

func (f *fakeDashboardService) Summary(ctx context.Context, role domain.Role, callerID domain.ID) (*dashboard.Summary, error) {
	return f.SummaryFunc(ctx, role, callerID)
}

type fakeReportService struct {
	ExportInvoicesFunc      func(ctx context.Context, format report.Format, invs invoice.Invoices, withUser bool) (*report.File, error)
	ExportNotificationsFunc func(ctx context.Context, format report.Format, ns notification.Notifications, withUser bool) (*report.File, error)
	ArchiveFunc             func(ctx context.Context, owner string, f *report.File) (string, error)
}

func (f *fakeReportService) ExportInvoices(
	ctx context.Context,
	format report.Format,
	invs invoice.Invoices,
	withUser bool,
) (*report.File, error) {
	return f.ExportInvoicesFunc(ctx, format, invs, withUser)
}

func (f *fakeReportService) ExportNotifications(
	ctx context.Context,
	format report.Format,
	ns notification.Notifications,
	withUser bool,
) (*report.File, error) {
	return f.ExportNotificationsFunc(ctx, format, ns, withUser)
}

func (f *fakeReportService) Archive(ctx context.Context, owner string, file *report.File) (string, error) {
	return f.ArchiveFunc(ctx, owner, file)
}

func newTestRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return gin.New(), jwt.New(testSecret)
}

func bearer(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := jwt.New(testSecret).GenerateJWT(userID, role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func do(t *testing.T, r *gin.Engine, method, path, auth string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(v)
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, rd)
	require.NoError(t, err)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}
