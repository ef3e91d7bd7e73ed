package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/notification"
	"zentrix-api/internal/domain/report"
	"zentrix-api/internal/infrastructure/metrics"
)

const maxBaseNameLen = 100

const (
	invoiceReportTitle      = "Reporte de facturas"
	notificationReportTitle = "Reporte de notificaciones"
	invoiceFilePrefix       = "facturas"
	notificationFilePrefix  = "notificaciones"
)

var ErrArchiveDisabled = errors.New("report archive is not configured")

var windowsReserved = map[string]struct{}{
	"con": {}, "prn": {}, "aux": {}, "nul": {},
	"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {}, "com6": {}, "com7": {}, "com8": {}, "com9": {},
	"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {}, "lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
}

type ReportService struct {
	renderers map[report.Format]ports.ReportRenderer
	storage   ports.ObjectStorage
	mCounter  *prometheus.CounterVec
	logger    *zap.Logger
	now       func() time.Time
}

// NewReportService accepts a nil storage; Archive then fails with ErrArchiveDisabled.
func NewReportService(
	storage ports.ObjectStorage,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
	renderers ...ports.ReportRenderer,
) ports.ReportService {
	rs := &ReportService{
		renderers: make(map[report.Format]ports.ReportRenderer, len(renderers)),
		storage:   storage,
		mCounter:  mCounter,
		logger:    logger,
		now:       time.Now,
	}
	for _, r := range renderers {
		rs.renderers[r.Format()] = r
	}

	return rs
}

func (rs *ReportService) renderer(format report.Format) (ports.ReportRenderer, error) {
	r, ok := rs.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", report.ErrUnknownFormat, format)
	}
	return r, nil
}

func (rs *ReportService) ExportInvoices(
	_ context.Context,
	format report.Format,
	invs invoice.Invoices,
	withUser bool,
) (*report.File, error) {
	r, err := rs.renderer(format)
	if err != nil {
		return nil, err
	}

	body, err := r.RenderInvoices(invoiceReportTitle, invs, withUser)
	if err != nil {
		return nil, fmt.Errorf("render invoices %s: %w", format, err)
	}

	rs.mCounter.WithLabelValues(metrics.ReportExported).Inc()

	return rs.file(invoiceFilePrefix, format, body), nil
}

func (rs *ReportService) ExportNotifications(
	_ context.Context,
	format report.Format,
	ns notification.Notifications,
	withUser bool,
) (*report.File, error) {
	r, err := rs.renderer(format)
	if err != nil {
		return nil, err
	}

	body, err := r.RenderNotifications(notificationReportTitle, ns, withUser)
	if err != nil {
		return nil, fmt.Errorf("render notifications %s: %w", format, err)
	}

	rs.mCounter.WithLabelValues(metrics.ReportExported).Inc()

	return rs.file(notificationFilePrefix, format, body), nil
}

func (rs *ReportService) file(prefix string, format report.Format, body []byte) *report.File {
	return &report.File{
		Name:        fmt.Sprintf("%s_%s.%s", prefix, rs.now().Format("20060102"), format),
		ContentType: format.ContentType(),
		Body:        body,
	}
}

func (rs *ReportService) Archive(ctx context.Context, owner string, f *report.File) (string, error) {
	if rs.storage == nil {
		return "", ErrArchiveDisabled
	}

	key := genSafeStorageKey(rs.now(), owner, f.Name)
	if err := rs.storage.Upload(ctx, key, f.ContentType, f.Body); err != nil {
		return "", fmt.Errorf("upload report %s: %w", key, err)
	}

	url, err := rs.storage.PresignGet(ctx, key)
	if err != nil {
		return "", fmt.Errorf("presign report %s: %w", key, err)
	}

	rs.mCounter.WithLabelValues(metrics.ReportArchived).Inc()
	rs.logger.Info("report archived",
		zap.String("bucket", rs.storage.GetBucket()),
		zap.String("key", key),
	)

	return url, nil
}

// genSafeStorageKey: "reports/YYYY/MM/DD/<ts-nanosec>/<owner>/<filename>.ext"
func genSafeStorageKey(now time.Time, owner, fileName string) string {
	now = now.UTC()
	return fmt.Sprintf(
		"reports/%04d/%02d/%02d/%s/%s/%s",
		now.Year(), int(now.Month()), now.Day(),
		now.Format("20060102T150405.000000000Z"),
		sanitizeFileName(owner),
		sanitizeFileName(fileName),
	)
}

// sanitizeFileName make file name ASCII standard
func sanitizeFileName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	raw := path.Ext(s)
	base := strings.TrimSuffix(s, raw)
	ext := strings.ToLower(raw)

	// [a-z0-9], '-' and '_' kept, dot/space become '-'
	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '_':
			b.WriteRune(r)
			prevDash = false
		case r == '-' || r == '.' || unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		default:
		}
	}
	base = strings.Trim(b.String(), "-")

	if base == "" {
		base = "file"
	}
	if _, bad := windowsReserved[base]; bad {
		base = "_" + base
	}

	for utf8.RuneCountInString(base)+len(ext) > maxBaseNameLen {
		_, size := utf8.DecodeLastRuneInString(base)
		if size <= 0 || size > len(base) {
			break
		}
		base = base[:len(base)-size]
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
