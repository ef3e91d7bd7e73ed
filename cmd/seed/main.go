// Command seed fills an empty database with EPS companies, an admin, demo
// users and a spread of invoices that exercises every alert bucket.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"math/rand/v2"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"zentrix-api/config"
	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/application/services"
	"zentrix-api/internal/domain/alert"
	"zentrix-api/internal/domain/erpcompany"
	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/db/postgres"
	companyrepo "zentrix-api/internal/infrastructure/db/postgres/erpcompany"
	invoicerepo "zentrix-api/internal/infrastructure/db/postgres/invoice"
	userrepo "zentrix-api/internal/infrastructure/db/postgres/user"
	"zentrix-api/internal/infrastructure/jwt"
	"zentrix-api/internal/infrastructure/metrics"
	"zentrix-api/internal/infrastructure/mq"
	"zentrix-api/internal/infrastructure/resettoken"
)

const demoPassword = "Zentrix2025*"

var companies = []erpcompany.Company{
	{Name: "Nueva EPS", TaxID: "900156264-2", Address: "Bogotá D.C.", Email: "facturacion@nuevaeps.com.co"},
	{Name: "Sanitas EPS", TaxID: "800251440-6", Address: "Bogotá D.C.", Email: "facturacion@sanitas.com.co"},
	{Name: "Sura EPS", TaxID: "800088702-2", Address: "Medellín", Email: "facturacion@epssura.com.co"},
	{Name: "Salud Total EPS", TaxID: "800130907-4", Address: "Bogotá D.C.", Email: "facturacion@saludtotal.com.co"},
	{Name: "Compensar EPS", TaxID: "860066942-7", Address: "Bogotá D.C.", Email: "facturacion@compensar.com"},
	{Name: "Famisanar EPS", TaxID: "830003564-7", Address: "Bogotá D.C.", Email: "facturacion@famisanar.com.co"},
}

var demoUsers = []user.User{
	{Name: "Laura", LastName: "Gómez", Document: "1020304050", Email: "laura.gomez@zentrix.co", Phone: "3001234567", Username: "lgomez", Role: user.RoleUser},
	{Name: "Andrés", LastName: "Martínez", Document: "1030405060", Email: "andres.martinez@zentrix.co", Phone: "3109876543", Username: "amartinez", Role: user.RoleUser},
	{Name: "Camila", LastName: "Rodríguez", Document: "1040506070", Email: "camila.rodriguez@zentrix.co", Phone: "3205556677", Username: "crodriguez", Role: user.RoleUser},
}

// plan is the share of seeded invoices per bucket, in percent.
type plan struct {
	share    int
	statuses []invoice.Status
	// due offset range in days, inclusive
	from, to int
}

var distribution = []plan{
	{share: 30, statuses: []invoice.Status{invoice.StatusFiled}, from: -30, to: 30},
	{share: 35, statuses: []invoice.Status{invoice.StatusPending}, from: 8, to: 22},
	{share: 25, statuses: []invoice.Status{invoice.StatusPending, invoice.StatusReturned}, from: 1, to: 7},
	{share: 10, statuses: []invoice.Status{invoice.StatusOverdue}, from: -15, to: -1},
}

func main() {
	count := flag.Int("invoices", 60, "number of invoices to create")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	if err = godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("error loading .env file", zap.Error(err))
	}
	cfg := config.Load()
	adminUser := getEnv("SEED_ADMIN_USERNAME", "admin")
	adminPass := getEnv("SEED_ADMIN_PASSWORD", "")
	if adminPass == "" {
		logger.Fatal("SEED_ADMIN_PASSWORD is required")
	}

	loc, err := time.LoadLocation(cfg.Alerts.Timezone)
	if err != nil {
		logger.Fatal("alert timezone error", zap.String("tz", cfg.Alerts.Timezone), zap.Error(err))
	}

	ctx := context.Background()
	dsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	pool, err := postgres.New(ctx, logger, dsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	mCounter := metrics.NewUnregisteredCounter()
	// events are dropped: the seed never connects a broker
	publisher := mq.New(cfg.MQ, logger)

	userRepo := userrepo.NewRepository(pool)
	authService := services.NewAuthService(
		userRepo,
		jwt.New(cfg.App.JWTSecret),
		resettoken.NewMemoryStore(cfg.Auth.ResetTokenTTL),
		publisher,
		mCounter,
		logger,
		cfg.Auth,
		cfg.App.JWTTTL,
	)
	userService := services.NewUserService(userRepo, authService, publisher, mCounter, logger)

	s := &seeder{
		logger:      logger,
		users:       userService,
		companyRepo: companyrepo.NewRepository(pool),
		invoiceRepo: invoicerepo.NewRepository(pool),
		rnd:         rand.New(rand.NewPCG(*seed, *seed>>1)),
		loc:         loc,
	}

	if err = s.run(ctx, adminUser, adminPass, *count); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
	logger.Info("seed done", zap.Int("invoices", *count), zap.Uint64("seed", *seed))
}

type seeder struct {
	logger      *zap.Logger
	users       ports.UserService
	companyRepo erpcompany.Repository
	invoiceRepo invoice.Repository
	rnd         *rand.Rand
	loc         *time.Location
}

func (s *seeder) run(ctx context.Context, adminUser, adminPass string, count int) error {
	var companyIDs []int64
	for _, c := range companies {
		created, err := s.companyRepo.CreateCompany(ctx, c)
		if err != nil {
			return fmt.Errorf("company %s: %w", c.Name, err)
		}
		companyIDs = append(companyIDs, int64(created.ID))
	}

	admin := user.User{
		Name:     "Administrador",
		LastName: "Zentrix",
		Document: "900000000",
		Email:    "admin@zentrix.co",
		Username: adminUser,
		Role:     user.RoleAdmin,
	}
	if _, err := s.ensureUser(ctx, admin, adminPass); err != nil {
		return err
	}

	var owners []user.ID
	for _, u := range demoUsers {
		id, err := s.ensureUser(ctx, u, demoPassword)
		if err != nil {
			return err
		}
		owners = append(owners, id)
	}

	today := alert.Midnight(time.Now(), s.loc)
	for i, inv := range s.invoices(count, today, owners, companyIDs) {
		if _, err := s.invoiceRepo.CreateInvoice(ctx, inv); err != nil {
			return fmt.Errorf("invoice %d: %w", i+1, err)
		}
	}

	return nil
}

// ensureUser registers u, or looks the account up when it already exists.
func (s *seeder) ensureUser(ctx context.Context, u user.User, password string) (user.ID, error) {
	created, err := s.users.Register(ctx, u, password)
	if err == nil {
		s.logger.Info("user created", zap.String("username", u.Username))
		return created.ID, nil
	}
	if !errors.Is(err, user.ErrUsernameTaken) && !errors.Is(err, user.ErrDocumentTaken) {
		return 0, fmt.Errorf("user %s: %w", u.Username, err)
	}

	all, err := s.users.FindUsers(ctx)
	if err != nil {
		return 0, err
	}
	for _, existing := range all {
		if existing.Username == u.Username || existing.Document == u.Document {
			s.logger.Info("user exists", zap.String("username", existing.Username))
			return existing.ID, nil
		}
	}

	return 0, fmt.Errorf("user %s reported taken but not found", u.Username)
}

// invoices builds count invoices following distribution, numbered INV-00001 on.
func (s *seeder) invoices(count int, today time.Time, owners []user.ID, companyIDs []int64) []invoice.Invoice {
	out := make([]invoice.Invoice, 0, count)
	for _, p := range distribution {
		n := count * p.share / 100
		for range n {
			out = append(out, s.invoice(p, today, owners, companyIDs))
		}
	}
	// rounding leftovers go to the far-future pending bucket
	for len(out) < count {
		out = append(out, s.invoice(distribution[1], today, owners, companyIDs))
	}

	s.rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	for i := range out {
		out[i].Number = fmt.Sprintf("INV-%05d", i+1)
	}

	return out
}

func (s *seeder) invoice(p plan, today time.Time, owners []user.ID, companyIDs []int64) invoice.Invoice {
	due := today.AddDate(0, 0, p.from+s.rnd.IntN(p.to-p.from+1))
	company := companyIDs[s.rnd.IntN(len(companyIDs))]
	// between 500.000 and 50.000.000 pesos
	amount := decimal.NewFromInt(int64(500+s.rnd.IntN(49500)) * 1000)

	return invoice.Invoice{
		UserID:       owners[s.rnd.IntN(len(owners))],
		ErpCompanyID: &company,
		TotalAmount:  amount,
		Status:       p.statuses[s.rnd.IntN(len(p.statuses))],
		IssueDate:    due.AddDate(0, 0, -30),
		DueDate:      due,
	}
}
