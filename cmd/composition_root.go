package cmd

import (
	"log/slog"
	"strconv"
	"time"

	httpadapter "pickleshop/internal/adapters/in/http"
	"pickleshop/internal/adapters/out/emailrelay"
	"pickleshop/internal/adapters/out/postgres"
	"pickleshop/internal/adapters/out/postgres/draftrepo"
	"pickleshop/internal/adapters/out/receipt"
	"pickleshop/internal/core/application/usecases/commands"
	"pickleshop/internal/core/application/usecases/queries"
	"pickleshop/internal/core/ports"
	"pickleshop/internal/jobs"

	"gorm.io/gorm"
)

const (
	defaultSnapshotTTL   = 72 * time.Hour
	defaultThankYouDelay = 8 * time.Second
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	snapshots  ports.DraftSnapshotStore
	notifier   ports.Notifier
	receipts   ports.ReceiptGenerator
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		snapshots:  draftrepo.NewGormDraftSnapshotStore(gormDB),
		notifier: emailrelay.NewClient(
			config.EmailRelayBaseURL,
			config.EmailRelayServiceID,
			config.EmailRelayUserID,
		),
		receipts: receipt.NewPDFGenerator(config.ShopName),
		logger:   logger,
	}
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(
		f,
		c.snapshots,
		c.notifier,
		c.receipts,
		c.logger,
		c.config.OrderEmailTemplateID,
		c.ThankYouDelay(),
	)
}

func (c *CompositionRoot) CreateSignUpCommandHandler() commands.SignUpCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignUpCommandHandler(f)
}

func (c *CompositionRoot) CreateSignInCommandHandler() commands.SignInCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignInCommandHandler(f)
}

func (c *CompositionRoot) CreateSendContactMessageCommandHandler() commands.SendContactMessageCommandHandler {
	var f commands.ContactUoWFactory = FuncContactUoWFactory(func() commands.ContactUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendContactMessageCommandHandler(
		f,
		c.notifier,
		c.logger,
		c.config.ContactEmailTemplateID,
	)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.NewSessionRegistry(),
		c.CreateSubmitOrderCommandHandler(),
		c.CreateSignUpCommandHandler(),
		c.CreateSignInCommandHandler(),
		c.CreateSendContactMessageCommandHandler(),
		c.CreateGetOrderSummaryQueryHandler(),
		c.uowFactory.Create().OrderRepository(),
		c.receipts,
		c.snapshots,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.snapshots, c.SnapshotTTL(), c.logger)
}

// SnapshotTTL parses the configured TTL, falling back to the default when the
// variable is unset or malformed.
func (c *CompositionRoot) SnapshotTTL() time.Duration {
	hours, err := strconv.Atoi(c.config.SnapshotTTLHours)
	if err != nil || hours <= 0 {
		return defaultSnapshotTTL
	}
	return time.Duration(hours) * time.Hour
}

// ThankYouDelay parses the configured confirmation-view delay, falling back
// to the default when the variable is unset or malformed.
func (c *CompositionRoot) ThankYouDelay() time.Duration {
	seconds, err := strconv.Atoi(c.config.ThankYouDelaySeconds)
	if err != nil || seconds <= 0 {
		return defaultThankYouDelay
	}
	return time.Duration(seconds) * time.Second
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncContactUoWFactory func() commands.ContactUoW

func (f FuncContactUoWFactory) Create() commands.ContactUoW {
	return f()
}
