package billing

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/billing/business/billing"
	"encore.app/billing/business/billinglog"
	"encore.app/billing/business/currency"
	"encore.app/billing/business/customer"
	"encore.app/billing/business/cycle"
	"encore.app/billing/business/invoice"
	"encore.app/billing/domain"
	"encore.app/billing/provider/payment"
	"encore.app/billing/repository"
	"encore.app/billing/workflow"
)

var billingDB = sqldb.NewDatabase("billing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

//encore:service
type Service struct {
	invoices    invoice.Business
	customers   customer.Business
	billingLogs billinglog.Business
	cycles      cycle.Business

	temporal  client.Client
	worker    worker.Worker
	taskQueue string
}

func initService() (*Service, error) {
	if cfg.AutoSchedule {
		if err := validateStartDay(cfg.StartDay); err != nil {
			rlog.Error("invalid auto schedule start day", "start_day", cfg.StartDay, "error", err)
			return nil, err
		}
	}

	pgxdb := sqldb.Driver(billingDB)
	repo := repository.NewRepository(pgxdb)
	stateMachine := domain.NewInvoiceStateMachine(pgxdb, repo.Invoices)

	customerBusiness := customer.NewCustomerBusiness(repo.Customers)
	currencyBusiness := currency.NewCurrencyBusiness(repo.Currencies, customerBusiness, seconds(cfg.RateCacheTTLSeconds, 5*time.Minute))
	invoiceBusiness := invoice.NewInvoiceBusiness(repo.Invoices, stateMachine)
	billingLogBusiness := billinglog.NewBillingLogBusiness(repo.BillingLogs)
	billingBusiness := billing.NewBillingBusiness(
		currencyBusiness,
		newPaymentProvider(customerBusiness),
		billingLogBusiness,
		cfg.Workers,
	)
	cycleBusiness := cycle.NewCycleBusiness(invoiceBusiness, billingBusiness, int32(cfg.BatchSize))

	workflow.SetActivityDependencies(cycleBusiness)

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHostPort,
		Namespace: cfg.TemporalNamespace,
	})
	if err != nil {
		rlog.Error("failed to create temporal client", "error", err)
		return nil, err
	}

	w := worker.New(c, cfg.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.RecurringBilling)
	w.RegisterActivity(workflow.RunBillingCycleActivity)
	if err := w.Start(); err != nil {
		c.Close()
		rlog.Error("failed to start temporal worker", "error", err, "task_queue", cfg.TaskQueue)
		return nil, err
	}

	s := &Service{
		invoices:    invoiceBusiness,
		customers:   customerBusiness,
		billingLogs: billingLogBusiness,
		cycles:      cycleBusiness,
		temporal:    c,
		worker:      w,
		taskQueue:   cfg.TaskQueue,
	}

	if cfg.AutoSchedule {
		runAsync("auto_schedule", 10*time.Second, func(ctx context.Context) error {
			_, err := s.startRecurringBilling(ctx, cfg.StartDay)
			return err
		})
	}

	rlog.Info("billing service initialized",
		"task_queue", cfg.TaskQueue,
		"payment_provider", cfg.PaymentProvider,
		"batch_size", cfg.BatchSize,
	)
	return s, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}

func newPaymentProvider(customerBusiness customer.Business) payment.Provider {
	timeout := seconds(cfg.PaymentTimeoutSeconds, 10*time.Second)
	if cfg.PaymentProvider == payment.ProviderStripe {
		if secrets.StripeSecretKey != "" {
			return payment.NewStripeProvider(secrets.StripeSecretKey, customerBusiness, timeout)
		}
		rlog.Warn("stripe secret key missing, falling back to simulated payments")
	}
	return payment.NewSimulatedProvider(cfg.SimulatedAcceptRate)
}
