package cmd

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	httpin "bookmarket/internal/adapters/in/http"
	"bookmarket/internal/adapters/out/notifier"
	"bookmarket/internal/adapters/out/postgres"
	"bookmarket/internal/adapters/out/proofstore"
	"bookmarket/internal/core/application/usecases/commands"
	"bookmarket/internal/core/application/usecases/queries"
	"bookmarket/internal/core/ports"
	"bookmarket/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	proofStore ports.ProofStore
	registry   *prometheus.Registry
	metrics    *httpin.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	proofStore, err := proofstore.NewLocalProofStore(config.ProofStoreDir, config.ProofStoreURLPrefix)
	if err != nil {
		return CompositionRoot{}, err
	}

	registry := prometheus.NewRegistry()

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier.NewKafkaNotifier([]string{config.KafkaHost}, config.KafkaOrderChangedTopic, logger),
		proofStore: proofStore,
		registry:   registry,
		metrics:    httpin.NewMetrics(registry),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) listingUoWFactory() commands.ListingUoWFactory {
	return FuncListingUoWFactory(func() commands.ListingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossAggregateUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.crossAggregateUoWFactory())
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateConfirmMoneyReceivedCommandHandler() commands.ConfirmMoneyReceivedCommandHandler {
	return commands.NewConfirmMoneyReceivedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApproveListingCommandHandler() commands.ApproveListingCommandHandler {
	return commands.NewApproveListingCommandHandler(c.listingUoWFactory())
}

func (c *CompositionRoot) CreateRejectListingCommandHandler() commands.RejectListingCommandHandler {
	return commands.NewRejectListingCommandHandler(c.listingUoWFactory())
}

func (c *CompositionRoot) CreateFinalizeDeliveredOrdersCommandHandler() commands.FinalizeDeliveredOrdersCommandHandler {
	return commands.NewFinalizeDeliveredOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersForActorQueryHandler() queries.GetOrdersForActorQueryHandler {
	return queries.NewGetOrdersForActorQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every handler into the REST server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateConfirmOrderCommandHandler(),
		c.CreateRejectOrderCommandHandler(),
		c.CreateConfirmPaymentCommandHandler(),
		c.CreateConfirmMoneyReceivedCommandHandler(),
		c.CreateShipOrderCommandHandler(),
		c.CreateDeliverOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateApproveListingCommandHandler(),
		c.CreateRejectListingCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrdersForActorQueryHandler(),
		c.proofStore,
		c.metrics,
	)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	gracePeriod := time.Duration(c.config.FinalizeGraceDays) * 24 * time.Hour
	return jobs.NewJobManager(c.CreateFinalizeDeliveredOrdersCommandHandler(), gracePeriod, c.logger)
}

// MetricsRegistry exposes the registry backing the /metrics endpoint.
func (c *CompositionRoot) MetricsRegistry() *prometheus.Registry {
	return c.registry
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncListingUoWFactory func() commands.ListingUoW

func (f FuncListingUoWFactory) Create() commands.ListingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
