package cmd

import (
	"log/slog"

	"github.com/aryan26102004/Bill-Genius/internal/adapters/out/eventhub"
	"github.com/aryan26102004/Bill-Genius/internal/adapters/out/kafkax"
	"github.com/aryan26102004/Bill-Genius/internal/adapters/out/notify"
	"github.com/aryan26102004/Bill-Genius/internal/adapters/out/postgres"
	"github.com/aryan26102004/Bill-Genius/internal/adapters/out/qr"
	"github.com/aryan26102004/Bill-Genius/internal/adapters/out/redisx"
	"github.com/aryan26102004/Bill-Genius/internal/adapters/out/refund"
	"github.com/aryan26102004/Bill-Genius/internal/core/application/usecases/commands"
	"github.com/aryan26102004/Bill-Genius/internal/core/application/usecases/queries"
	"github.com/aryan26102004/Bill-Genius/internal/core/ports"
	"github.com/aryan26102004/Bill-Genius/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Handlers are created
// per request; the shared pieces (database, event hub, cache, producer) live
// for the process lifetime.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	hub           *eventhub.Hub
	trackingCache ports.TrackingCache
	notifier      ports.Notifier
	alerter       ports.Alerter
	kafkaProducer *kafkax.Producer

	logger *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	hub := eventhub.NewHub()

	sinks := []ports.Notifier{hub}

	var trackingCache ports.TrackingCache
	if configs.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
		trackingCache = redisx.NewTrackingCache(client, redisx.DefaultTrackingTTL)
		sinks = append(sinks, redisx.NewEventBackplane(client))
	}

	var kafkaProducer *kafkax.Producer
	if configs.KafkaHost != "" && configs.KafkaOrderEventsTopic != "" {
		kafkaProducer = kafkax.NewProducer(
			[]string{configs.KafkaHost}, configs.KafkaOrderEventsTopic, logger)
		sinks = append(sinks, kafkaProducer)
	}

	var notifier ports.Notifier = notify.NewMulti(sinks...)
	if trackingCache != nil {
		notifier = notify.NewCacheInvalidator(trackingCache, notifier)
	}

	return &CompositionRoot{
		config:        configs,
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:           hub,
		trackingCache: trackingCache,
		notifier:      notifier,
		alerter:       notify.NewLogAlerter(logger),
		kafkaProducer: kafkaProducer,
		logger:        logger,
	}
}

// Close releases process-lifetime resources.
func (c *CompositionRoot) Close() {
	if c.kafkaProducer != nil {
		_ = c.kafkaProducer.Close()
	}
	c.hub.Close()
}

// EventSource exposes the in-process hub to the live event stream endpoint.
func (c *CompositionRoot) EventSource() ports.EventSource {
	return c.hub
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f, qr.NewGenerator(), c.notifier, c.alerter, c.config.TrackingBaseURL)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.CancellationUoWFactory = FuncCancellationUoWFactory(func() commands.CancellationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, refund.NewSimulator(0), c.notifier)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	return commands.NewSetOrderStatusCommandHandler(c.createOrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.createDeliveryUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.createDeliveryUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderByTrackingQueryHandler() queries.GetOrderByTrackingQueryHandler {
	return queries.NewGetOrderByTrackingQueryHandler(c.gormDB, c.trackingCache)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverDeliveriesQueryHandler() queries.GetDriverDeliveriesQueryHandler {
	return queries.NewGetDriverDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetInventoryQueryHandler(), c.alerter, c.createOrderUoWFactory(), c.logger)
}

func (c *CompositionRoot) createOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createDeliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncCancellationUoWFactory func() commands.CancellationUoW

func (f FuncCancellationUoWFactory) Create() commands.CancellationUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}
