package cmd

import (
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"foodorder/internal/adapters/out/gateway"
	"foodorder/internal/adapters/out/kafka"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/adapters/out/redis"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/ports"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.CatalogReader
	gateway    ports.PaymentGateway
	publisher  ports.OrderEventPublisher
	logger     *logrus.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := logrus.New()

	var catalog ports.CatalogReader = catalogrepo.NewGormCatalogReader(gormDB)
	if config.RedisHost != "" {
		client := redis.NewClient(config.RedisHost, config.RedisPassword)
		catalog = redis.NewCachedCatalogReader(catalog, client, logger)
	}

	var publisher ports.OrderEventPublisher = kafka.NewDiscardPublisher(logger)
	if config.KafkaHost != "" {
		producer, err := kafka.NewProducer(
			strings.Split(config.KafkaHost, ","),
			config.KafkaOrderEventTopic,
			logger,
		)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to kafka")
		}
		publisher = producer
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog,
		gateway:    gateway.NewParityGateway(),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.catalog, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.catalog, c.publisher)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f, c.catalog, c.publisher)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateRejectDeliveryCommandHandler() commands.RejectDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessPaymentCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentQueryHandler() queries.GetPaymentQueryHandler {
	return queries.NewGetPaymentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) Logger() *logrus.Logger {
	return c.logger
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
