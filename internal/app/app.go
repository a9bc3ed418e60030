package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/cocoa-apparel/storefront/config"
	"github.com/cocoa-apparel/storefront/internal/adapter"
	"github.com/cocoa-apparel/storefront/internal/adapter/httphandler"
	"github.com/cocoa-apparel/storefront/internal/adapter/kafka"
	"github.com/cocoa-apparel/storefront/internal/adapter/storage"
	"github.com/cocoa-apparel/storefront/internal/core/port"
	"github.com/cocoa-apparel/storefront/internal/core/service"
	"github.com/cocoa-apparel/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sr"
)

type storageAdapters struct {
	sqldb       storage.SQLDB
	catalog     port.CatalogRepository
	sessions    port.SessionStore
	eventsSaver port.ShopperEventsSaver
}

type pipeline struct {
	enabled   bool
	producer  kafka.ShopperEventsProducer
	consumer  kafka.ShopperEventsConsumer
	consuming bool
	processor *kafka.ActivityProcessor
	view      *kafka.ActivityView
}

type coreServices struct {
	browser  port.ProductBrowser
	admin    port.ProductAdmin
	cart     port.CartEditor
	auth     port.Authenticator
	recorder port.EventRecorder
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	storage    storageAdapters
	pipeline   pipeline
	service    coreServices
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorageAdapters()
	app.initEventPipeline()
	app.initCoreServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

// initStorageAdapters selects the catalog backing store. A configured
// DSN means Postgres; otherwise the seeded in-memory catalog serves the
// demo dataset.
func (app *App) initStorageAdapters() {
	const op = "App.initStorageAdapters"

	if dsn := app.cfg.SQLDB; dsn != "" {
		sqldb, err := storage.NewSQLDB(app.ctx, dsn)
		if err != nil {
			app.fallDown(op, err)
		}
		app.storage.sqldb = sqldb
		app.storage.catalog = storage.NewCatalogRepository(sqldb)
		app.storage.eventsSaver = storage.NewShopperEventsRepository(sqldb)
	} else {
		slog.Info("no sql_db configured, using seeded in-memory catalog")
		app.storage.catalog = storage.NewSeededCatalog()
	}

	sessions, err := storage.NewSessionFile(app.cfg.StateDir)
	if err != nil {
		app.fallDown(op, err)
	}
	app.storage.sessions = sessions
}

func (app *App) initEventPipeline() {
	const op = "App.initEventPipeline"

	if !app.cfg.EventsEnabled() {
		slog.Info("no seed brokers configured, event pipeline is off")
		return
	}

	ctx := app.ctx
	brokerCfg := app.cfg.Broker
	stream := brokerCfg.Topics.ShopperEvents
	groupTable := brokerCfg.Topics.ActivityGroupTable

	var clientOpts []kgo.Opt
	if app.cfg.BrokerTLSEnabled() {
		tlsCfg := adapter.MakeTLSConfig(
			brokerCfg.TLS.CA, brokerCfg.TLS.Cert, brokerCfg.TLS.Key,
		)
		clientOpts = append(clientOpts, kgo.DialTLSConfig(tlsCfg))
	}

	srClient, err := sr.NewClient(sr.URLs(brokerCfg.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	eventSerde, err := schema.NewSerdeShopperEventV1(
		ctx,
		schema.SubjectOpt(stream+"-value"),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewShopperEventsProducer(
		kafka.ProducerClientOpt(ctx, brokerCfg.SeedBrokers, stream, clientOpts...),
		kafka.ProducerEncoderOpt(eventSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	processor, err := kafka.NewActivityProcessor(
		brokerCfg.SeedBrokers, stream, groupTable, eventSerde,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	view, err := kafka.NewActivityView(brokerCfg.SeedBrokers, groupTable)
	if err != nil {
		app.fallDown(op, err)
	}

	app.pipeline.enabled = true
	app.pipeline.producer = producer
	app.pipeline.processor = processor
	app.pipeline.view = view

	if app.storage.eventsSaver != nil {
		app.pipeline.consumer = kafka.NewShopperEventsConsumer(
			kafka.ConsumerClientOpt(
				brokerCfg.SeedBrokers, stream,
				brokerCfg.Consumers.EventsSaverGroup, clientOpts...,
			),
			kafka.ConsumerDecoderOpt(eventSerde),
			kafka.ConsumerEventsSaverOpt(app.storage.eventsSaver),
		)
		app.pipeline.consuming = true
	} else {
		slog.Info("no sql_db configured, events are not archived")
	}
}

func (app *App) initCoreServices() {
	var (
		producer port.ShopperEventsProducer = service.NopEventsProducer{}
		counter  port.ActivityCounter       = service.NopActivityCounter{}
	)
	if app.pipeline.enabled {
		producer = app.pipeline.producer
		counter = app.pipeline.view
	}

	catalog := service.NewCatalog(app.storage.catalog)
	app.service.browser = catalog
	app.service.admin = catalog
	app.service.cart = service.NewCarts(app.storage.catalog, producer)
	app.service.auth = service.NewAuth(app.storage.sessions)
	app.service.recorder = service.NewEvents(producer, counter)
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.service.browser, app.service.recorder)
	httphandler.RegisterCart(mux, app.service.cart)
	httphandler.RegisterAuth(mux, app.service.auth, app.service.recorder)
	httphandler.RegisterAdmin(mux, app.service.admin, app.service.auth)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	if app.pipeline.enabled {
		var wg sync.WaitGroup
		wg.Add(1)
		go app.pipeline.processor.Run(app.ctx, stopFn, &wg)
		wg.Wait()

		go app.pipeline.view.Run(app.ctx)
		if app.pipeline.consuming {
			go app.pipeline.consumer.Run(app.ctx)
		}
	}

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	if app.pipeline.enabled {
		if app.pipeline.consuming {
			app.pipeline.consumer.Close()
		}
		app.pipeline.producer.Close()
		app.pipeline.processor.Close()
	}

	if app.storage.sqldb.DB != nil {
		app.storage.sqldb.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
