package app

import (
	"context"

	aqm "github.com/appetiteclub/apt"
	aqmevents "github.com/appetiteclub/apt/events"
	"github.com/appetiteclub/apt/middleware"
	"github.com/glenwooddrivein/menuboard/internal/board"
	"github.com/glenwooddrivein/menuboard/internal/events"
	"github.com/glenwooddrivein/menuboard/internal/postgres"
	"github.com/glenwooddrivein/menuboard/internal/stream"
	"github.com/glenwooddrivein/menuboard/pkg"
)

const (
	AppName    = "menuboard"
	AppVersion = "0.1.0"
)

// App encapsulates the menu board service application
type App struct {
	config *aqm.Config
	logger aqm.Logger
	micro  *aqm.Micro
	store  *postgres.Store
}

// New creates a new menu board service application
func New(config *aqm.Config, logger aqm.Logger) (*App, error) {
	return &App{
		config: config,
		logger: logger,
	}, nil
}

// Initialize sets up all dependencies and components
func (a *App) Initialize(ctx context.Context) error {
	a.store = postgres.NewStore(a.config, a.logger)
	sectionRepo := postgres.NewSectionRepo(a.store)
	groupRepo := postgres.NewGroupRepo(a.store)

	bus := stream.NewBus(a.logger)
	sseHandler := stream.NewSSEHandler(bus, a.logger)

	lifecycles := []interface{}{a.store}

	// NATS is only needed when several instances serve displays behind a
	// balancer. A single box runs fine without it.
	var publisher aqmevents.Publisher
	natsURL, _ := a.config.GetString("nats.url")
	if natsURL != "" {
		pub, err := pkg.NewNATSPublisher(natsURL)
		if err != nil {
			return err
		}
		sub, err := pkg.NewNATSSubscriber(natsURL)
		if err != nil {
			return err
		}
		publisher = pub

		lifecycles = append(lifecycles, events.NewUpdateRelay(sub, bus, a.logger))
		lifecycles = append(lifecycles, aqm.LifecycleHooks{
			OnStop: func(context.Context) error {
				sub.Close()
				return pub.Close()
			},
		})
	}

	adminFlow := board.NewAdminFlow(sectionRepo, groupRepo, bus, publisher, a.logger)
	snapshots := board.NewSnapshotBuilder(sectionRepo, groupRepo, a.logger)
	sliderDir := a.config.GetStringOrDef("slider.dir", "public/img/slider")
	slider := board.NewSlideshow(sliderDir, a.logger)

	handler := board.NewHandler(snapshots, adminFlow, groupRepo, slider, a.config, a.logger)

	// Seed after the store is started
	seedHooks := aqm.LifecycleHooks{
		OnStart: func(ctx context.Context) error {
			return board.Seed(ctx, sectionRepo, groupRepo, a.logger)
		},
	}
	lifecycles = append(lifecycles, seedHooks)

	// Displays connect from kiosks on the local network, so CORS stays on.
	stack := middleware.DefaultStack(middleware.StackOptions{
		Logger: a.logger,
	})

	options := []aqm.Option{
		aqm.WithConfig(a.config),
		aqm.WithLogger(a.logger),
		aqm.WithHTTPMiddleware(stack...),
		aqm.WithHTTPServerModules("web.port", handler, sseHandler),
		aqm.WithLifecycle(lifecycles...),
		aqm.WithHealthChecks(AppName),
	}

	a.micro = aqm.NewMicro(options...)
	return nil
}

// Run starts the application
func (a *App) Run(ctx context.Context) error {
	a.logger.Infof("Starting %s(%s)", AppName, AppVersion)
	if err := a.micro.Run(ctx); err != nil {
		return err
	}
	a.logger.Infof("%s(%s) stopped", AppName, AppVersion)
	return nil
}
