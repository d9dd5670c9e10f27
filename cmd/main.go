package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "isolated_box/docs"
	"isolated_box/internal/config"
	"isolated_box/internal/control"
	"isolated_box/internal/handlers"
	"isolated_box/internal/logger"
	"isolated_box/internal/metrics"
	"isolated_box/internal/pub"
	"isolated_box/internal/repository"
	"isolated_box/internal/repository/db"
	"isolated_box/internal/sensor"
	"isolated_box/internal/server"
	"isolated_box/internal/service"
)

const (
	appID           = "isolated_box"
	shutdownTimeout = 10 * time.Second
)

// @title                       Isolated Box Controller API
// @version                     1.0
// @description                 Setpoint regulation for a thermally isolated box.
// @host                        localhost:8080
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfgPath := flag.String("config", "", "path to config file (default configs/config.yml)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Setup(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer func() { _ = log.Sync() }()

	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DB.Path)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	m := metrics.New(appID)
	publisher := newPublisher(cfg, log)
	defer publisher.Close()

	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, service.Options{
		Log:       log,
		Metrics:   m,
		Publisher: publisher,
		Auth: service.AuthConfig{
			SigningKey: cfg.Auth.SigningKey,
			TokenTTL:   cfg.Auth.TokenTTL,
		},
		ActuatorLimits: actuatorLimits(cfg.Actuator),
		Strategy:       control.OnOff{Intensity: control.PWMIntensityMax},
		QueueWarnDepth: cfg.Pipeline.QueueWarnDepth,
		DrainOnStop:    cfg.Pipeline.DrainOnStop,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Box.MinC != 0 || cfg.Box.MaxC != 0 {
		if err := services.Box.Configure(ctx, cfg.Box.MinC, cfg.Box.MaxC); err != nil {
			log.Errorw("initial setpoints rejected", "err", err, "min_c", cfg.Box.MinC, "max_c", cfg.Box.MaxC)
		}
	}

	src := newSource(cfg, services.Box)
	pipelineDone := make(chan struct{})
	go func() {
		defer close(pipelineDone)
		services.Pipeline.Run(ctx, src, cfg.Pipeline.Tick)
	}()
	log.Infow("pipeline started", "source", cfg.Pipeline.Source, "tick", cfg.Pipeline.Tick)

	apiHandler := handlers.NewHandler(services, log, m.Handler())
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(cancel, srv, log)
	<-pipelineDone
}

// newPublisher connects to NATS when a URL is configured and falls back to
// a no-op publisher otherwise.
func newPublisher(cfg config.Config, log *logger.Logger) pub.Publisher {
	if cfg.NATS.URL == "" {
		return pub.Nop{}
	}
	p, err := pub.New(pub.Cfg{
		URL:     cfg.NATS.URL,
		Subject: cfg.NATS.Subject,
		Name:    appID,
		Log:     log,
	})
	if err != nil {
		log.Warnw("nats unavailable; events stay local", "err", err, "url", cfg.NATS.URL)
		return pub.Nop{}
	}
	return p
}

func actuatorLimits(c config.ActuatorConfig) control.ActuatorLimits {
	l := control.DefaultActuatorLimits()
	l.FrequencyDefault = c.FrequencyDefault
	l.DutyCycleDefault = c.DutyCycleDefault
	return l
}

// newSource picks the sample source. It returns nil for "none", in which
// case only samples posted over HTTP reach the pipeline.
func newSource(cfg config.Config, box service.Box) sensor.Source {
	switch cfg.Pipeline.Source {
	case config.SourceHost:
		return sensor.NewHost(cfg.Pipeline.SensorKey)
	case config.SourceNone:
		return nil
	}
	unit, _ := control.ParseScale(cfg.Pipeline.Unit)
	return sensor.NewSimulated(sensor.SimConfig{
		StartC:        cfg.Sim.StartC,
		AmbientC:      cfg.Sim.AmbientC,
		DriftCPerTick: cfg.Sim.DriftCPerTick,
		RampCPerTick:  cfg.Sim.RampCPerTick,
		Unit:          unit,
		Target: func() (float64, bool) {
			st := box.Snapshot()
			return st.TargetC, st.Compensating
		},
	})
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop the pipeline
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
