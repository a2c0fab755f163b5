package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-vendor-go/internal/admin"
	"product-vendor-go/internal/catalog"
	"product-vendor-go/internal/config"
	grpcserver "product-vendor-go/internal/grpc"
	"product-vendor-go/internal/infrastructure/broker"
	"product-vendor-go/internal/logging"
	vendorengine "product-vendor-go/internal/vendor-engine"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownGrace = 5 * time.Second

type options struct {
	EnvFile  string `long:"env-file" description:"env file layered under the environment"`
	LogLevel string `long:"log-level" description:"log level, overrides LOG_LEVEL"`
}

func main() {
	opts := getCLIArgs()

	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		log.WithError(err).Fatal("[Main] Failed to load config")
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalogOpts := []catalog.Option{catalog.WithSink(catalog.LogSink{})}
	if cfg.Nats.Url != "" {
		nc, js, err := broker.Connect(ctx, cfg.Nats.Url, cfg.Nats.Stream)
		if err != nil {
			log.WithError(err).Fatal("[Main] Failed to connect to NATS")
		}
		defer nc.Close()
		catalogOpts = append(catalogOpts, catalog.WithSink(broker.NewPriceBroker(js, cfg.Nats.Stream)))
	}

	v, err := vendorengine.New(cfg.Catalog, catalogOpts...)
	if err != nil {
		log.WithError(err).Fatal("[Main] Failed to build vendor")
	}

	listener, err := net.Listen("tcp", cfg.GrpcAddr)
	if err != nil {
		log.WithError(err).Fatal("[Main] Failed to listen")
	}
	server := grpcserver.NewServer(v.Service, v.Gate, v.Feed, cfg.Catalog.GateReads)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("addr", listener.Addr().String()).Info("[Main] gRPC server listening")
		return server.Serve(listener)
	})

	g.Go(func() error {
		return v.StartSimulation(gctx)
	})

	if cfg.AdminAddr != "" {
		app := admin.New(v.Catalog, v.Gate)
		g.Go(func() error {
			log.WithField("addr", cfg.AdminAddr).Info("[Main] Admin server listening")
			return app.Listen(cfg.AdminAddr)
		})
		g.Go(func() error {
			<-gctx.Done()
			return app.ShutdownWithTimeout(shutdownGrace)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("[Main] Shutting down")
		gracefulStop(server)
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		log.WithError(err).Fatal("[Main] Server exited")
	}
	log.Info("[Main] Stopped")
}

// gracefulStop drains in-flight calls, then force-closes streams and gated
// reads that are still waiting.
func gracefulStop(server *grpc.Server) {
	done := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(shutdownGrace):
		log.Warn("[Main] Graceful stop timed out, closing connections")
		server.Stop()
	}
}

func getCLIArgs() options {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		log.WithError(err).Fatal("[Main] Failed to parse command line arguments")
	}

	return opts
}
