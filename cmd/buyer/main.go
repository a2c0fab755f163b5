package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-vendor-go/internal/buyer"
	"product-vendor-go/internal/infrastructure/repository"
	"product-vendor-go/internal/logging"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type options struct {
	Addr      string        `long:"addr" default:"localhost:8080" description:"vendor gRPC address"`
	Interval  time.Duration `long:"interval" default:"5s" description:"time between offers"`
	Delta     int32         `long:"delta" default:"0" description:"amount added to the asking price, may be negative"`
	Journal   string        `long:"journal" description:"directory for the CSV quote journal, empty disables"`
	LogLevel  string        `long:"log-level" default:"info" description:"log level"`
	LogFormat string        `long:"log-format" default:"text" choice:"text" choice:"json" description:"log format"`
}

func main() {
	opts := getCLIArgs()
	logging.Setup(opts.LogLevel, opts.LogFormat)

	conn, err := grpc.NewClient(opts.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.WithError(err).Fatal("[Buyer] Failed to create client")
	}
	defer conn.Close()

	buyerOpts := []buyer.Option{buyer.WithInterval(opts.Interval), buyer.WithDelta(opts.Delta)}
	if opts.Journal != "" {
		repo, err := repository.NewCsvQuoteRepository(opts.Journal)
		if err != nil {
			log.WithError(err).Fatal("[Buyer] Failed to open journal")
		}
		buyerOpts = append(buyerOpts, buyer.WithJournal(repo))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithField("addr", opts.Addr).Info("[Buyer] Starting")
	if err := buyer.New(conn, buyerOpts...).Run(ctx); err != nil {
		log.WithError(err).Fatal("[Buyer] Stopped with error")
	}
	log.Info("[Buyer] Stopped")
}

func getCLIArgs() options {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		log.WithError(err).Fatal("[Buyer] Failed to parse command line arguments")
	}

	return opts
}
