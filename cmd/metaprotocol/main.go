// Package main is the command line front end of the metaprotocol decoder.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/service"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/pkg/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var config struct {
	RPCHost       string `long:"rpc-host" env:"METAPROTOCOL_RPC_HOST" description:"bitcoind rpc host:port" default:"127.0.0.1:8332"`
	RPCUser       string `long:"rpc-user" env:"METAPROTOCOL_RPC_USER" description:"rpc user"`
	RPCPass       string `long:"rpc-pass" env:"METAPROTOCOL_RPC_PASS" description:"rpc password"`
	RPCDisableTLS bool   `long:"rpc-disable-tls" env:"METAPROTOCOL_RPC_DISABLE_TLS" description:"plain http rpc"`
	RPCRPS        int    `long:"rpc-rps" env:"METAPROTOCOL_RPC_RPS" description:"rpc requests per second, 0 for unlimited" default:"0"`
	Network       string `long:"network" env:"METAPROTOCOL_NETWORK" description:"network label for metrics" default:"mainnet"`
	MetricsAddr   string `long:"metrics-addr" env:"METAPROTOCOL_METRICS_ADDR" description:"serve prometheus metrics on this address"`
	Debug         bool   `long:"debug" env:"METAPROTOCOL_DEBUG" description:"debug logging"`

	Envelope   envelopeCommand   `command:"envelope" description:"decode the witness envelope of a transaction"`
	OutputPair outputPairCommand `command:"output-pair" description:"reassemble the payload of two output scripts"`
	Stamp      stampCommand      `command:"stamp" description:"decrypt a stamp document"`
	Locate     locateCommand     `command:"locate" description:"find a transaction in a block"`
	Scan       scanCommand       `command:"scan" description:"decode every transaction of a block range"`
}

// app holds the dependencies shared by every command.
type app struct {
	logger  *zap.Logger
	service *service.Service
	network model.Network
}

var (
	logger = zap.NewNop()
	// runCtx is canceled on SIGINT or SIGTERM.
	runCtx = context.Background()
)

var errCommandFailed = errors.New("command failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runCtx = ctx

	parser := flags.NewParser(&config, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if command == nil {
			return nil
		}
		var err error
		if logger, err = newLogger(config.Debug); err != nil {
			return err
		}
		defer func() {
			_ = logger.Sync()
		}()
		if err := command.Execute(args); err != nil {
			logger.Error("command failed", zap.String("kind", model.Kind(err)), zap.Error(err))
			return errCommandFailed
		}
		return nil
	}

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		switch {
		case errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp:
			_, _ = os.Stdout.WriteString(flagsErr.Message + "\n")
			return
		case !errors.Is(err, errCommandFailed):
			_, _ = os.Stderr.WriteString(err.Error() + "\n")
		}
		stop()
		os.Exit(1)
	}
}

// withApp runs fn with a dialed service and releases it afterwards.
func withApp(fn func(ctx context.Context, a *app) error) error {
	a, release, err := newApp(runCtx)
	if err != nil {
		return err
	}
	defer release()
	return fn(runCtx, a)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

// newApp dials the chain data provider and starts the metrics server when
// configured. The returned func releases both.
func newApp(ctx context.Context) (*app, func(), error) {
	network := model.Network(config.Network)
	provider, shutdown, err := rpcclient.Dial(rpcclient.Config{
		Host:       config.RPCHost,
		User:       config.RPCUser,
		Pass:       config.RPCPass,
		DisableTLS: config.RPCDisableTLS,
		RPS:        config.RPCRPS,
	}, metrics.NewRPCClient(network))
	if err != nil {
		return nil, nil, err
	}

	svc, err := service.NewService(provider, nil, metrics.NewDecoder(network), logger)
	if err != nil {
		shutdown()
		return nil, nil, err
	}

	closeMetrics := serveMetrics(ctx, config.MetricsAddr)
	return &app{logger: logger, service: svc, network: network}, func() {
		closeMetrics()
		shutdown()
	}, nil
}

func serveMetrics(ctx context.Context, addr string) func() {
	if addr == "" {
		return func() {}
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	s := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Starting metrics server", zap.String("addr", addr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to listen and serve", zap.Error(err))
		}
	}()
	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown metrics server", zap.Error(err))
		}
	}
}
