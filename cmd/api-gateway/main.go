package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/service"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/transport"
	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var config struct {
	Addr     string `long:"addr" env:"API_GATEWAY_ADDR" description:"addr" default:":8000"`
	RestAddr string `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"rest addr" default:":8001"`
	Network  string `long:"network" env:"API_GATEWAY_NETWORK" description:"network" default:"mainnet"`

	RPCHost       string `long:"rpc-host" env:"API_GATEWAY_RPC_HOST" description:"bitcoind rpc host:port" default:"127.0.0.1:8332"`
	RPCUser       string `long:"rpc-user" env:"API_GATEWAY_RPC_USER" description:"rpc user"`
	RPCPass       string `long:"rpc-pass" env:"API_GATEWAY_RPC_PASS" description:"rpc password"`
	RPCDisableTLS bool   `long:"rpc-disable-tls" env:"API_GATEWAY_RPC_DISABLE_TLS" description:"plain http rpc"`
	RPCRPS        int    `long:"rpc-rps" env:"API_GATEWAY_RPC_RPS" description:"rpc requests per second, 0 for unlimited" default:"0"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	network := model.Network(config.Network)
	provider, shutdownRPC, err := rpcclient.Dial(rpcclient.Config{
		Host:       config.RPCHost,
		User:       config.RPCUser,
		Pass:       config.RPCPass,
		DisableTLS: config.RPCDisableTLS,
		RPS:        config.RPCRPS,
	}, metrics.NewRPCClient(network))
	if err != nil {
		logger.Fatal("Failed to create rpc client", zap.Error(err))
	}
	defer shutdownRPC()

	decoder, err := service.NewService(provider, nil, metrics.NewDecoder(network), logger)
	if err != nil {
		logger.Fatal("Failed to create decoder service", zap.Error(err))
	}

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	blockinsight7000v1.RegisterExplorerServiceServer(grpcServer, transport.NewExplorerHandler(provider, logger))

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	mux := http.NewServeMux()

	gw := gwruntime.NewServeMux()
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if err := blockinsight7000v1.RegisterExplorerServiceHandlerFromEndpoint(ctx, gw, config.Addr, opts); err != nil {
		logger.Fatal("Register explorer handler", zap.Error(err))
	}
	if err := transport.NewDecodeHandler(decoder, logger).Register(gw); err != nil {
		logger.Fatal("Register decode handler", zap.Error(err))
	}

	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
