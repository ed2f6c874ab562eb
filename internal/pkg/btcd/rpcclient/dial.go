package rpcclient

import (
	"fmt"

	btcrpc "github.com/btcsuite/btcd/rpcclient"
	"go.uber.org/ratelimit"
)

// Config describes the bitcoind JSON-RPC endpoint.
type Config struct {
	Host       string
	User       string
	Pass       string
	DisableTLS bool
	// RPS caps requests per second; zero means unlimited.
	RPS int
}

// Dial opens an HTTP POST mode client and wraps it with metrics and the
// configured rate limit. The returned func shuts the connection down.
func Dial(cfg Config, rpcMetrics RPCMetrics) (*ObservedClient, func(), error) {
	client, err := btcrpc.New(&btcrpc.ConnConfig{
		Host:         cfg.Host,
		User:         cfg.User,
		Pass:         cfg.Pass,
		HTTPPostMode: true,
		DisableTLS:   cfg.DisableTLS,
	}, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("rpc client %s: %w", cfg.Host, err)
	}

	var limiter ratelimit.Limiter
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	return NewObservedClient(client, rpcMetrics, limiter), client.Shutdown, nil
}
