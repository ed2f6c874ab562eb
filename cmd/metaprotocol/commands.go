package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/service"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/pkg/batcher"
	"go.uber.org/zap"
)

var stdout io.Writer = os.Stdout

type envelopeCommand struct {
	Args struct {
		TxID     string `positional-arg-name:"txid" description:"transaction id"`
		Protocol string `positional-arg-name:"protocol" description:"ordinals or atomicals"`
	} `positional-args:"yes" required:"yes"`
}

func (c *envelopeCommand) Execute(_ []string) error {
	protocol, err := model.ParseProtocol(c.Args.Protocol)
	if err != nil {
		return err
	}
	return withApp(func(ctx context.Context, a *app) error {
		res, err := a.service.DecodeEnvelope(ctx, c.Args.TxID, protocol)
		if err != nil {
			return fmt.Errorf("txid %s: %w", c.Args.TxID, err)
		}
		return printJSON(res)
	})
}

type outputPairCommand struct {
	Args struct {
		TxID    string `positional-arg-name:"txid" description:"transaction id"`
		OutputA uint32 `positional-arg-name:"a" description:"first output index"`
		OutputB uint32 `positional-arg-name:"b" description:"second output index"`
	} `positional-args:"yes" required:"yes"`
}

func (c *outputPairCommand) Execute(_ []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		res, err := a.service.DecodeOutputPair(ctx, c.Args.TxID, c.Args.OutputA, c.Args.OutputB)
		if err != nil {
			return fmt.Errorf("txid %s: %w", c.Args.TxID, err)
		}
		return printJSON(res)
	})
}

type stampCommand struct {
	Args struct {
		TxID string `positional-arg-name:"txid" description:"transaction id"`
	} `positional-args:"yes" required:"yes"`
}

func (c *stampCommand) Execute(_ []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		res, err := a.service.DecodeStamp(ctx, c.Args.TxID)
		if err != nil {
			return fmt.Errorf("txid %s: %w", c.Args.TxID, err)
		}
		return printJSON(res)
	})
}

type locateCommand struct {
	Args struct {
		Height uint64 `positional-arg-name:"height" description:"block height"`
		TxID   string `positional-arg-name:"txid" description:"transaction id"`
	} `positional-args:"yes" required:"yes"`
}

func (c *locateCommand) Execute(_ []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		tx, err := a.service.LocateInBlock(ctx, c.Args.Height, c.Args.TxID)
		if err != nil {
			return fmt.Errorf("height %d txid %s: %w", c.Args.Height, c.Args.TxID, err)
		}
		view, err := transport.NewTxView(tx)
		if err != nil {
			return err
		}
		return printJSON(view)
	})
}

type scanCommand struct {
	Heights       string        `long:"heights" description:"height, comma list or inclusive a:b range"`
	Protocols     []string      `long:"protocol" description:"protocol to report, repeatable; all when omitted"`
	Follow        bool          `long:"follow" description:"keep scanning new blocks from --start"`
	Start         uint64        `long:"start" description:"first height in follow mode"`
	Workers       int           `long:"workers" env:"METAPROTOCOL_WORKERS" description:"transactions decoded concurrently" default:"16"`
	ZMQAddr       string        `long:"zmq-addr" env:"METAPROTOCOL_ZMQ_ADDR" description:"bitcoind zmq hashblock endpoint"`
	BatchSize     int           `long:"batch-size" description:"events buffered before writing" default:"100"`
	BatchInterval time.Duration `long:"batch-interval" description:"max delay before buffered events are written" default:"1s"`
}

func (c *scanCommand) Execute(_ []string) error {
	protocols := make([]model.Protocol, 0, len(c.Protocols))
	for _, p := range c.Protocols {
		protocol, err := model.ParseProtocol(p)
		if err != nil {
			return err
		}
		protocols = append(protocols, protocol)
	}

	var heights []uint64
	if !c.Follow {
		var err error
		if heights, err = service.ParseHeights(c.Heights); err != nil {
			return err
		}
	}

	return withApp(func(ctx context.Context, a *app) error {
		scanner, err := service.NewScanner(a.service, metrics.NewScanner(a.network), a.logger, c.Workers)
		if err != nil {
			return err
		}
		if c.Follow {
			return c.follow(ctx, a, scanner, protocols)
		}
		enc := json.NewEncoder(stdout)
		for _, height := range heights {
			events, err := scanner.ScanBlock(ctx, height, protocols)
			if err != nil {
				return fmt.Errorf("height %d: %w", height, err)
			}
			for _, ev := range events {
				if err := enc.Encode(ev); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (c *scanCommand) follow(ctx context.Context, a *app, scanner *service.Scanner, protocols []model.Protocol) error {
	signal, err := startBlockSignal(ctx, c.ZMQAddr, a.logger)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	sink := batcher.New[model.ScanEvent](a.logger, func(_ context.Context, events []model.ScanEvent) error {
		for _, ev := range events {
			if err := enc.Encode(ev); err != nil {
				return err
			}
		}
		return nil
	}, batcher.Config{Size: c.BatchSize, Interval: c.BatchInterval})

	a.logger.Info("following chain tip", zap.Uint64("start", c.Start), zap.Bool("zmq", signal != nil))
	err = scanner.Follow(ctx, c.Start, protocols, signal, sink)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func printJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
