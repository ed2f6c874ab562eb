package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Provider is the chain data provider. *rpcclient.Client satisfies it.
	Provider interface {
		GetRawTransaction(txHash *chainhash.Hash) (*btcutil.Tx, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlock(blockHash *chainhash.Hash) (*wire.MsgBlock, error)
		GetBlockCount() (int64, error)
	}
	DecoderMetrics interface {
		ObserveDecode(operation string, protocol model.Protocol, err error, started time.Time)
		ObservePayloadSize(protocol model.Protocol, size int)
	}
	ScannerMetrics interface {
		ObserveBlock(err error, height uint64, transactions int, started time.Time)
		ObserveEvent(protocol model.Protocol)
		ObserveSkipped(protocol model.Protocol, err error)
	}
	// EventSink receives events found in follow mode. *batcher.Batcher satisfies it.
	EventSink interface {
		Start(ctx context.Context)
		Stop()
		Add(ctx context.Context, item model.ScanEvent) error
	}
)
