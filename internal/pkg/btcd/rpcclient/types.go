package rpcclient

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Client is the subset of *rpcclient.Client used by the decoder.
	Client interface {
		GetRawTransaction(txHash *chainhash.Hash) (*btcutil.Tx, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlock(blockHash *chainhash.Hash) (*wire.MsgBlock, error)
		GetBlockCount() (int64, error)
	}
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
