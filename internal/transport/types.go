package transport

import (
	"context"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Decoder is implemented by *service.Service.
	Decoder interface {
		DecodeEnvelope(ctx context.Context, txid string, protocol model.Protocol) (*model.Envelope, error)
		DecodeOutputPair(ctx context.Context, txid string, a, b uint32) (*model.OutputPair, error)
		DecodeStamp(ctx context.Context, txid string) (*model.Stamp, error)
		LocateInBlock(ctx context.Context, height uint64, txid string) (*wire.MsgTx, error)
	}
	TipSource interface {
		GetBlockCount() (int64, error)
	}
)
