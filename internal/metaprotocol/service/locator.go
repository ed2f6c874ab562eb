package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/pkg/safe"
	"go.uber.org/zap"
)

// ParseTxID validates a transaction id in display (byte-reversed) hex form.
func ParseTxID(txid string) (*chainhash.Hash, error) {
	if len(txid) != chainhash.MaxHashStringSize {
		return nil, fmt.Errorf("%w: %q has %d characters, want %d", model.ErrInvalidTxid, txid, len(txid), chainhash.MaxHashStringSize)
	}
	if _, err := hex.DecodeString(txid); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", model.ErrInvalidTxid, txid, err)
	}
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", model.ErrInvalidTxid, txid, err)
	}
	return hash, nil
}

// LocateInBlock fetches the block at height and returns the transaction whose
// id equals txid.
func (s *Service) LocateInBlock(ctx context.Context, height uint64, txid string) (tx *wire.MsgTx, err error) {
	started := time.Now()
	defer func() {
		s.observe("locate", "", started, err, zap.Uint64("height", height), zap.String("txid", txid))
	}()

	hash, err := ParseTxID(txid)
	if err != nil {
		return nil, err
	}
	block, err := s.fetchBlock(ctx, height)
	if err != nil {
		return nil, err
	}
	for _, candidate := range block.Transactions {
		if candidate.TxHash() == *hash {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w: transaction %s in block %d", model.ErrNotFound, txid, height)
}

func (s *Service) fetchTx(ctx context.Context, hash *chainhash.Hash) (*wire.MsgTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tx, err := s.provider.GetRawTransaction(hash)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", hash, err)
	}
	if tx == nil || tx.MsgTx() == nil {
		return nil, fmt.Errorf("%w: transaction %s", model.ErrNotFound, hash)
	}
	return tx.MsgTx(), nil
}

func (s *Service) fetchBlock(ctx context.Context, height uint64) (*wire.MsgBlock, error) {
	h, err := safe.Int64(height)
	if err != nil {
		return nil, fmt.Errorf("%w: height %d: %v", model.ErrNotFound, height, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := s.provider.GetBlockHash(h)
	if err != nil {
		return nil, fmt.Errorf("get block hash %d: %w", height, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	block, err := s.provider.GetBlock(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	return block, nil
}
