// Package service locates transactions through the chain data provider and
// routes them to the envelope and output-pair decoders.
package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/envelope"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/fields"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/outputpair"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/pkg/safe"
	"go.uber.org/zap"
)

// Service decodes metaprotocol payloads of individual transactions.
type Service struct {
	provider Provider
	registry *fields.Registry
	metrics  DecoderMetrics
	logger   *zap.Logger
}

// NewService builds a Service. A nil registry selects the built-in schemas.
func NewService(provider Provider, registry *fields.Registry, metrics DecoderMetrics, logger *zap.Logger) (*Service, error) {
	if provider == nil {
		return nil, errors.New("chain data provider is required")
	}
	if metrics == nil {
		return nil, errors.New("decoder metrics is required")
	}
	if registry == nil {
		registry = fields.DefaultRegistry()
	}
	return &Service{
		provider: provider,
		registry: registry,
		metrics:  metrics,
		logger:   logger.Named("decoder"),
	}, nil
}

// DecodeEnvelope decodes the envelope revealed by the first input of txid
// with the schema registered for protocol.
func (s *Service) DecodeEnvelope(ctx context.Context, txid string, protocol model.Protocol) (res *model.Envelope, err error) {
	started := time.Now()
	defer func() {
		s.observe("envelope", protocol, started, err, zap.String("txid", txid))
	}()

	schema, err := s.registry.Lookup(protocol)
	if err != nil {
		return nil, err
	}
	hash, err := ParseTxID(txid)
	if err != nil {
		return nil, err
	}
	tx, err := s.fetchTx(ctx, hash)
	if err != nil {
		return nil, err
	}
	chunks, err := firstInputEnvelope(tx)
	if err != nil {
		return nil, err
	}
	decoded, err := schema.Decode(chunks)
	if err != nil {
		return nil, err
	}
	return &model.Envelope{
		TxID:     hash.String(),
		Protocol: protocol,
		Chunks:   chunks.Len(),
		Fields:   decoded,
	}, nil
}

// DecodeOutputPair reassembles the payload split across outputs a and b.
func (s *Service) DecodeOutputPair(ctx context.Context, txid string, a, b uint32) (res *model.OutputPair, err error) {
	started := time.Now()
	defer func() {
		s.observe("output_pair", model.Stamps, started, err,
			zap.String("txid", txid), zap.Uint32("output_a", a), zap.Uint32("output_b", b))
	}()

	hash, err := ParseTxID(txid)
	if err != nil {
		return nil, err
	}
	tx, err := s.fetchTx(ctx, hash)
	if err != nil {
		return nil, err
	}
	scriptA, err := outputScript(tx, a)
	if err != nil {
		return nil, err
	}
	scriptB, err := outputScript(tx, b)
	if err != nil {
		return nil, err
	}
	payload, err := outputpair.Extract(scriptA, scriptB)
	if err != nil {
		return nil, err
	}
	s.metrics.ObservePayloadSize(model.Stamps, len(payload))
	return &model.OutputPair{
		TxID:           hash.String(),
		OutputA:        a,
		OutputB:        b,
		EncodedPayload: payload,
	}, nil
}

// DecodeStamp decrypts the SRC-20 document carried by the multisig outputs of txid.
func (s *Service) DecodeStamp(ctx context.Context, txid string) (res *model.Stamp, err error) {
	started := time.Now()
	defer func() {
		s.observe("stamp", model.Stamps, started, err, zap.String("txid", txid))
	}()

	hash, err := ParseTxID(txid)
	if err != nil {
		return nil, err
	}
	tx, err := s.fetchTx(ctx, hash)
	if err != nil {
		return nil, err
	}
	return decodeStampTx(tx)
}

func decodeStampTx(tx *wire.MsgTx) (*model.Stamp, error) {
	outputs, err := outputpair.MultisigOutputs(tx)
	if err != nil {
		return nil, err
	}
	payload, err := outputpair.Extract(tx.TxOut[outputs[0]].PkScript, tx.TxOut[outputs[1]].PkScript)
	if err != nil {
		return nil, err
	}
	key, err := outputpair.SigningKey(tx)
	if err != nil {
		return nil, err
	}
	doc, err := outputpair.DecodeStamp(payload, key)
	if err != nil {
		return nil, err
	}

	idx := make([]uint32, 0, len(outputs))
	for _, o := range outputs {
		v, err := safe.Uint32(o)
		if err != nil {
			return nil, err
		}
		idx = append(idx, v)
	}
	txHash := tx.TxHash()
	return &model.Stamp{
		TxID:       txHash.String(),
		SigningKey: hex.EncodeToString(key),
		Outputs:    idx,
		Document:   doc,
	}, nil
}

func firstInputEnvelope(tx *wire.MsgTx) (envelope.Chunks, error) {
	if len(tx.TxIn) == 0 {
		return nil, fmt.Errorf("%w: transaction has no inputs", model.ErrNoScriptPath)
	}
	return envelope.ExtractWitness(tx.TxIn[0].Witness)
}

func outputScript(tx *wire.MsgTx, index uint32) ([]byte, error) {
	if int(index) >= len(tx.TxOut) {
		return nil, fmt.Errorf("%w: output %d of %d", model.ErrOutputOutOfRange, index, len(tx.TxOut))
	}
	return tx.TxOut[index].PkScript, nil
}

func (s *Service) observe(operation string, protocol model.Protocol, started time.Time, err error, logFields ...zap.Field) {
	s.metrics.ObserveDecode(operation, protocol, err, started)
	if err == nil {
		return
	}
	logFields = append(logFields,
		zap.String("operation", operation),
		zap.String("kind", model.Kind(err)),
		zap.Error(err),
	)
	s.logger.Debug("decode failed", logFields...)
}
