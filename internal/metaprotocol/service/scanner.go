package service

import (
	"context"
	"errors"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/pkg/workerpool"
	"go.uber.org/zap"
)

// Scanner decodes every transaction of a block and follows the chain tip.
type Scanner struct {
	service      *Service
	metrics      ScannerMetrics
	logger       *zap.Logger
	workerCount  int
	sleep        func(context.Context, time.Duration) error
	pollInterval time.Duration
	retrySleep   time.Duration
}

// NewScanner builds a Scanner on top of a decoding Service.
func NewScanner(service *Service, metrics ScannerMetrics, logger *zap.Logger, workerCount int) (*Scanner, error) {
	if service == nil {
		return nil, errors.New("decoder service is required")
	}
	if metrics == nil {
		return nil, errors.New("scanner metrics is required")
	}
	if workerCount < 1 {
		workerCount = defaultWorkerCount
	}
	return &Scanner{
		service:      service,
		metrics:      metrics,
		logger:       logger.Named("scanner"),
		workerCount:  workerCount,
		sleep:        clock.SleepWithContext,
		pollInterval: defaultPollInterval,
		retrySleep:   retrySleepDuration,
	}, nil
}

// ScanBlock returns the decoded payloads of the block at height in
// transaction order. Transactions that look like a wanted protocol but fail
// to decode are counted and skipped.
func (s *Scanner) ScanBlock(ctx context.Context, height uint64, protocols []model.Protocol) (events []model.ScanEvent, err error) {
	started := time.Now()
	transactions := 0
	defer func() {
		s.metrics.ObserveBlock(err, height, transactions, started)
	}()

	block, err := s.service.fetchBlock(ctx, height)
	if err != nil {
		return nil, err
	}
	transactions = len(block.Transactions)
	want := wanted(protocols)

	found, err := workerpool.Map(ctx, s.workerCount, block.Transactions, func(_ context.Context, tx *wire.MsgTx) (*model.ScanEvent, error) {
		return s.decodeTx(tx, want), nil
	})
	if err != nil {
		return nil, err
	}

	blockTime := block.Header.Timestamp.UTC()
	for i, ev := range found {
		if ev == nil {
			continue
		}
		ev.Height = height
		ev.BlockTime = blockTime
		ev.TxIndex = i
		events = append(events, *ev)
		s.metrics.ObserveEvent(ev.Protocol)
	}
	s.logger.Debug("block scanned",
		zap.Uint64("height", height),
		zap.Int("transactions", transactions),
		zap.Int("events", len(events)),
	)
	return events, nil
}

// decodeTx returns nil for transactions that carry no wanted payload.
func (s *Scanner) decodeTx(tx *wire.MsgTx, want map[model.Protocol]bool) *model.ScanEvent {
	txid := tx.TxHash().String()

	if chunks, err := firstInputEnvelope(tx); err == nil && chunks.Len() > 0 {
		if schema, ok := s.service.registry.Identify(chunks); ok && want[schema.Protocol()] {
			decoded, err := schema.Decode(chunks)
			if err != nil {
				s.skip(schema.Protocol(), txid, err)
				return nil
			}
			return &model.ScanEvent{TxID: txid, Protocol: schema.Protocol(), Payload: decoded}
		}
	}

	if want[model.Stamps] {
		stamp, err := decodeStampTx(tx)
		switch {
		case err == nil:
			return &model.ScanEvent{TxID: txid, Protocol: model.Stamps, Payload: stamp.Document}
		case errors.Is(err, model.ErrNotStamp):
		default:
			s.skip(model.Stamps, txid, err)
		}
	}
	return nil
}

func (s *Scanner) skip(protocol model.Protocol, txid string, err error) {
	s.metrics.ObserveSkipped(protocol, err)
	s.logger.Debug("skip undecodable transaction",
		zap.String("protocol", string(protocol)),
		zap.String("txid", txid),
		zap.String("kind", model.Kind(err)),
		zap.Error(err),
	)
}

// Follow scans from start onwards and keeps up with the chain tip, feeding
// events to sink. A nil signal falls back to polling. It returns when ctx is
// canceled.
func (s *Scanner) Follow(ctx context.Context, start uint64, protocols []model.Protocol, signal <-chan struct{}, sink EventSink) error {
	sink.Start(ctx)
	defer sink.Stop()

	next := start
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var err error
		next, err = s.catchUp(ctx, next, protocols, sink)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("follow iteration failed, backing off",
				zap.Uint64("height", next),
				zap.String("kind", model.Kind(err)),
				zap.Error(err),
				zap.Duration("sleep", s.retrySleep),
			)
			if sleepErr := s.sleep(ctx, s.retrySleep); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		if err := s.wait(ctx, signal); err != nil {
			return err
		}
	}
}

// catchUp scans every height from next up to the current tip and returns the
// first height not yet scanned.
func (s *Scanner) catchUp(ctx context.Context, next uint64, protocols []model.Protocol, sink EventSink) (uint64, error) {
	count, err := s.service.provider.GetBlockCount()
	if err != nil {
		return next, err
	}
	tip, err := safe.Uint64(count)
	if err != nil {
		return next, err
	}
	if next > tip {
		s.logger.Debug("waiting for next block", zap.Uint64("tip", tip), zap.Uint64("next", next))
		return next, nil
	}

	for ; next <= tip; next++ {
		events, err := s.ScanBlock(ctx, next, protocols)
		if err != nil {
			return next, err
		}
		for _, ev := range events {
			if err := sink.Add(ctx, ev); err != nil {
				return next, err
			}
		}
		s.logger.Info("height processed", zap.Uint64("height", next), zap.Uint64("tip", tip), zap.Int("events", len(events)))
	}
	return next, nil
}

func (s *Scanner) wait(ctx context.Context, signal <-chan struct{}) error {
	if signal == nil {
		return s.sleep(ctx, s.pollInterval)
	}
	return clock.SleepOrSignal(ctx, s.pollInterval, signal)
}

func wanted(protocols []model.Protocol) map[model.Protocol]bool {
	want := make(map[model.Protocol]bool, len(protocols))
	if len(protocols) == 0 {
		protocols = []model.Protocol{model.Ordinals, model.Atomicals, model.Stamps}
	}
	for _, p := range protocols {
		want[p] = true
	}
	return want
}
