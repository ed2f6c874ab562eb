//go:build !zmq

package main

import (
	"context"

	"go.uber.org/zap"
)

// startBlockSignal needs the zmq build tag; without it follow mode polls.
func startBlockSignal(_ context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}
	logger.Warn("built without zmq support, ignoring --zmq-addr", zap.String("addr", addr))
	return nil, nil
}
