// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"fmt"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer
	tip    TipSource
	logger *zap.Logger
}

// NewExplorerHandler returns an ExplorerHandler reporting the node tip.
func NewExplorerHandler(tip TipSource, logger *zap.Logger) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{tip: tip, logger: logger.Named("explorer")}
}

// Health reports healthy while the chain data provider answers.
func (h *ExplorerHandler) Health(_ context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	count, err := h.tip.GetBlockCount()
	if err != nil {
		h.logger.Warn("chain data provider unavailable", zap.Error(err))
		return nil, status.Errorf(codes.Unavailable, "chain data provider: %v", err)
	}
	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: fmt.Sprintf("node tip %d", count),
	}, nil
}
