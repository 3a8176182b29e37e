package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pb "github.com/godilite/ride-insights/api/v1"
	"github.com/godilite/ride-insights/internal/insight"
	"github.com/godilite/ride-insights/internal/service"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	defaultGRPCTimeout = 10 * time.Second
)

type GRPCHandlers struct {
	pb.UnimplementedInsightsServer
	insights InsightService
	logger   *zap.Logger
	timeout  time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(insights InsightService, logger *zap.Logger, timeout time.Duration) *GRPCHandlers {
	if insights == nil {
		panic("nil InsightService provided to NewGRPCHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultGRPCTimeout
	}
	return &GRPCHandlers{
		insights: insights,
		logger:   logger.Named("grpc-handler"),
		timeout:  timeout,
	}
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, insight.ErrUnknownInsight):
		s.logger.Info("unknown insight", zap.String("op", op), zap.Error(err))
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

type catalogDocument struct {
	Insights   []service.CatalogEntry `json:"insights"`
	Connection service.ConnectionInfo `json:"connection"`
}

func (s *GRPCHandlers) ListInsights(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	doc, err := toStruct(catalogDocument{
		Insights:   s.insights.Catalog(),
		Connection: s.insights.Connection(),
	})
	if err != nil {
		return nil, s.handleError(ctx, "ListInsights", err)
	}
	return doc, nil
}

func (s *GRPCHandlers) RunInsight(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	id, err := insight.Parse(req.GetValue())
	if err != nil {
		return nil, s.handleError(ctx, "RunInsight", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	panel, err := s.insights.Run(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, "RunInsight", err)
	}

	doc, err := toStruct(panel)
	if err != nil {
		return nil, s.handleError(ctx, "RunInsight", err)
	}
	return doc, nil
}

// toStruct encodes v through its JSON form so gRPC and HTTP clients see the same document.
func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	doc := &structpb.Struct{}
	if err := doc.UnmarshalJSON(b); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}
