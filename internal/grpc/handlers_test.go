package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	pb "github.com/godilite/ride-insights/api/v1"
	"github.com/godilite/ride-insights/internal/grpc/mocks"
	"github.com/godilite/ride-insights/internal/insight"
	"github.com/godilite/ride-insights/internal/service"
	grpcserver "github.com/godilite/ride-insights/pkg/grpc/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func successPanel() service.Panel {
	return service.Panel{
		Insight: insight.TotalSuccessfulBookings,
		Slug:    "successful-bookings",
		Title:   "1. Total Successful Bookings",
		Layout:  "message",
		Status:  service.StatusOK,
		Message: &service.Message{Tone: insight.ToneSuccess, Text: "Total Successful Rides: 3", Value: int64(3)},
	}
}

// TestNewGRPCHandlers tests the constructor
func TestNewGRPCHandlers(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		mockInsights := &mocks.MockDashboardService{}

		handlers := NewGRPCHandlers(mockInsights, zap.NewNop(), time.Minute)

		assert.NotNil(t, handlers)
		assert.Equal(t, mockInsights, handlers.insights)
		assert.Equal(t, time.Minute, handlers.timeout)
		assert.NotNil(t, handlers.logger)
	})

	t.Run("nil insight service panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewGRPCHandlers(nil, zap.NewNop(), time.Minute)
		})
	})

	t.Run("zero timeout uses default", func(t *testing.T) {
		handlers := NewGRPCHandlers(&mocks.MockDashboardService{}, zap.NewNop(), 0)
		assert.Equal(t, defaultGRPCTimeout, handlers.timeout)
	})
}

func TestListInsights(t *testing.T) {
	mockInsights := &mocks.MockDashboardService{
		CatalogFunc: func() []service.CatalogEntry {
			return []service.CatalogEntry{
				{Number: 1, Slug: "successful-bookings", Label: "1. Total Successful Bookings"},
				{Number: 2, Slug: "avg-distance-by-vehicle", Label: "2. Average Ride Distance per Vehicle Type"},
			}
		},
		ConnectionFunc: func() service.ConnectionInfo {
			return service.ConnectionInfo{Warning: "Could not connect to the database: refused"}
		},
	}
	handlers := NewGRPCHandlers(mockInsights, zap.NewNop(), time.Second)

	resp, err := handlers.ListInsights(context.Background(), &emptypb.Empty{})

	require.NoError(t, err)
	list := resp.Fields["insights"].GetListValue().GetValues()
	require.Len(t, list, 2)
	assert.Equal(t, "successful-bookings", list[0].GetStructValue().Fields["slug"].GetStringValue())
	assert.Equal(t, float64(2), list[1].GetStructValue().Fields["number"].GetNumberValue())

	conn := resp.Fields["connection"].GetStructValue()
	assert.False(t, conn.Fields["connected"].GetBoolValue())
	assert.Equal(t, "Could not connect to the database: refused", conn.Fields["warning"].GetStringValue())
}

func TestRunInsight(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got insight.ID
		mockInsights := &mocks.MockDashboardService{
			RunFunc: func(ctx context.Context, id insight.ID) (service.Panel, error) {
				got = id
				_, ok := ctx.Deadline()
				assert.True(t, ok)
				return successPanel(), nil
			},
		}
		handlers := NewGRPCHandlers(mockInsights, zap.NewNop(), time.Second)

		resp, err := handlers.RunInsight(context.Background(), wrapperspb.String("1"))

		require.NoError(t, err)
		assert.Equal(t, insight.TotalSuccessfulBookings, got)
		assert.Equal(t, "successful-bookings", resp.Fields["insight"].GetStringValue())
		assert.Equal(t, "ok", resp.Fields["status"].GetStringValue())
		msg := resp.Fields["message"].GetStructValue()
		assert.Equal(t, "success", msg.Fields["tone"].GetStringValue())
		assert.Equal(t, float64(3), msg.Fields["value"].GetNumberValue())
	})

	t.Run("by slug", func(t *testing.T) {
		mockInsights := &mocks.MockDashboardService{
			RunFunc: func(ctx context.Context, id insight.ID) (service.Panel, error) {
				assert.Equal(t, insight.UPIPayments, id)
				return service.Panel{Slug: id.Slug(), Status: service.StatusNoConnection, Notice: service.NoticeNoConnection}, nil
			},
		}
		handlers := NewGRPCHandlers(mockInsights, zap.NewNop(), time.Second)

		resp, err := handlers.RunInsight(context.Background(), wrapperspb.String("upi-payments"))

		require.NoError(t, err)
		assert.Equal(t, "no_connection", resp.Fields["status"].GetStringValue())
		assert.Equal(t, service.NoticeNoConnection, resp.Fields["notice"].GetStringValue())
	})

	t.Run("unknown insight", func(t *testing.T) {
		mockInsights := &mocks.MockDashboardService{}
		handlers := NewGRPCHandlers(mockInsights, zap.NewNop(), time.Second)

		_, err := handlers.RunInsight(context.Background(), wrapperspb.String("42"))

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("service error", func(t *testing.T) {
		mockInsights := &mocks.MockDashboardService{
			RunFunc: func(ctx context.Context, id insight.ID) (service.Panel, error) {
				return service.Panel{}, errors.New("boom")
			},
		}
		handlers := NewGRPCHandlers(mockInsights, zap.NewNop(), time.Second)

		_, err := handlers.RunInsight(context.Background(), wrapperspb.String("3"))

		assert.Equal(t, codes.Internal, status.Code(err))
	})

	t.Run("canceled context", func(t *testing.T) {
		mockInsights := &mocks.MockDashboardService{
			RunFunc: func(ctx context.Context, id insight.ID) (service.Panel, error) {
				return service.Panel{}, ctx.Err()
			},
		}
		handlers := NewGRPCHandlers(mockInsights, zap.NewNop(), time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := handlers.RunInsight(ctx, wrapperspb.String("3"))

		assert.Equal(t, codes.Canceled, status.Code(err))
	})
}

func TestInsightsService_OverBufconn(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv, err := grpcserver.New(grpcserver.WithListener(lis), grpcserver.WithLogging(true), grpcserver.WithLogger(zap.NewNop()))
	require.NoError(t, err)

	mockInsights := &mocks.MockDashboardService{
		RunFunc: func(ctx context.Context, id insight.ID) (service.Panel, error) {
			return successPanel(), nil
		},
	}
	srv.RegisterServiceWithHealth(pb.InsightsServiceName, func(s *grpc.Server) {
		pb.RegisterInsightsServer(s, NewGRPCHandlers(mockInsights, zap.NewNop(), time.Second))
	})
	srv.Start()
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := pb.NewInsightsClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := client.RunInsight(ctx, wrapperspb.String("successful-bookings"))
	require.NoError(t, err)
	assert.Equal(t, "Total Successful Rides: 3", resp.Fields["message"].GetStructValue().Fields["text"].GetStringValue())

	list, err := client.ListInsights(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.NotNil(t, list.Fields["connection"])

	_, err = client.RunInsight(ctx, wrapperspb.String("HOMEPAGE"))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
