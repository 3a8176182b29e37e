// Package v1 declares the ridesinsights.v1.Insights gRPC service. Messages
// are well-known types: requests are Empty or StringValue, replies are Struct
// documents shaped like the HTTP JSON API.
package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	InsightsServiceName = "ridesinsights.v1.Insights"

	Insights_ListInsights_FullMethodName = "/ridesinsights.v1.Insights/ListInsights"
	Insights_RunInsight_FullMethodName   = "/ridesinsights.v1.Insights/RunInsight"
)

// InsightsServer is the server API for the Insights service.
type InsightsServer interface {
	// ListInsights returns the Business Insights menu and the store connection state.
	ListInsights(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	// RunInsight runs the insight named by number, slug or label.
	RunInsight(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

// UnimplementedInsightsServer can be embedded to have forward compatible implementations.
type UnimplementedInsightsServer struct{}

func (UnimplementedInsightsServer) ListInsights(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, errUnimplemented("ListInsights")
}

func (UnimplementedInsightsServer) RunInsight(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, errUnimplemented("RunInsight")
}

// RegisterInsightsServer registers srv on s.
func RegisterInsightsServer(s grpc.ServiceRegistrar, srv InsightsServer) {
	s.RegisterService(&Insights_ServiceDesc, srv)
}

func _Insights_ListInsights_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InsightsServer).ListInsights(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Insights_ListInsights_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InsightsServer).ListInsights(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Insights_RunInsight_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InsightsServer).RunInsight(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Insights_RunInsight_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InsightsServer).RunInsight(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Insights_ServiceDesc is the grpc.ServiceDesc for the Insights service.
var Insights_ServiceDesc = grpc.ServiceDesc{
	ServiceName: InsightsServiceName,
	HandlerType: (*InsightsServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListInsights",
			Handler:    _Insights_ListInsights_Handler,
		},
		{
			MethodName: "RunInsight",
			Handler:    _Insights_RunInsight_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ridesinsights/v1/insights.proto",
}

// InsightsClient is the client API for the Insights service.
type InsightsClient interface {
	ListInsights(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	RunInsight(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type insightsClient struct {
	cc grpc.ClientConnInterface
}

func NewInsightsClient(cc grpc.ClientConnInterface) InsightsClient {
	return &insightsClient{cc}
}

func (c *insightsClient) ListInsights(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, Insights_ListInsights_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *insightsClient) RunInsight(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, Insights_RunInsight_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
