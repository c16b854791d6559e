// Package rpc defines the cashregister.v1.RegisterService gRPC contract.
//
// Messages are plain structs carried by the JSON codec registered in this
// package; clients select it with grpc.CallContentSubtype(CodecName).
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "cashregister.v1.RegisterService"

type ShowRequest struct{}

type AmountsRequest struct {
	RequestId string  `json:"request_id,omitempty"`
	Amounts   []int64 `json:"amounts"`
}

type ChangeRequest struct {
	RequestId string `json:"request_id,omitempty"`
	Target    int64  `json:"target"`
}

type RegisterResponse struct {
	Total   int64   `json:"total"`
	Counts  []int64 `json:"counts"`
	Display string  `json:"display"`
}

type ChangeResponse struct {
	Change   []int64           `json:"change"`
	Text     string            `json:"text"`
	Register *RegisterResponse `json:"register"`
}

func (r *AmountsRequest) GetRequestId() string {
	if r == nil {
		return ""
	}
	return r.RequestId
}

func (r *AmountsRequest) GetAmounts() []int64 {
	if r == nil {
		return nil
	}
	return r.Amounts
}

func (r *ChangeRequest) GetRequestId() string {
	if r == nil {
		return ""
	}
	return r.RequestId
}

func (r *ChangeRequest) GetTarget() int64 {
	if r == nil {
		return 0
	}
	return r.Target
}

// RegisterServiceServer is the server API for RegisterService.
type RegisterServiceServer interface {
	Show(context.Context, *ShowRequest) (*RegisterResponse, error)
	Deposit(context.Context, *AmountsRequest) (*RegisterResponse, error)
	Withdraw(context.Context, *AmountsRequest) (*RegisterResponse, error)
	MakeChange(context.Context, *ChangeRequest) (*ChangeResponse, error)
}

// UnimplementedRegisterServiceServer can be embedded to stay forward compatible.
type UnimplementedRegisterServiceServer struct{}

func (UnimplementedRegisterServiceServer) Show(context.Context, *ShowRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Show not implemented")
}

func (UnimplementedRegisterServiceServer) Deposit(context.Context, *AmountsRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Deposit not implemented")
}

func (UnimplementedRegisterServiceServer) Withdraw(context.Context, *AmountsRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Withdraw not implemented")
}

func (UnimplementedRegisterServiceServer) MakeChange(context.Context, *ChangeRequest) (*ChangeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MakeChange not implemented")
}

func RegisterRegisterServiceServer(s grpc.ServiceRegistrar, srv RegisterServiceServer) {
	s.RegisterService(&RegisterService_ServiceDesc, srv)
}

var RegisterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RegisterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Show", Handler: _RegisterService_Show_Handler},
		{MethodName: "Deposit", Handler: _RegisterService_Deposit_Handler},
		{MethodName: "Withdraw", Handler: _RegisterService_Withdraw_Handler},
		{MethodName: "MakeChange", Handler: _RegisterService_MakeChange_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cashregister/v1/register.proto",
}

func _RegisterService_Show_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ShowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegisterServiceServer).Show(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Show"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RegisterServiceServer).Show(ctx, req.(*ShowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RegisterService_Deposit_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AmountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegisterServiceServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Deposit"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RegisterServiceServer).Deposit(ctx, req.(*AmountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RegisterService_Withdraw_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AmountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegisterServiceServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Withdraw"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RegisterServiceServer).Withdraw(ctx, req.(*AmountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RegisterService_MakeChange_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ChangeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegisterServiceServer).MakeChange(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/MakeChange"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RegisterServiceServer).MakeChange(ctx, req.(*ChangeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RegisterServiceClient is the client API for RegisterService.
type RegisterServiceClient interface {
	Show(ctx context.Context, in *ShowRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Deposit(ctx context.Context, in *AmountsRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Withdraw(ctx context.Context, in *AmountsRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	MakeChange(ctx context.Context, in *ChangeRequest, opts ...grpc.CallOption) (*ChangeResponse, error)
}

type registerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRegisterServiceClient(cc grpc.ClientConnInterface) RegisterServiceClient {
	return &registerServiceClient{cc: cc}
}

func (c *registerServiceClient) Show(ctx context.Context, in *ShowRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	if err := c.invoke(ctx, "Show", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *registerServiceClient) Deposit(ctx context.Context, in *AmountsRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	if err := c.invoke(ctx, "Deposit", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *registerServiceClient) Withdraw(ctx context.Context, in *AmountsRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	if err := c.invoke(ctx, "Withdraw", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *registerServiceClient) MakeChange(ctx context.Context, in *ChangeRequest, opts ...grpc.CallOption) (*ChangeResponse, error) {
	out := new(ChangeResponse)
	if err := c.invoke(ctx, "MakeChange", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *registerServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}
