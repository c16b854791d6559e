package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/cash-register/internal/adapter/handler/rpc"
	"github.com/rl1809/cash-register/internal/core/domain"
	"github.com/rl1809/cash-register/internal/core/service"
)

type GRPCHandler struct {
	rpc.UnimplementedRegisterServiceServer
	registerService *service.RegisterService
}

func NewGRPCHandler(registerService *service.RegisterService) *GRPCHandler {
	return &GRPCHandler{registerService: registerService}
}

func (h *GRPCHandler) Show(ctx context.Context, req *rpc.ShowRequest) (*rpc.RegisterResponse, error) {
	return toRegisterResponse(h.registerService.Show()), nil
}

func (h *GRPCHandler) Deposit(ctx context.Context, req *rpc.AmountsRequest) (*rpc.RegisterResponse, error) {
	snap, err := h.registerService.Deposit(ctx, req.GetRequestId(), toInts(req.GetAmounts()))
	if err != nil {
		return nil, toStatus(err)
	}
	return toRegisterResponse(snap), nil
}

func (h *GRPCHandler) Withdraw(ctx context.Context, req *rpc.AmountsRequest) (*rpc.RegisterResponse, error) {
	snap, err := h.registerService.Withdraw(ctx, req.GetRequestId(), toInts(req.GetAmounts()))
	if err != nil {
		return nil, toStatus(err)
	}
	return toRegisterResponse(snap), nil
}

func (h *GRPCHandler) MakeChange(ctx context.Context, req *rpc.ChangeRequest) (*rpc.ChangeResponse, error) {
	change, snap, err := h.registerService.MakeChange(ctx, req.GetRequestId(), int(req.GetTarget()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &rpc.ChangeResponse{
		Change:   toInt64s(change),
		Text:     domain.FormatAmounts(change),
		Register: toRegisterResponse(snap),
	}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrDuplicateRequest):
		return status.Error(codes.AlreadyExists, "duplicate request")
	case errors.Is(err, domain.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}

func toRegisterResponse(snap domain.Snapshot) *rpc.RegisterResponse {
	return &rpc.RegisterResponse{
		Total:   int64(snap.Total),
		Counts:  toInt64s(snap.Counts),
		Display: snap.String(),
	}
}

func toInts(in []int64) []int {
	if in == nil {
		return nil
	}
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

func toInt64s(in []int) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}
