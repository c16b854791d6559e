package handler

import (
	"testing"

	"github.com/rl1809/cash-register/internal/adapter/storage"
	"github.com/rl1809/cash-register/internal/core/domain"
	"github.com/rl1809/cash-register/internal/core/service"
)

func newTestService(t *testing.T) *service.RegisterService {
	t.Helper()

	svc := service.NewRegisterService(domain.NewDefaultRegister(), storage.NewMemoryCache(), 100)
	t.Cleanup(svc.Close)

	go func() {
		for range svc.GetTransactionQueue() {
		}
	}()

	return svc
}
