package main

import (
	"context"
	"log"
	"os"

	"github.com/rl1809/cash-register/internal/adapter/handler"
	"github.com/rl1809/cash-register/internal/adapter/storage"
	"github.com/rl1809/cash-register/internal/config"
	"github.com/rl1809/cash-register/internal/core/domain"
	"github.com/rl1809/cash-register/internal/core/service"
	"github.com/rl1809/cash-register/internal/pkg/logging"
)

const queueSize = 64

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	register, err := domain.NewRegister(cfg.Denominations)
	if err != nil {
		log.Fatalf("failed to create register: %v", err)
	}

	// Nothing is persisted; the worker only keeps the in-process snapshot current.
	cache := storage.NewMemoryCache()
	registerService := service.NewRegisterService(register, cache, queueSize)

	done := make(chan struct{})
	go func() {
		defer close(done)
		service.NewJournalWorker(0, discardJournal{}, cache, logging.NopLogger).Run(registerService.GetTransactionQueue())
	}()

	cli := handler.NewCLIHandler(registerService)
	if err := cli.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Printf("read input: %v", err)
	}

	registerService.Close()
	<-done
}

type discardJournal struct{}

func (discardJournal) SaveTransaction(context.Context, domain.Transaction) error {
	return nil
}

func (discardJournal) LoadCounts(context.Context) (map[int]int, int64, error) {
	return nil, 0, nil
}
