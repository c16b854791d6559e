package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/cash-register/internal/adapter/storage"
	"github.com/rl1809/cash-register/internal/core/domain"
	"github.com/rl1809/cash-register/internal/core/service"
)

const (
	initialOnes   = 20
	totalRequests = 50
	queueSize     = 200
)

func main() {
	ctx := context.Background()

	// Initialize cache and service
	cache := storage.NewMemoryCache()
	registerService := service.NewRegisterService(domain.NewDefaultRegister(), cache, queueSize)
	defer registerService.Close()

	// Drain the transaction queue in background
	go func() {
		for range registerService.GetTransactionQueue() {
		}
	}()

	if _, err := registerService.Deposit(ctx, uuid.NewString(), []int{0, 0, 0, 0, initialOnes}); err != nil {
		log.Fatalf("failed to seed register: %v", err)
	}

	// Counters
	var changeCount atomic.Int32
	var declinedCount atomic.Int32
	var depositCount atomic.Int32
	var paidOut atomic.Int64

	// Spawn concurrent requests: every even request deposits a 5,
	// every odd one asks for 1 in change.
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			if id%2 == 0 {
				if _, err := registerService.Deposit(ctx, uuid.NewString(), []int{0, 0, 1, 0, 0}); err == nil {
					depositCount.Add(1)
				}
				return
			}

			change, _, err := registerService.MakeChange(ctx, uuid.NewString(), 1)
			if err != nil {
				declinedCount.Add(1)
				return
			}
			changeCount.Add(1)
			for j, d := range domain.DefaultDenominations {
				paidOut.Add(int64(d * change[j]))
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	// Results
	snap := registerService.Show()
	expectedTotal := initialOnes + 5*int(depositCount.Load()) - int(paidOut.Load())

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Initial Ones:     %d\n", initialOnes)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Deposits:         %d\n", depositCount.Load())
	fmt.Printf("Change Given:     %d\n", changeCount.Load())
	fmt.Printf("Declined:         %d\n", declinedCount.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Printf("Register:         %s\n", snap)
	fmt.Println("==========================================")

	// Assertions
	if snap.Total == expectedTotal {
		fmt.Printf("PASS: Total conserved at %d\n", expectedTotal)
	} else {
		fmt.Printf("FAIL: Expected total %d, got %d\n", expectedTotal, snap.Total)
	}

	negative := false
	for _, c := range snap.Counts {
		if c < 0 {
			negative = true
		}
	}
	if negative {
		fmt.Println("FAIL: Negative count in register")
	} else {
		fmt.Println("PASS: No negative counts")
	}
}
