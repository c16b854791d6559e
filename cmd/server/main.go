package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/rl1809/cash-register/internal/adapter/handler"
	"github.com/rl1809/cash-register/internal/adapter/handler/rpc"
	"github.com/rl1809/cash-register/internal/adapter/storage"
	"github.com/rl1809/cash-register/internal/config"
	"github.com/rl1809/cash-register/internal/core/domain"
	"github.com/rl1809/cash-register/internal/core/service"
	"github.com/rl1809/cash-register/internal/pkg/logging"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := logging.StdoutLogger

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	register, err := domain.NewRegister(cfg.Denominations)
	if err != nil {
		log.Fatalf("failed to create register: %v", err)
	}

	// Initialize MySQL
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("failed to connect mysql: %v", err)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}
	if err := storage.Migrate(ctx, db); err != nil {
		log.Fatalf("failed to migrate mysql: %v", err)
	}
	logger.Info("connected to mysql")

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	logger.Info("connected to redis")

	// Initialize adapters
	redisAdapter := storage.NewRedisAdapter(rdb)
	mysqlAdapter := storage.NewMySQLAdapter(db)

	// Initialize service and restore the last persisted counts
	registerService := service.NewRegisterService(register, redisAdapter, cfg.QueueSize)
	if err := registerService.RestoreFrom(ctx, mysqlAdapter); err != nil {
		log.Fatalf("failed to restore register: %v", err)
	}
	// A crash between journaling and publishing leaves Redis behind MySQL
	if wrote, err := registerService.SyncSnapshot(ctx); err != nil {
		log.Fatalf("failed to sync snapshot: %v", err)
	} else if wrote {
		logger.Info("republished register snapshot")
	}
	logger.Info("register ready", "denominations", domain.FormatAmounts(register.Denominations()),
		"display", register.Display())

	// Start worker pool
	var wg sync.WaitGroup
	for i := 0; i < cfg.WorkerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			service.NewJournalWorker(id, mysqlAdapter, redisAdapter, logger).Run(registerService.GetTransactionQueue())
		}(i)
	}
	logger.Info("started journal workers", "count", cfg.WorkerCount)

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	rpc.RegisterRegisterServiceServer(grpcServer, handler.NewGRPCHandler(registerService))
	healthServer := health.NewServer()
	healthServer.SetServingStatus(rpc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Start gRPC server
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		logger.Info("gRPC server listening", "addr", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC server error", "error", err)
		}
	}()

	// Initialize HTTP server
	mux := http.NewServeMux()
	handler.NewHTTPHandler(registerService).Routes(mux)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	healthServer.Shutdown()

	// Stop HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	logger.Info("HTTP server stopped")

	// Stop gRPC server
	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")

	// Close transaction queue and wait for workers
	registerService.Close()
	wg.Wait()
	logger.Info("workers stopped")

	// Close connections
	rdb.Close()
	db.Close()
	logger.Info("connections closed")
}
