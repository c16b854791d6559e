package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings read from the environment.
type Config struct {
	Denominations   []int         `env:"REGISTER_DENOMINATIONS"    envDefault:"20,10,5,2,1" envSeparator:","`
	HTTPAddr        string        `env:"REGISTER_HTTP_ADDR"        envDefault:":8080"`
	GRPCAddr        string        `env:"REGISTER_GRPC_ADDR"        envDefault:":50051"`
	MySQLDSN        string        `env:"REGISTER_MYSQL_DSN"        envDefault:"root:root@tcp(localhost:3306)/cashregister?parseTime=true"`
	RedisAddr       string        `env:"REGISTER_REDIS_ADDR"       envDefault:"localhost:6379"`
	WorkerCount     int           `env:"REGISTER_WORKER_COUNT"     envDefault:"4"`
	QueueSize       int           `env:"REGISTER_QUEUE_SIZE"       envDefault:"1024"`
	ShutdownTimeout time.Duration `env:"REGISTER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.WorkerCount <= 0 {
		return Config{}, fmt.Errorf("worker count must be > 0, got %d", cfg.WorkerCount)
	}
	if cfg.QueueSize < 0 {
		return Config{}, fmt.Errorf("queue size must be >= 0, got %d", cfg.QueueSize)
	}
	return cfg, nil
}
