package config

import (
	"os"
	"runtime"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"warn"`

	PythonBin          string `env:"PYTHON_BIN" env-default:"python3"`
	ExecTimeoutSeconds int    `env:"EXEC_TIMEOUT_SECONDS" env-default:"10"`
	MemoryLimitMB      int    `env:"EXEC_MEMORY_LIMIT_MB" env-default:"128"`

	MinIOHost     string `env:"MINIO_HOST" env-default:"127.0.0.1:9000"`
	MinIOLogin    string `env:"MINIO_LOGIN" env-required:"true"`
	MinIOPassword string `env:"MINIO_PASSWORD" env-required:"true"`
	MinIOBucket   string `env:"MINIO_BUCKET" env-default:"testcases"`

	RabbitMQHost     string `env:"RABBIT_HOST" env-default:"127.0.0.1"`
	RabbitMQPort     int    `env:"RABBIT_PORT" env-default:"5672"`
	RabbitMQUser     string `env:"RABBIT_USER" env-required:"true"`
	RabbitMQPassword string `env:"RABBIT_PASSWORD" env-required:"true"`
	WorkersCount     int    `env:"WORKERS_COUNT" env-default:"0"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}

	err := cleanenv.ReadConfig(".env", cfg)
	if os.IsNotExist(err) {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, err
	}
	if cfg.WorkersCount <= 0 {
		cfg.WorkersCount = runtime.NumCPU()
	}

	return cfg, nil
}
