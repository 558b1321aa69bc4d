package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dakshbumb/Cygnusa-Guardian/internal/config"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/files"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/grader"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/rabbitmq"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/runner/python"
)

func panicErr(err error) {
	if err != nil {
		panic(err)
	}
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		slog.SetLogLoggerLevel(slog.LevelWarn)
	}
}

func main() {
	cfg, err := config.NewConfig()
	panicErr(err)
	setLogLevel(cfg.LogLevel)

	pyCfg := python.DefaultConfig()
	pyCfg.PythonBin = cfg.PythonBin
	pyCfg.Timeout = time.Duration(cfg.ExecTimeoutSeconds) * time.Second
	pyCfg.MemoryLimitMB = cfg.MemoryLimitMB
	engine := grader.NewDefaultEngine(pyCfg)

	storage, err := files.NewTestCaseStorage(files.Config{
		Url:      cfg.MinIOHost,
		Login:    cfg.MinIOLogin,
		Password: cfg.MinIOPassword,
		Bucket:   cfg.MinIOBucket,
	})
	panicErr(err)

	handler, err := rabbitmq.NewHandler(rabbitmq.HandlerConfig{
		Login:        cfg.RabbitMQUser,
		Password:     cfg.RabbitMQPassword,
		Host:         cfg.RabbitMQHost,
		Port:         cfg.RabbitMQPort,
		WorkersCount: cfg.WorkersCount,
	}, engine, storage)
	panicErr(err)

	panicErr(handler.Start())
	slog.Info("grading worker started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	handler.Close()
}
