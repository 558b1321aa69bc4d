package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Dakshbumb/Cygnusa-Guardian/internal/files"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/grader"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/mappers"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/models"
)

const (
	reqQueue  = "grade-req"
	respQueue = "grade-resp"
)

type HandlerConfig struct {
	Login        string
	Password     string
	Host         string
	Port         int
	WorkersCount int
}

// Handler consumes grade tasks, resolves their test cases, grades them and
// publishes the evidence plus audit fingerprint to the response queue.
type Handler struct {
	cfg          HandlerConfig
	engine       *grader.Engine
	storage      *files.TestCaseStorage
	conn         *amqp.Connection
	consumerChan *amqp.Channel
	producerChan *amqp.Channel
	tasksChan    chan models.GradeTask
	wg           sync.WaitGroup
	mu           sync.Mutex
	closed       bool
}

func NewHandler(cfg HandlerConfig, engine *grader.Engine, storage *files.TestCaseStorage) (*Handler, error) {
	if cfg.WorkersCount <= 0 {
		return nil, errors.New("workers count must be positive")
	}
	return &Handler{
		cfg:       cfg,
		engine:    engine,
		storage:   storage,
		tasksChan: make(chan models.GradeTask, cfg.WorkersCount),
	}, nil
}

func (h *Handler) Start() error {
	if err := h.connect(); err != nil {
		return errors.Wrap(err, "failed to connect to rabbitmq")
	}
	if err := h.startConsumer(); err != nil {
		return errors.Wrap(err, "failed to start consumer")
	}
	if err := h.startProducer(); err != nil {
		return errors.Wrap(err, "failed to start producer")
	}
	for i := 0; i < h.cfg.WorkersCount; i++ {
		h.wg.Add(1)
		go h.worker()
	}
	return nil
}

func (h *Handler) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.mu.Unlock()

	close(h.tasksChan)
	h.wg.Wait()
	if h.conn != nil {
		h.conn.Close()
	}
}

func (h *Handler) isClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

func (h *Handler) connect() error {
	url := fmt.Sprintf("amqp://%s:%s@%s:%d", h.cfg.Login, h.cfg.Password, h.cfg.Host, h.cfg.Port)
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	h.conn = conn

	errChan := make(chan *amqp.Error)
	conn.NotifyClose(errChan)
	go func() {
		<-errChan
		if h.isClosed() {
			return
		}
		for {
			time.Sleep(time.Second * 15)
			if h.isClosed() {
				return
			}
			if err := h.reconnect(); err == nil {
				return
			}
		}
	}()
	return nil
}

func (h *Handler) reconnect() error {
	if err := h.connect(); err != nil {
		return err
	}
	if err := h.startConsumer(); err != nil {
		return errors.Wrap(err, "failed to restart consumer")
	}
	return h.startProducer()
}

func (h *Handler) startConsumer() error {
	channel, err := h.conn.Channel()
	if err != nil {
		return err
	}
	queue, err := channel.QueueDeclare(reqQueue, false, false, false, false, nil)
	if err != nil {
		return err
	}
	del, err := channel.Consume(queue.Name, "", true, false, false, false, nil)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.consumerChan = channel
	h.mu.Unlock()
	go h.listener(del)
	return nil
}

func (h *Handler) startProducer() error {
	channel, err := h.conn.Channel()
	if err != nil {
		return err
	}
	if _, err := channel.QueueDeclare(respQueue, false, false, false, false, nil); err != nil {
		return err
	}
	h.mu.Lock()
	h.producerChan = channel
	h.mu.Unlock()
	return nil
}

func (h *Handler) listener(deliveries <-chan amqp.Delivery) {
	for data := range deliveries {
		var task models.GradeTask
		if err := json.Unmarshal(data.Body, &task); err != nil {
			slog.Error("invalid grade task message", "message", string(data.Body))
			continue
		}
		// The closed check and the send hold the same lock, so Close cannot
		// close tasksChan between them. Workers keep draining the channel
		// until it is closed, so a send never blocks Close indefinitely.
		h.mu.Lock()
		if h.closed {
			h.mu.Unlock()
			return
		}
		h.tasksChan <- task
		h.mu.Unlock()
	}
}

func (h *Handler) worker() {
	defer h.wg.Done()

	for task := range h.tasksChan {
		ctx := context.Background()

		cases := task.TestCases
		if task.TestCasesKey != "" {
			if h.storage == nil {
				h.send(&models.GradeResult{
					ID:    task.ID,
					Error: "test case storage is not configured",
				})
				continue
			}
			fetched, err := h.storage.GetTestCases(ctx, task.TestCasesKey)
			if err != nil {
				slog.Error("failed to load test case bundle",
					"task_id", task.ID, "key", task.TestCasesKey, "error", err)
				h.send(&models.GradeResult{
					ID:    task.ID,
					Error: "failed to load test cases: " + err.Error(),
				})
				continue
			}
			cases = fetched
		}

		req := mappers.TaskToRequest(&task, cases)
		started := time.Now().UTC()
		evidence := h.engine.Execute(ctx, req)
		evidence.Stamp(started, time.Now().UTC())
		h.send(mappers.EvidenceToResult(task.ID, evidence))
	}
}

func (h *Handler) send(result *models.GradeResult) {
	// Snapshot the producer channel under the lock: reconnect may swap it
	// concurrently. Publishing on a channel that was swapped out afterwards
	// fails and is logged like any other publish error.
	h.mu.Lock()
	closed, producer := h.closed, h.producerChan
	h.mu.Unlock()
	if closed || producer == nil {
		return
	}
	body, err := json.Marshal(result)
	if err != nil {
		slog.Error("failed to marshal grade result", "task_id", result.ID, "error", err)
		return
	}
	err = producer.Publish("", respQueue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		slog.Error("failed to send result to queue", "task_id", result.ID, "error", err)
	}
}
