package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fulfilld/ordergraph/internal/kafka"
)

// AuditManager batches audit entries and publishes them through a producer.
// An aggregator goroutine collects entries into batches (by size or timeout)
// and a small worker pool drains the batches.
type AuditManager struct {
	workerCount int
	batchSize   int
	timeout     time.Duration
	producer    kafka.Producer
	topic       string
	logger      *zap.Logger

	inputChan  chan AuditLogEntry
	batchChan  chan []AuditLogEntry
	shutdownCh chan struct{}
	once       sync.Once

	wg sync.WaitGroup
}

func NewAuditManager(workerCount, batchSize int, timeout time.Duration, producer kafka.Producer, topic string, logger *zap.Logger) *AuditManager {
	return &AuditManager{
		workerCount: workerCount,
		batchSize:   batchSize,
		timeout:     timeout,
		producer:    producer,
		topic:       topic,
		logger:      logger,
		inputChan:   make(chan AuditLogEntry, workerCount*batchSize*2),
		batchChan:   make(chan []AuditLogEntry, workerCount*2),
		shutdownCh:  make(chan struct{}),
	}
}

func (m *AuditManager) Start(ctx context.Context) {
	m.wg.Add(1)
	go m.runAggregator(ctx)

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(ctx, i)
	}
}

func (m *AuditManager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Info("AuditManager shutdown completed")
		case <-ctx.Done():
			m.logger.Warn("AuditManager shutdown interrupted")
		}

		if err := m.producer.Close(); err != nil {
			m.logger.Error("Failed to close audit producer", zap.Error(err))
		}
	})
}

// LogEntry enqueues an entry without blocking the request path for long; if
// the pipeline is saturated or shutting down the entry is dropped with a log.
func (m *AuditManager) LogEntry(ctx context.Context, entry AuditLogEntry) {
	select {
	case m.inputChan <- entry:
	case <-m.shutdownCh:
		m.logger.Warn("Audit entry dropped during shutdown", zap.String("request_id", entry.RequestID))
	case <-ctx.Done():
		m.logger.Warn("Audit entry dropped, request context cancelled", zap.String("request_id", entry.RequestID))
	}
}

func (m *AuditManager) runAggregator(ctx context.Context) {
	defer m.wg.Done()

	var (
		batch    []AuditLogEntry
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		if len(batch) > 0 {
			m.dispatchBatch(batch)
		}
		close(m.batchChan)
	}()

	for {
		select {
		case entry := <-m.inputChan:
			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				m.dispatchBatch(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				timer = time.NewTimer(m.timeout)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatchBatch(batch)
			batch = nil
			timeoutC = nil

		case <-ctx.Done():
			return

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *AuditManager) dispatchBatch(batch []AuditLogEntry) {
	batchCopy := make([]AuditLogEntry, len(batch))
	copy(batchCopy, batch)

	select {
	case m.batchChan <- batchCopy:
	default:
		// workers saturated, publish inline rather than dropping
		m.publishBatch(context.Background(), batchCopy)
	}
}

func (m *AuditManager) runWorker(ctx context.Context, id int) {
	defer m.wg.Done()

	for {
		select {
		case batch, ok := <-m.batchChan:
			if !ok {
				return
			}
			m.publishBatch(ctx, batch)
		case <-ctx.Done():
			// drain whatever is already queued before exiting
			for {
				select {
				case batch, ok := <-m.batchChan:
					if !ok {
						return
					}
					m.publishBatch(context.Background(), batch)
				default:
					return
				}
			}
		}
	}
}

func (m *AuditManager) publishBatch(ctx context.Context, batch []AuditLogEntry) {
	for _, entry := range batch {
		payload, err := json.Marshal(entry)
		if err != nil {
			m.logger.Error("Failed to marshal audit entry", zap.Error(err))
			continue
		}

		if err := m.producer.SendMessage(ctx, m.topic, []byte(entry.RequestID), payload); err != nil {
			m.logger.Error("Failed to publish audit entry",
				zap.String("request_id", entry.RequestID),
				zap.Error(err))
		}
	}
}
