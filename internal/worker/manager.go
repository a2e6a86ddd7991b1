package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// shutdownTimeout - максимальное время ожидания завершения воркеров
const shutdownTimeout = 30 * time.Second

// Manager управляет жизненным циклом воркеров
type Manager struct {
	workers []Worker
	logger  *zap.Logger
	wg      sync.WaitGroup
}

// NewManager создает новый Manager
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{logger: logger}
}

// Register регистрирует воркер
func (m *Manager) Register(w Worker) {
	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Start запускает все зарегистрированные воркеры, каждый в своей горутине
func (m *Manager) Start(ctx context.Context) error {
	if len(m.workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(m.workers)))

	for _, w := range m.workers {
		m.wg.Add(1)
		go func(w Worker) {
			defer m.wg.Done()

			if err := w.Start(ctx); err != nil {
				m.logger.Error("Worker failed",
					zap.String("name", w.Name()),
					zap.Error(err))
			}
		}(w)
	}

	return nil
}

// Stop останавливает все воркеры и ждёт их завершения с timeout
func (m *Manager) Stop() error {
	m.logger.Info("Stopping workers", zap.Int("count", len(m.workers)))

	for _, w := range m.workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker",
				zap.String("name", w.Name()),
				zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped gracefully")
		return nil
	case <-time.After(shutdownTimeout):
		return fmt.Errorf("workers shutdown timed out after %v", shutdownTimeout)
	}
}
