package cachefill

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/domain"
	"github.com/dokopoo/toilet-service/internal/domain/repository"
	"github.com/dokopoo/toilet-service/internal/worker"
)

// AddressWorker дописывает в БД адресные данные, найденные через
// reverse geocoding во время поиска. Поиск отвечает пользователю сразу,
// а запись идёт отдельно через Redis Stream и не влияет на латентность.
type AddressWorker struct {
	*worker.BaseWorker
	streamRepo    repository.StreamRepository
	toiletRepo    repository.ToiletRepository
	consumerGroup string
	consumerName  string
}

// NewAddressWorker создает новый AddressWorker
func NewAddressWorker(
	streamRepo repository.StreamRepository,
	toiletRepo repository.ToiletRepository,
	consumerGroup string,
	logger *zap.Logger,
) *AddressWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &AddressWorker{
		BaseWorker:    worker.NewBaseWorker("address-cachefill", logger),
		streamRepo:    streamRepo,
		toiletRepo:    toiletRepo,
		consumerGroup: consumerGroup,
		consumerName:  consumerName,
	}
}

// Start запускает воркер
func (w *AddressWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting AddressWorker",
		zap.String("consumer_group", w.consumerGroup),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamAddressCacheFill, w.consumerGroup); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamAddressCacheFill, w.consumerGroup, w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.processMessage(ctx, msg)
		}
	}
}

// processMessage обрабатывает одно сообщение из стрима.
// Битые сообщения подтверждаются и пропускаются, чтобы не застревали в PEL.
func (w *AddressWorker) processMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.AddressCacheFillEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	if !event.HasPayload() {
		w.ack(ctx, msg.ID)
		return
	}

	if err := w.toiletRepo.UpdateCachedAddress(ctx, event.ToiletID, event.BuildingName, event.Address); err != nil {
		// Не ACK-аем: сообщение останется в PEL и будет переиграно
		logger.Error("Failed to update cached address",
			zap.Int64("toilet_id", event.ToiletID),
			zap.String("event_id", event.EventID.String()),
			zap.Error(err))
		return
	}

	logger.Debug("Cached address updated",
		zap.Int64("toilet_id", event.ToiletID),
		zap.String("event_id", event.EventID.String()))

	w.ack(ctx, msg.ID)
}

func (w *AddressWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamAddressCacheFill, w.consumerGroup, messageID); err != nil {
		w.Logger().Warn("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
