package repository

import (
	"context"

	"github.com/dokopoo/toilet-service/internal/domain"
)

// StreamRepository - работа с Redis Streams (очередь отложенных записей)
type StreamRepository interface {
	// PublishToStream публикует событие в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error

	// CreateConsumerGroup создаёт consumer group для стрима (идемпотентно)
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream читает сообщения из стрима через consumer group
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage подтверждает обработку сообщения
	AckMessage(ctx context.Context, stream, group, messageID string) error
}
