package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	locationEventsQueueKey = "location_events"

	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ChangeEvent — событие изменения локации. Публикуется процессами
// управления данными (сидер, админ-инструменты); воркер по нему
// сбрасывает кеш.
type ChangeEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	LocationID int64     `json:"location_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ChangePublisher - интерфейс для публикации событий изменения локаций
type ChangePublisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
}

// RedisChangePublisher - реализация ChangePublisher, использующая Redis
type RedisChangePublisher struct {
	redisClient *redis.Client
}

// NewRedisChangePublisher создает новый RedisChangePublisher
func NewRedisChangePublisher(client *redis.Client) *RedisChangePublisher {
	return &RedisChangePublisher{
		redisClient: client,
	}
}

// Publish публикует событие изменения в очередь Redis
func (p *RedisChangePublisher) Publish(ctx context.Context, event ChangeEvent) error {
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, locationEventsQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish change event to Redis: %w", err)
	}
	return nil
}
