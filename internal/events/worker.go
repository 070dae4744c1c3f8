package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Invalidator сбрасывает кеш измененной локации.
type Invalidator interface {
	InvalidateLocation(ctx context.Context, id int64) error
}

// Worker читает очередь событий изменения локаций и инвалидирует кеш,
// чтобы детали и набор карты обновлялись сразу после записи, а не по TTL.
type Worker struct {
	redisClient *redis.Client
	invalidator Invalidator
	logger      *logrus.Logger
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, invalidator Invalidator, logger *logrus.Logger) *Worker {
	return &Worker{
		redisClient: redisClient,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Start запускает горутину обработки очереди событий
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting location events worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping location events worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка.
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, locationEventsQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop change event from Redis")
					time.Sleep(time.Second)
					continue
				}

				// result[0] - ключ, result[1] - значение
				w.handleEvent(ctx, result[1])
			}
		}
	}()
}

// handleEvent разбирает событие и сбрасывает кеш локации.
// Нечитаемое событие логируется и пропускается.
func (w *Worker) handleEvent(ctx context.Context, payload string) {
	var event ChangeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal change event")
		return
	}

	log := w.logger.WithFields(logrus.Fields{
		"event_id":    event.EventID,
		"location_id": event.LocationID,
		"action":      event.Action,
	})

	if event.LocationID <= 0 {
		log.Warn("Change event without location id, skipping")
		return
	}

	if err := w.invalidator.InvalidateLocation(ctx, event.LocationID); err != nil {
		log.WithError(err).Error("Failed to invalidate cache for changed location")
		return
	}

	log.Debug("Cache invalidated for changed location")
}
