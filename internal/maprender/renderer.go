package maprender

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/dongmunseodap/internal/models"
	"github.com/shenikar/dongmunseodap/internal/observability"
)

// QueueKey - список Redis, в который складываются команды виджету карты
const QueueKey = "map_render_commands"

// Типы команд
const (
	CommandSetCenter  = "set_center"
	CommandSetZoom    = "set_zoom"
	CommandFitBounds  = "fit_bounds"
	CommandSetMarkers = "set_markers"
	CommandDestroy    = "destroy"
)

// Command - одна команда виджету карты. Markers задан только у set_markers,
// и пустой список в нем очищает карту
type Command struct {
	Type     string              `json:"type"`
	Center   *models.LatLng      `json:"center,omitempty"`
	Zoom     *int                `json:"zoom,omitempty"`
	Points   []models.LatLng     `json:"points,omitempty"`
	Markers  *[]models.MapMarker `json:"markers,omitempty"`
	IssuedAt time.Time           `json:"issued_at"`
}

// Queue - часть клиента Redis, которая нужна очереди команд
type Queue interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
	RPop(ctx context.Context, key string) *redis.StringCmd
}

// RedisRenderer реализует service.MapRenderer: команды кладутся в очередь Redis,
// доставкой занимается Worker. Успешный вызов означает только постановку в очередь
type RedisRenderer struct {
	queue   Queue
	clock   clockwork.Clock
	metrics *observability.Metrics
}

func NewRedisRenderer(queue Queue, clock clockwork.Clock, metrics *observability.Metrics) *RedisRenderer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &RedisRenderer{
		queue:   queue,
		clock:   clock,
		metrics: metrics,
	}
}

func (r *RedisRenderer) SetCenter(ctx context.Context, center models.LatLng) error {
	return r.publish(ctx, Command{Type: CommandSetCenter, Center: &center})
}

func (r *RedisRenderer) SetZoom(ctx context.Context, zoom int) error {
	return r.publish(ctx, Command{Type: CommandSetZoom, Zoom: &zoom})
}

func (r *RedisRenderer) FitBounds(ctx context.Context, points []models.LatLng) error {
	return r.publish(ctx, Command{Type: CommandFitBounds, Points: points})
}

// SetMarkers заменяет все маркеры на карте. Пустой список очищает карту
func (r *RedisRenderer) SetMarkers(ctx context.Context, markers []models.MapMarker) error {
	if markers == nil {
		markers = []models.MapMarker{}
	}
	return r.publish(ctx, Command{Type: CommandSetMarkers, Markers: &markers})
}

func (r *RedisRenderer) Destroy(ctx context.Context) error {
	return r.publish(ctx, Command{Type: CommandDestroy})
}

func (r *RedisRenderer) publish(ctx context.Context, cmd Command) error {
	cmd.IssuedAt = r.clock.Now().UTC()
	payload, err := json.Marshal(cmd)
	if err != nil {
		r.metrics.MapCommands.WithLabelValues(cmd.Type, "failed").Inc()
		return fmt.Errorf("failed to marshal map command: %w", err)
	}

	// LPUSH слева, Worker забирает справа: порядок команд сохраняется
	if err := r.queue.LPush(ctx, QueueKey, payload).Err(); err != nil {
		r.metrics.MapCommands.WithLabelValues(cmd.Type, "failed").Inc()
		return fmt.Errorf("failed to publish map command to Redis: %w", err)
	}
	r.metrics.MapCommands.WithLabelValues(cmd.Type, "queued").Inc()
	return nil
}
