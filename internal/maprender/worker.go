package maprender

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/dongmunseodap/internal/config"
	"github.com/shenikar/dongmunseodap/internal/observability"
	"github.com/sirupsen/logrus"
)

// SignatureHeader - заголовок с HMAC-SHA256 подписью тела запроса
const SignatureHeader = "X-Map-Signature"

// popTimeout ограничивает BRPOP, чтобы цикл замечал отмену контекста
const popTimeout = time.Second

// Worker забирает команды из очереди и доставляет их виджету карты
type Worker struct {
	queue      Queue
	logger     *logrus.Logger
	cfg        *config.Config
	httpClient *http.Client
	clock      clockwork.Clock
	metrics    *observability.Metrics

	stop context.CancelFunc
	done chan struct{}
}

func NewWorker(queue Queue, logger *logrus.Logger, cfg *config.Config, clock clockwork.Clock, metrics *observability.Metrics) *Worker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Worker{
		queue:  queue,
		logger: logger,
		cfg:    cfg,
		httpClient: &http.Client{
			Timeout: cfg.MapWidgetTimeout,
		},
		clock:   clock,
		metrics: metrics,
	}
}

// Start запускает Run в отдельной горутине. Остановка - через Shutdown
func (w *Worker) Start(ctx context.Context) {
	runCtx, stop := context.WithCancel(ctx)
	w.stop = stop
	w.done = make(chan struct{})
	go func() {
		defer close(w.done)
		w.Run(runCtx)
	}()
}

// Shutdown останавливает цикл Run и доставляет команды, оставшиеся в очереди.
// Возвращает число доставленных при дренаже команд
func (w *Worker) Shutdown(ctx context.Context) int {
	if w.stop != nil {
		w.stop()
		select {
		case <-w.done:
		case <-ctx.Done():
			return 0
		}
	}
	return w.Drain(ctx)
}

// Drain синхронно доставляет все команды из очереди, не блокируясь на пустой
func (w *Worker) Drain(ctx context.Context) int {
	delivered := 0
	for ctx.Err() == nil {
		payload, err := w.queue.RPop(ctx, QueueKey).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				w.logger.WithError(err).Error("Failed to drain map commands from Redis")
			}
			return delivered
		}
		if w.handle(ctx, payload) {
			delivered++
		}
	}
	return delivered
}

// Run обрабатывает очередь до отмены контекста
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Starting map render worker...")
	// Начатая доставка не прерывается остановкой цикла
	deliverCtx := context.WithoutCancel(ctx)
	for {
		if ctx.Err() != nil {
			w.logger.Info("Stopping map render worker.")
			return
		}

		result, err := w.queue.BRPop(ctx, popTimeout, QueueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			w.logger.WithError(err).Error("Failed to pop map command from Redis")
			w.wait(ctx, w.cfg.MapWidgetBaseDelay) // Ждем перед повторной попыткой
			continue
		}

		// result[0] - ключ, result[1] - значение
		w.handle(deliverCtx, result[1])
	}
}

// handle разбирает и доставляет одну команду. false - команда потеряна
func (w *Worker) handle(ctx context.Context, payload string) bool {
	var cmd Command
	if err := json.Unmarshal([]byte(payload), &cmd); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal map command from Redis")
		return false
	}

	if err := w.Deliver(ctx, cmd.Type, payload); err != nil {
		w.logger.WithError(err).WithField("command", cmd.Type).Error("Map command dropped")
		return false
	}
	return true
}

// Deliver отправляет команду виджету с повторами и экспоненциальной задержкой
func (w *Worker) Deliver(ctx context.Context, commandType, rawPayload string) error {
	log := w.logger.WithFields(logrus.Fields{
		"component": "map_render_worker",
		"command":   commandType,
	})

	if w.cfg.MapWidgetURL == "" {
		log.Warn("Map widget URL is not configured. Skipping command delivery.")
		return nil
	}

	maxRetries := w.cfg.MapWidgetMaxRetries
	delay := w.cfg.MapWidgetBaseDelay
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			log.WithError(lastErr).Warnf("Retrying map command in %v. Retries left: %d", delay, maxRetries-attempt)
			if !w.wait(ctx, delay) {
				return ctx.Err()
			}
			delay *= 2 // Экспоненциальная задержка
		}

		lastErr = w.send(ctx, rawPayload)
		if lastErr == nil {
			w.metrics.MapCommands.WithLabelValues(commandType, "delivered").Inc()
			log.Debug("Map command delivered")
			return nil
		}
	}

	w.metrics.MapCommands.WithLabelValues(commandType, "failed").Inc()
	return fmt.Errorf("failed to deliver map command after %d attempts: %w", maxRetries, lastErr)
}

func (w *Worker) send(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.MapWidgetURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Подпись добавляется, только если задан MAP_WIDGET_SECRET
	if w.cfg.MapWidgetSecret != "" {
		req.Header.Set(SignatureHeader, Sign(rawPayload, w.cfg.MapWidgetSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send command: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("map widget responded with status %d", resp.StatusCode)
	}
	return nil
}

// wait ждет d или отмены контекста. false - контекст отменен
func (w *Worker) wait(ctx context.Context, d time.Duration) bool {
	select {
	case <-w.clock.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}

// Sign возвращает HMAC-SHA256 подпись данных в hex
func Sign(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
