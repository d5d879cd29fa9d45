package maprender

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/dongmunseodap/internal/config"
	"github.com/shenikar/dongmunseodap/internal/models"
	"github.com/shenikar/dongmunseodap/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQueue - очередь в памяти с семантикой LPUSH/BRPOP
type fakeQueue struct {
	items   chan string
	pushErr error
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{items: make(chan string, 100)}
}

func (q *fakeQueue) LPush(_ context.Context, _ string, values ...interface{}) *redis.IntCmd {
	if q.pushErr != nil {
		return redis.NewIntResult(0, q.pushErr)
	}
	for _, v := range values {
		q.items <- string(v.([]byte))
	}
	return redis.NewIntResult(int64(len(q.items)), nil)
}

func (q *fakeQueue) BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd {
	select {
	case item := <-q.items:
		return redis.NewStringSliceResult([]string{keys[0], item}, nil)
	case <-ctx.Done():
		return redis.NewStringSliceResult(nil, ctx.Err())
	case <-time.After(timeout):
		return redis.NewStringSliceResult(nil, redis.Nil)
	}
}

func (q *fakeQueue) RPop(_ context.Context, _ string) *redis.StringCmd {
	select {
	case item := <-q.items:
		return redis.NewStringResult(item, nil)
	default:
		return redis.NewStringResult("", redis.Nil)
	}
}

func (q *fakeQueue) pop(t *testing.T) Command {
	t.Helper()
	select {
	case raw := <-q.items:
		var cmd Command
		require.NoError(t, json.Unmarshal([]byte(raw), &cmd))
		return cmd
	default:
		t.Fatal("queue is empty")
		return Command{}
	}
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func testConfig(url string) *config.Config {
	return &config.Config{
		MapWidgetURL:        url,
		MapWidgetSecret:     "secret",
		MapWidgetTimeout:    time.Second,
		MapWidgetMaxRetries: 3,
		MapWidgetBaseDelay:  time.Millisecond,
	}
}

func TestRedisRenderer_PublishesCommands(t *testing.T) {
	queue := newFakeQueue()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC))
	metrics := observability.NewMetricsForTesting()
	r := NewRedisRenderer(queue, clock, metrics)
	ctx := context.Background()
	center := models.LatLng{Lat: 37.5665, Lng: 126.9780}

	require.NoError(t, r.SetCenter(ctx, center))
	require.NoError(t, r.SetZoom(ctx, 16))
	require.NoError(t, r.FitBounds(ctx, []models.LatLng{center}))
	require.NoError(t, r.SetMarkers(ctx, nil))
	require.NoError(t, r.Destroy(ctx))

	cmd := queue.pop(t)
	assert.Equal(t, CommandSetCenter, cmd.Type)
	require.NotNil(t, cmd.Center)
	assert.Equal(t, center, *cmd.Center)
	assert.Equal(t, clock.Now(), cmd.IssuedAt)

	cmd = queue.pop(t)
	assert.Equal(t, CommandSetZoom, cmd.Type)
	require.NotNil(t, cmd.Zoom)
	assert.Equal(t, 16, *cmd.Zoom)

	assert.Equal(t, CommandFitBounds, queue.pop(t).Type)
	assert.Equal(t, CommandSetMarkers, queue.pop(t).Type)
	assert.Equal(t, CommandDestroy, queue.pop(t).Type)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.MapCommands.WithLabelValues(CommandSetZoom, "queued")))
}

func TestRedisRenderer_EmptyMarkersClearMap(t *testing.T) {
	queue := newFakeQueue()
	r := NewRedisRenderer(queue, nil, observability.NewMetricsForTesting())
	ctx := context.Background()

	require.NoError(t, r.SetMarkers(ctx, []models.MapMarker{}))
	require.NoError(t, r.SetMarkers(ctx, nil))
	require.NoError(t, r.SetZoom(ctx, 12))

	// Пустой список должен дойти до виджета явно
	assert.Contains(t, <-queue.items, `"markers":[]`)
	assert.Contains(t, <-queue.items, `"markers":[]`)
	assert.NotContains(t, <-queue.items, `"markers"`)
}

func TestRedisRenderer_PushError(t *testing.T) {
	queue := newFakeQueue()
	queue.pushErr = errors.New("connection refused")
	metrics := observability.NewMetricsForTesting()
	r := NewRedisRenderer(queue, nil, metrics)

	err := r.SetZoom(context.Background(), 12)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.MapCommands.WithLabelValues(CommandSetZoom, "failed")))
}

func TestWorker_Deliver_SignsPayload(t *testing.T) {
	payload := `{"type":"set_zoom","zoom":15}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, payload, string(body))
		assert.Equal(t, Sign(payload, "secret"), r.Header.Get(SignatureHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	metrics := observability.NewMetricsForTesting()
	w := NewWorker(newFakeQueue(), testLogger(), testConfig(srv.URL), nil, metrics)

	require.NoError(t, w.Deliver(context.Background(), CommandSetZoom, payload))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.MapCommands.WithLabelValues(CommandSetZoom, "delivered")))
}

func TestWorker_Deliver_RetriesThenSucceeds(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := NewWorker(newFakeQueue(), testLogger(), testConfig(srv.URL), nil, observability.NewMetricsForTesting())

	require.NoError(t, w.Deliver(context.Background(), CommandDestroy, `{"type":"destroy"}`))
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, calls)
}

func TestWorker_Deliver_GivesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	metrics := observability.NewMetricsForTesting()
	w := NewWorker(newFakeQueue(), testLogger(), testConfig(srv.URL), nil, metrics)

	err := w.Deliver(context.Background(), CommandSetCenter, `{}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.MapCommands.WithLabelValues(CommandSetCenter, "failed")))
}

func TestWorker_Deliver_NoURL(t *testing.T) {
	w := NewWorker(newFakeQueue(), testLogger(), testConfig(""), nil, observability.NewMetricsForTesting())
	assert.NoError(t, w.Deliver(context.Background(), CommandDestroy, `{}`))
}

func TestWorker_RunDeliversInOrder(t *testing.T) {
	var mu sync.Mutex
	var received []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cmd Command
		_ = json.NewDecoder(r.Body).Decode(&cmd)
		mu.Lock()
		received = append(received, cmd.Type)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	queue := newFakeQueue()
	metrics := observability.NewMetricsForTesting()
	renderer := NewRedisRenderer(queue, nil, metrics)
	worker := NewWorker(queue, testLogger(), testConfig(srv.URL), nil, metrics)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()

	require.NoError(t, renderer.SetZoom(ctx, 14))
	require.NoError(t, renderer.SetMarkers(ctx, []models.MapMarker{}))
	require.NoError(t, renderer.Destroy(ctx))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 3
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{CommandSetZoom, CommandSetMarkers, CommandDestroy}, received)
}

func TestWorker_ShutdownDeliversPendingDestroy(t *testing.T) {
	var mu sync.Mutex
	var received []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cmd Command
		_ = json.NewDecoder(r.Body).Decode(&cmd)
		mu.Lock()
		received = append(received, cmd.Type)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	queue := newFakeQueue()
	metrics := observability.NewMetricsForTesting()
	renderer := NewRedisRenderer(queue, nil, metrics)
	worker := NewWorker(queue, testLogger(), testConfig(srv.URL), nil, metrics)

	// Подготовка: цикл уже запущен, destroy ставится прямо перед остановкой
	worker.Start(context.Background())
	require.NoError(t, renderer.Destroy(context.Background()))

	// Действие
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	worker.Shutdown(ctx)

	// Проверки: destroy доставлен либо циклом, либо дренажем
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{CommandDestroy}, received)
	assert.Empty(t, queue.items)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.MapCommands.WithLabelValues(CommandDestroy, "delivered")))
}

func TestWorker_DrainWithoutStart(t *testing.T) {
	var mu sync.Mutex
	var received []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cmd Command
		_ = json.NewDecoder(r.Body).Decode(&cmd)
		mu.Lock()
		received = append(received, cmd.Type)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	queue := newFakeQueue()
	metrics := observability.NewMetricsForTesting()
	renderer := NewRedisRenderer(queue, nil, metrics)
	worker := NewWorker(queue, testLogger(), testConfig(srv.URL), nil, metrics)
	ctx := context.Background()

	require.NoError(t, renderer.SetMarkers(ctx, nil))
	require.NoError(t, renderer.Destroy(ctx))
	queue.items <- "not json"

	assert.Equal(t, 2, worker.Shutdown(ctx))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{CommandSetMarkers, CommandDestroy}, received)
}
