package storage

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/dongmunseodap/internal/models"
	"github.com/shenikar/dongmunseodap/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingBackend отдает ошибку на каждую операцию
type failingBackend struct{}

func (failingBackend) GetItem(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}

func (failingBackend) SetItem(context.Context, string, string) error {
	return errors.New("quota exceeded")
}

func (failingBackend) RemoveItem(context.Context, string) error {
	return errors.New("storage unavailable")
}

func newTestStore(t *testing.T, backend Backend) (*Store, *observability.Metrics) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	metrics := observability.NewMetricsForTesting()
	return New(backend, "", logger, metrics), metrics
}

func sampleReport(id string) models.Report {
	return models.Report{
		ID:           id,
		Type:         models.ReportTypeDriver,
		Location:     models.Location{Lat: 37.5665, Lng: 126.9780, Address: "서울시청"},
		Description:  "정체가 발생했습니다. (운전자 제보)",
		TrafficLevel: 4,
		CreatedAt:    time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
		UserID:       "current-user",
	}
}

func TestReports_All_EmptySlot(t *testing.T) {
	store, _ := newTestStore(t, NewMemoryBackend())

	reports := store.Reports().All(context.Background())
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}

func TestReports_All_CorruptSlot(t *testing.T) {
	backend := NewMemoryBackend()
	store, metrics := newTestStore(t, backend)
	ctx := context.Background()
	require.NoError(t, backend.SetItem(ctx, SlotReports, "{not json"))

	reports := store.Reports().All(ctx)
	assert.Empty(t, reports)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StorageReadFallbacks.WithLabelValues(SlotReports, "corrupt")))
}

func TestReports_All_BackendError(t *testing.T) {
	store, metrics := newTestStore(t, failingBackend{})

	reports := store.Reports().All(context.Background())
	assert.Empty(t, reports)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StorageReadFallbacks.WithLabelValues(SlotReports, "error")))
}

func TestReports_All_NullSlot(t *testing.T) {
	backend := NewMemoryBackend()
	store, _ := newTestStore(t, backend)
	ctx := context.Background()
	require.NoError(t, backend.SetItem(ctx, SlotReports, "null"))

	reports := store.Reports().All(ctx)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}

func TestReports_AddPrepends(t *testing.T) {
	store, _ := newTestStore(t, NewMemoryBackend())
	ctx := context.Background()
	reports := store.Reports()

	require.NoError(t, reports.Add(ctx, sampleReport("report-1")))
	require.NoError(t, reports.Add(ctx, sampleReport("report-2")))

	all := reports.All(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "report-2", all[0].ID)
	assert.Equal(t, "report-1", all[1].ID)
	assert.Equal(t, sampleReport("report-1"), all[1])
}

func TestReports_Remove(t *testing.T) {
	store, _ := newTestStore(t, NewMemoryBackend())
	ctx := context.Background()
	reports := store.Reports()
	require.NoError(t, reports.Save(ctx, []models.Report{sampleReport("a"), sampleReport("b")}))

	removed, err := reports.Remove(ctx, "a")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = reports.Remove(ctx, "a")
	require.NoError(t, err)
	assert.False(t, removed)

	all := reports.All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].ID)
}

func TestReports_SaveFailure(t *testing.T) {
	store, metrics := newTestStore(t, failingBackend{})

	err := store.Reports().Save(context.Background(), []models.Report{sampleReport("a")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StorageWriteFailures.WithLabelValues(SlotReports)))
}

func TestUserReports_AddRemove(t *testing.T) {
	store, _ := newTestStore(t, NewMemoryBackend())
	ctx := context.Background()
	index := store.UserReports()

	require.NoError(t, index.Add(ctx, "a"))
	require.NoError(t, index.Add(ctx, "b"))
	require.NoError(t, index.Add(ctx, "a")) // повтор не дублирует
	assert.Equal(t, []string{"b", "a"}, index.All(ctx))

	require.NoError(t, index.Remove(ctx, "b"))
	assert.Equal(t, []string{"a"}, index.All(ctx))
}

func TestSettings_GetSet(t *testing.T) {
	store, _ := newTestStore(t, NewMemoryBackend())
	ctx := context.Background()
	settings := store.Settings()

	assert.Equal(t, "fallback", settings.Get(ctx, "missing", "fallback"))

	require.NoError(t, settings.Set(ctx, "notifications", true))
	require.NoError(t, settings.Set(ctx, "radiusKm", 3))

	assert.Equal(t, true, settings.Get(ctx, "notifications", false))
	assert.Equal(t, true, GetSetting(ctx, settings, "notifications", false))
	assert.Equal(t, 3, GetSetting(ctx, settings, "radiusKm", 5))
	// несовпадение типа возвращает значение по умолчанию
	assert.Equal(t, "x", GetSetting(ctx, settings, "radiusKm", "x"))
}

func TestSettings_CorruptSlot(t *testing.T) {
	backend := NewMemoryBackend()
	store, _ := newTestStore(t, backend)
	ctx := context.Background()
	require.NoError(t, backend.SetItem(ctx, SlotSettings, "[1,2"))

	assert.Equal(t, 7, GetSetting(ctx, store.Settings(), "anything", 7))
}

func TestStore_Namespace(t *testing.T) {
	backend := NewMemoryBackend()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	store := New(backend, "dongmunseodap:", logger, observability.NewMetricsForTesting())
	ctx := context.Background()

	require.NoError(t, store.UserReports().Add(ctx, "a"))

	raw, ok, err := backend.GetItem(ctx, "dongmunseodap:userReports")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["a"]`, raw)
}
