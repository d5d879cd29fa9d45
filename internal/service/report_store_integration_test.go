package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/dongmunseodap/internal/models"
	"github.com/shenikar/dongmunseodap/internal/observability"
	"github.com/shenikar/dongmunseodap/internal/repository"
	"github.com/shenikar/dongmunseodap/internal/service"
	"github.com/shenikar/dongmunseodap/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Полный путь: ReportStore -> ReportRepository -> Store -> MemoryBackend, карта - наблюдатель
func TestReportStore_TransitReportEndToEnd(t *testing.T) {
	ctx := context.Background()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	metrics := observability.NewMetricsForTesting()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 14, 8, 30, 0, 0, time.UTC))

	store := storage.New(storage.NewMemoryBackend(), "", logger, metrics)
	repo := repository.NewReportRepository(store, clock, "current-user")
	mapStore := service.NewMapStore(logger)
	reportStore := service.NewReportStore(repo, logger, metrics, service.ReportStoreOptions{
		Clock:    clock,
		Observer: mapStore,
	})

	report, err := reportStore.CreateReport(ctx, models.CreateReportRequest{
		Type:         models.ReportTypeTransit,
		Location:     models.Location{Lat: 37.5665, Lng: 126.9780},
		Description:  "",
		TrafficLevel: 4,
		BusRoute:     "147",
	})
	require.NoError(t, err)

	assert.Equal(t, "대중교통 이용에 지연이 있습니다. (대중교통 제보)", report.Description)
	assert.Equal(t, "147", report.BusRoute)
	assert.Equal(t, "current-user", report.UserID)
	assert.Equal(t, clock.Now(), report.CreatedAt)
	assert.Regexp(t, `^report-\d+-[0-9a-z]{9}$`, report.ID)

	// Отчет сохранен и проиндексирован
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, *report, all[0])

	ids, err := repo.GetUserReportIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{report.ID}, ids)

	// Состояние хранилища и карты
	state := reportStore.Snapshot()
	require.NotNil(t, state.LastSubmittedReport)
	assert.Equal(t, report.ID, state.LastSubmittedReport.ID)

	markers := mapStore.Markers()
	require.Len(t, markers, 1)
	assert.Equal(t, "report-"+report.ID, markers[0].ID)

	// Новое хранилище поверх того же backend видит отчет после загрузки
	fresh := service.NewReportStore(repo, logger, metrics, service.ReportStoreOptions{Clock: clock})
	require.NoError(t, fresh.LoadReports(ctx))
	require.NoError(t, fresh.LoadUserReports(ctx))
	assert.Len(t, fresh.Snapshot().AllReports, 1)
	assert.Len(t, fresh.Snapshot().UserReports, 1)

	removed, err := reportStore.DeleteReport(ctx, report.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, mapStore.Markers())

	_, err = repo.GetByID(ctx, report.ID)
	assert.ErrorIs(t, err, service.ErrReportNotFound)
}
