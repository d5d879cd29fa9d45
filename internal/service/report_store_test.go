package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/dongmunseodap/internal/models"
	"github.com/shenikar/dongmunseodap/internal/observability"
	"github.com/shenikar/dongmunseodap/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestReportStore - хранилище с моком репозитория и отключенными логами
func newTestReportStore(t *testing.T, opts ReportStoreOptions) (*ReportStore, *mocks.MockReportRepository, *observability.Metrics) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockReportRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	metrics := observability.NewMetricsForTesting()

	return NewReportStore(repoMock, logger, metrics, opts), repoMock, metrics
}

func testReport(id string, rt models.ReportType, level int) models.Report {
	return models.Report{
		ID:           id,
		Type:         rt,
		Location:     models.Location{Lat: 37.5665, Lng: 126.9780},
		Description:  "정체가 발생했습니다. (운전자 제보)",
		TrafficLevel: level,
		CreatedAt:    time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
		UserID:       "current-user",
	}
}

func TestLoadReports_Success(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	observerMock := mocks.NewMockReportObserver(ctrl)
	store, repoMock, _ := newTestReportStore(t, ReportStoreOptions{Observer: observerMock})
	ctx := context.Background()
	reports := []models.Report{testReport("r1", models.ReportTypeDriver, 3), testReport("r2", models.ReportTypePost, 2)}

	// Ожидания
	repoMock.EXPECT().GetAll(ctx).Return(reports, nil).Times(1)
	observerMock.EXPECT().SetReports(ctx, reports).Times(1)

	// Действие
	err := store.LoadReports(ctx)

	// Проверки
	require.NoError(t, err)
	state := store.Snapshot()
	assert.Equal(t, reports, state.AllReports)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Error)
}

func TestLoadReports_ErrorKeepsPreviousList(t *testing.T) {
	store, repoMock, _ := newTestReportStore(t, ReportStoreOptions{})
	ctx := context.Background()
	previous := []models.Report{testReport("r1", models.ReportTypeDriver, 3)}

	repoMock.EXPECT().GetAll(ctx).Return(previous, nil).Times(1)
	require.NoError(t, store.LoadReports(ctx))

	repoMock.EXPECT().GetAll(ctx).Return(nil, errors.New("storage unavailable")).Times(1)
	err := store.LoadReports(ctx)

	require.Error(t, err)
	state := store.Snapshot()
	assert.Equal(t, previous, state.AllReports)
	assert.Equal(t, "storage unavailable", state.Error)
	assert.False(t, state.IsLoading)

	store.ClearError()
	assert.Empty(t, store.Snapshot().Error)
}

func TestLoadUserReports_IntersectsIndex(t *testing.T) {
	store, repoMock, _ := newTestReportStore(t, ReportStoreOptions{})
	ctx := context.Background()
	all := []models.Report{
		testReport("r3", models.ReportTypeDriver, 1),
		testReport("r2", models.ReportTypeTransit, 2),
		testReport("r1", models.ReportTypePost, 3),
	}

	// r9 удален на другом устройстве, его нет в коллекции
	repoMock.EXPECT().GetUserReportIDs(ctx).Return([]string{"r1", "r9", "r3"}, nil).Times(1)
	repoMock.EXPECT().GetAll(ctx).Return(all, nil).Times(1)

	require.NoError(t, store.LoadUserReports(ctx))

	userReports := store.Snapshot().UserReports
	require.Len(t, userReports, 2)
	assert.Equal(t, "r3", userReports[0].ID)
	assert.Equal(t, "r1", userReports[1].ID)
}

func TestCreateReport_Success(t *testing.T) {
	// Подготовка
	store, repoMock, metrics := newTestReportStore(t, ReportStoreOptions{})
	ctx := context.Background()
	existing := testReport("old", models.ReportTypeDriver, 2)

	repoMock.EXPECT().GetAll(ctx).Return([]models.Report{existing}, nil).Times(1)
	require.NoError(t, store.LoadReports(ctx))

	level := 4
	store.SetDraft(models.Draft{TrafficLevel: &level})

	req := models.CreateReportRequest{
		Type:         models.ReportTypeDriver,
		Location:     models.Location{Lat: 37.5510, Lng: 126.9882},
		Description:  "강남역 앞 정체",
		TrafficLevel: 4,
	}
	created := testReport("new", models.ReportTypeDriver, 4)
	created.Description = "강남역 앞 정체. (운전자 제보)"

	// Ожидания: в репозиторий уходит уже отформатированное описание
	repoMock.EXPECT().
		Add(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.CreateReportRequest) (*models.Report, error) {
			assert.Equal(t, "강남역 앞 정체. (운전자 제보)", got.Description)
			assert.Equal(t, req.Location, got.Location)
			return &created, nil
		}).
		Times(1)

	// Действие
	report, err := store.CreateReport(ctx, req)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, &created, report)

	state := store.Snapshot()
	require.Len(t, state.AllReports, 2)
	assert.Equal(t, "new", state.AllReports[0].ID)
	assert.Equal(t, "old", state.AllReports[1].ID)
	require.Len(t, state.UserReports, 1)
	assert.Equal(t, "new", state.UserReports[0].ID)
	assert.Equal(t, &created, state.LastSubmittedReport)
	assert.Nil(t, state.CurrentDraft)
	assert.False(t, state.IsLoading)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ReportsCreated.WithLabelValues("driver")))
}

func TestCreateReport_RepositoryError(t *testing.T) {
	store, repoMock, metrics := newTestReportStore(t, ReportStoreOptions{})
	ctx := context.Background()
	level := 3
	store.SetDraft(models.Draft{TrafficLevel: &level})

	repoMock.EXPECT().Add(ctx, gomock.Any()).Return(nil, errors.New("quota exceeded")).Times(1)

	report, err := store.CreateReport(ctx, models.CreateReportRequest{Type: models.ReportTypePost, TrafficLevel: 3})

	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "quota exceeded")

	state := store.Snapshot()
	assert.Empty(t, state.AllReports)
	assert.Nil(t, state.LastSubmittedReport)
	assert.NotNil(t, state.CurrentDraft, "черновик сохраняется при ошибке")
	assert.Equal(t, "quota exceeded", state.Error)
	assert.False(t, state.IsLoading)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.ReportsCreated.WithLabelValues("post")))
}

func TestCreateReport_SimulatedDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store, repoMock, _ := newTestReportStore(t, ReportStoreOptions{Clock: clock, SimulatedDelay: time.Second})
	ctx := context.Background()
	created := testReport("r1", models.ReportTypeDriver, 2)

	repoMock.EXPECT().Add(ctx, gomock.Any()).Return(&created, nil).Times(1)

	done := make(chan error, 1)
	go func() {
		_, err := store.CreateReport(ctx, models.CreateReportRequest{Type: models.ReportTypeDriver, TrafficLevel: 2})
		done <- err
	}()

	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))
	assert.True(t, store.Snapshot().IsLoading)

	clock.Advance(time.Second)
	require.NoError(t, <-done)
	assert.False(t, store.Snapshot().IsLoading)
	assert.Len(t, store.Snapshot().AllReports, 1)
}

func TestCreateReport_CancelledDuringDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store, _, _ := newTestReportStore(t, ReportStoreOptions{Clock: clock, SimulatedDelay: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.CreateReport(ctx, models.CreateReportRequest{Type: models.ReportTypeDriver, TrafficLevel: 2})

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, store.Snapshot().IsLoading)
	assert.NotEmpty(t, store.Snapshot().Error)
}

func TestDeleteReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	observerMock := mocks.NewMockReportObserver(ctrl)
	store, repoMock, metrics := newTestReportStore(t, ReportStoreOptions{Observer: observerMock})
	ctx := context.Background()
	reports := []models.Report{testReport("r1", models.ReportTypeDriver, 3), testReport("r2", models.ReportTypeDriver, 3)}

	repoMock.EXPECT().GetAll(ctx).Return(reports, nil).Times(1)
	observerMock.EXPECT().SetReports(ctx, gomock.Any()).Times(1)
	require.NoError(t, store.LoadReports(ctx))

	t.Run("removes existing report", func(t *testing.T) {
		repoMock.EXPECT().Remove(ctx, "r1").Return(true, nil).Times(1)
		observerMock.EXPECT().RemoveReport(ctx, "r1").Times(1)

		removed, err := store.DeleteReport(ctx, "r1")

		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, []string{"r2"}, ids(store.Snapshot().AllReports))
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ReportsDeleted))
	})

	t.Run("unknown id keeps state", func(t *testing.T) {
		repoMock.EXPECT().Remove(ctx, "missing").Return(false, nil).Times(1)

		removed, err := store.DeleteReport(ctx, "missing")

		require.NoError(t, err)
		assert.False(t, removed)
		state := store.Snapshot()
		assert.Equal(t, []string{"r2"}, ids(state.AllReports))
		assert.False(t, state.IsLoading)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ReportsDeleted))
	})

	t.Run("repository error", func(t *testing.T) {
		repoMock.EXPECT().Remove(ctx, "r2").Return(false, errors.New("storage unavailable")).Times(1)

		removed, err := store.DeleteReport(ctx, "r2")

		require.Error(t, err)
		assert.False(t, removed)
		assert.Equal(t, "storage unavailable", store.Snapshot().Error)
		assert.Equal(t, []string{"r2"}, ids(store.Snapshot().AllReports))
	})
}

func TestDraftLifecycle(t *testing.T) {
	store, _, _ := newTestReportStore(t, ReportStoreOptions{})
	assert.Nil(t, store.Draft())

	rt := models.ReportTypeTransit
	route := "147"
	store.UpdateDraft(models.Draft{Type: &rt})
	store.UpdateDraft(models.Draft{BusRoute: &route})

	draft := store.Draft()
	require.NotNil(t, draft)
	assert.Equal(t, models.ReportTypeTransit, *draft.Type)
	assert.Equal(t, "147", *draft.BusRoute)
	assert.Nil(t, draft.TrafficLevel)

	level := 5
	store.SetDraft(models.Draft{TrafficLevel: &level})
	draft = store.Draft()
	assert.Nil(t, draft.Type, "SetDraft заменяет черновик целиком")
	assert.Equal(t, 5, *draft.TrafficLevel)

	store.ClearDraft()
	assert.Nil(t, store.Draft())
}

func TestInMemoryQueries(t *testing.T) {
	store, repoMock, _ := newTestReportStore(t, ReportStoreOptions{})
	ctx := context.Background()
	near := testReport("near", models.ReportTypeDriver, 4)
	far := testReport("far", models.ReportTypeDriver, 2)
	far.Location = models.Location{Lat: 35.1796, Lng: 129.0756} // Пусан

	repoMock.EXPECT().GetAll(ctx).Return([]models.Report{near, far}, nil).Times(1)
	require.NoError(t, store.LoadReports(ctx))

	found, ok := store.GetReportByID("far")
	require.True(t, ok)
	assert.Equal(t, far, *found)

	_, ok = store.GetReportByID("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"near"}, ids(store.GetReportsByLocation(DefaultCenter, 0)))
	assert.Equal(t, []string{"near", "far"}, ids(store.GetReportsByLocation(DefaultCenter, 500)))
	assert.Equal(t, []string{"near"}, ids(store.FilteredReports(models.ReportFilter{Levels: []int{4}})))
}

func TestReportStore_Reset(t *testing.T) {
	store, repoMock, _ := newTestReportStore(t, ReportStoreOptions{})
	ctx := context.Background()
	repoMock.EXPECT().GetAll(ctx).Return([]models.Report{testReport("r1", models.ReportTypeDriver, 1)}, nil).Times(1)
	require.NoError(t, store.LoadReports(ctx))

	store.Reset()

	state := store.Snapshot()
	assert.NotNil(t, state.AllReports)
	assert.Empty(t, state.AllReports)
	assert.Empty(t, state.UserReports)
	assert.Nil(t, state.CurrentDraft)
	assert.Nil(t, state.LastSubmittedReport)
}
