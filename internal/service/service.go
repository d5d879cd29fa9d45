package service

import (
	"context"
	"errors"

	"github.com/shenikar/dongmunseodap/internal/models"
)

// ErrReportNotFound - отчета с таким id нет в хранилище
var ErrReportNotFound = errors.New("report not found")

// ReportRepository определяет контракт хранилища отчетов
type ReportRepository interface {
	GetAll(ctx context.Context) ([]models.Report, error)
	Add(ctx context.Context, req models.CreateReportRequest) (*models.Report, error)
	GetByID(ctx context.Context, id string) (*models.Report, error)
	Remove(ctx context.Context, id string) (bool, error)
	GetByLocation(ctx context.Context, center models.LatLng, radiusKm float64) ([]models.Report, error)
	GetUserReportIDs(ctx context.Context) ([]string, error)
}

// MapRenderer - узкий интерфейс внешнего виджета карты. Команды не подтверждаются:
// вызов означает только то, что команда принята
type MapRenderer interface {
	SetCenter(ctx context.Context, center models.LatLng) error
	SetZoom(ctx context.Context, zoom int) error
	FitBounds(ctx context.Context, points []models.LatLng) error
	SetMarkers(ctx context.Context, markers []models.MapMarker) error
	Destroy(ctx context.Context) error
}

// ReportObserver получает изменения списка отчетов из ReportStore
type ReportObserver interface {
	SetReports(ctx context.Context, reports []models.Report)
	AddReport(ctx context.Context, report models.Report)
	RemoveReport(ctx context.Context, id string)
}
