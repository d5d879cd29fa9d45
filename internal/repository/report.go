package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/dongmunseodap/internal/geo"
	"github.com/shenikar/dongmunseodap/internal/models"
	"github.com/shenikar/dongmunseodap/internal/service"
	"github.com/shenikar/dongmunseodap/internal/storage"
)

// DefaultRadiusKm - радиус поиска по умолчанию
const DefaultRadiusKm = service.DefaultRadiusKm

var ErrReportNotFound = service.ErrReportNotFound

type ReportRepository struct {
	reports     *storage.ReportsCollection
	userReports *storage.UserReportsCollection
	clock       clockwork.Clock
	userID      string
}

func NewReportRepository(store *storage.Store, clock clockwork.Clock, userID string) service.ReportRepository {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ReportRepository{
		reports:     store.Reports(),
		userReports: store.UserReports(),
		clock:       clock,
		userID:      userID,
	}
}

// GetAll возвращает сохраненные отчеты, новые в начале
func (r *ReportRepository) GetAll(ctx context.Context) ([]models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get reports: %w", err)
	}
	return r.reports.All(ctx), nil
}

// Add создает отчет: назначает id, время создания и автора, добавляет его
// в начало коллекции и в индекс отчетов устройства
func (r *ReportRepository) Add(ctx context.Context, req models.CreateReportRequest) (*models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	now := r.clock.Now().UTC().Truncate(time.Millisecond)
	report := models.Report{
		ID:           newReportID(now),
		Type:         req.Type,
		Location:     normalizeLocation(req.Location),
		Description:  req.Description,
		TrafficLevel: req.TrafficLevel,
		CreatedAt:    now,
		UserID:       r.userID,
	}
	// Маршрут хранится только у отчетов пассажиров транспорта
	if req.Type == models.ReportTypeTransit {
		report.BusRoute = strings.TrimSpace(req.BusRoute)
	}

	if err := r.reports.Add(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	if err := r.userReports.Add(ctx, report.ID); err != nil {
		return nil, fmt.Errorf("failed to index user report: %w", err)
	}
	return &report, nil
}

// GetByID ищет отчет линейным проходом по коллекции
func (r *ReportRepository) GetByID(ctx context.Context, id string) (*models.Report, error) {
	reports, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range reports {
		if reports[i].ID == id {
			return &reports[i], nil
		}
	}
	return nil, fmt.Errorf("report with id %s: %w", id, ErrReportNotFound)
}

// Remove удаляет отчет из коллекции и из индекса устройства.
// false - отчета с таким id не было
func (r *ReportRepository) Remove(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("failed to remove report: %w", err)
	}
	removed, err := r.reports.Remove(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to remove report %s: %w", id, err)
	}
	if !removed {
		return false, nil
	}
	if err := r.userReports.Remove(ctx, id); err != nil {
		return true, fmt.Errorf("failed to remove report %s from user index: %w", id, err)
	}
	return true, nil
}

// GetByLocation возвращает отчеты в радиусе radiusKm от center полным проходом
func (r *ReportRepository) GetByLocation(ctx context.Context, center models.LatLng, radiusKm float64) ([]models.Report, error) {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	reports, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return geo.WithinRadius(reports, center, radiusKm), nil
}

// newReportID - время в миллисекундах и случайный суффикс из 9 символов.
// Уникальность в пределах сессии, не криптографическая
func newReportID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("report-%d-%s", now.UnixMilli(), suffix)
}

func normalizeLocation(loc models.Location) models.Location {
	if loc.Timestamp != nil {
		ts := loc.Timestamp.UTC().Truncate(time.Millisecond)
		loc.Timestamp = &ts
	}
	loc.Address = strings.TrimSpace(loc.Address)
	return loc
}

// GetUserReportIDs возвращает индекс отчетов устройства, новые в начале
func (r *ReportRepository) GetUserReportIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get user reports: %w", err)
	}
	return r.userReports.All(ctx), nil
}
