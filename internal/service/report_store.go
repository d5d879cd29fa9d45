package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/dongmunseodap/internal/geo"
	"github.com/shenikar/dongmunseodap/internal/models"
	"github.com/shenikar/dongmunseodap/internal/observability"
	"github.com/sirupsen/logrus"
)

// DefaultRadiusKm - радиус поиска по умолчанию для запросов по близости
const DefaultRadiusKm = 5.0

// ReportState - состояние хранилища отчетов, которое видит слой представления
type ReportState struct {
	AllReports          []models.Report `json:"allReports"`
	UserReports         []models.Report `json:"userReports"`
	CurrentDraft        *models.Draft   `json:"currentDraft"`
	IsLoading           bool            `json:"isLoading"`
	Error               string          `json:"error,omitempty"`
	LastSubmittedReport *models.Report  `json:"lastSubmittedReport"`
}

func initialReportState() ReportState {
	return ReportState{
		AllReports:  []models.Report{},
		UserReports: []models.Report{},
	}
}

// ReportStoreOptions - необязательные зависимости ReportStore
type ReportStoreOptions struct {
	Clock clockwork.Clock
	// SimulatedDelay - искусственная задержка загрузки и отправки
	SimulatedDelay time.Duration
	// Observer получает изменения списка отчетов (обычно MapStore)
	Observer ReportObserver
}

// ReportStore - состояние приложения для отчетов поверх репозитория.
// Каждый метод атомарен относительно других вызовов на этом же экземпляре,
// но не относительно хранилища: два экземпляра могут терять записи друг друга
type ReportStore struct {
	mu    sync.Mutex
	state ReportState

	repo     ReportRepository
	logger   *logrus.Logger
	metrics  *observability.Metrics
	clock    clockwork.Clock
	delay    time.Duration
	observer ReportObserver
}

func NewReportStore(repo ReportRepository, logger *logrus.Logger, metrics *observability.Metrics, opts ReportStoreOptions) *ReportStore {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ReportStore{
		state:    initialReportState(),
		repo:     repo,
		logger:   logger,
		metrics:  metrics,
		clock:    clock,
		delay:    opts.SimulatedDelay,
		observer: opts.Observer,
	}
}

// LoadReports перечитывает все отчеты. При ошибке прежний список не меняется
func (s *ReportStore) LoadReports(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report_store",
		"method":  "LoadReports",
	})
	s.begin()

	reports, err := s.fetchAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load reports")
		s.fail(err)
		return fmt.Errorf("service: could not load reports: %w", err)
	}

	s.mu.Lock()
	s.state.AllReports = reports
	s.state.IsLoading = false
	s.mu.Unlock()

	log.WithField("count", len(reports)).Info("Reports loaded")
	if s.observer != nil {
		s.observer.SetReports(ctx, cloneReports(reports))
	}
	return nil
}

func (s *ReportStore) fetchAll(ctx context.Context) ([]models.Report, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx)
}

// LoadUserReports пересекает индекс устройства с сохраненной коллекцией.
// Удаления с других устройств видны только после LoadReports
func (s *ReportStore) LoadUserReports(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report_store",
		"method":  "LoadUserReports",
	})
	s.begin()

	ids, err := s.repo.GetUserReportIDs(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load user report index")
		s.fail(err)
		return fmt.Errorf("service: could not load user reports: %w", err)
	}
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load reports for user index")
		s.fail(err)
		return fmt.Errorf("service: could not load user reports: %w", err)
	}

	own := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		own[id] = struct{}{}
	}
	userReports := make([]models.Report, 0, len(ids))
	for _, report := range all {
		if _, ok := own[report.ID]; ok {
			userReports = append(userReports, report)
		}
	}

	s.mu.Lock()
	s.state.UserReports = userReports
	s.state.IsLoading = false
	s.mu.Unlock()

	log.WithField("count", len(userReports)).Info("User reports loaded")
	return nil
}

// CreateReport форматирует описание, сохраняет отчет и добавляет его в начало
// обоих списков. Ошибка записывается в состояние и возвращается вызывающему
func (s *ReportStore) CreateReport(ctx context.Context, req models.CreateReportRequest) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report_store",
		"method":  "CreateReport",
		"type":    req.Type,
	})
	log.Info("Attempting to create a new report")
	s.begin()

	if err := s.simulateLatency(ctx); err != nil {
		log.WithError(err).Warn("Report submission interrupted")
		s.fail(err)
		return nil, fmt.Errorf("service: could not create report: %w", err)
	}

	req.Description = EnhanceDescription(req.Description, req.Type)
	report, err := s.repo.Add(ctx, req)
	if err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		s.fail(err)
		return nil, fmt.Errorf("service: could not create report: %w", err)
	}

	s.mu.Lock()
	s.state.AllReports = prepend(*report, s.state.AllReports)
	s.state.UserReports = prepend(*report, s.state.UserReports)
	submitted := *report
	s.state.LastSubmittedReport = &submitted
	s.state.CurrentDraft = nil
	s.state.IsLoading = false
	s.mu.Unlock()

	s.metrics.ReportsCreated.WithLabelValues(string(report.Type)).Inc()
	if s.observer != nil {
		s.observer.AddReport(ctx, *report)
	}

	log.WithField("report_id", report.ID).Info("Report created successfully")
	return report, nil
}

// DeleteReport удаляет отчет. Списки в памяти меняются только если удаление
// действительно произошло
func (s *ReportStore) DeleteReport(ctx context.Context, id string) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report_store",
		"method":    "DeleteReport",
		"report_id": id,
	})
	s.begin()

	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to delete report in repository")
		s.fail(err)
		return false, fmt.Errorf("service: could not delete report: %w", err)
	}

	s.mu.Lock()
	if removed {
		s.state.AllReports = without(s.state.AllReports, id)
		s.state.UserReports = without(s.state.UserReports, id)
	}
	s.state.IsLoading = false
	s.mu.Unlock()

	if !removed {
		log.Warn("Attempted to delete a non-existent report")
		return false, nil
	}

	s.metrics.ReportsDeleted.Inc()
	if s.observer != nil {
		s.observer.RemoveReport(ctx, id)
	}
	log.Info("Report deleted successfully")
	return true, nil
}

// SetDraft заменяет черновик
func (s *ReportStore) SetDraft(draft models.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentDraft = &draft
}

// UpdateDraft накладывает заданные поля на текущий черновик
func (s *ReportStore) UpdateDraft(updates models.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.CurrentDraft == nil {
		s.state.CurrentDraft = &updates
		return
	}
	merged := s.state.CurrentDraft.Merge(updates)
	s.state.CurrentDraft = &merged
}

func (s *ReportStore) ClearDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentDraft = nil
}

// Draft возвращает копию черновика или nil
func (s *ReportStore) Draft() *models.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.CurrentDraft == nil {
		return nil
	}
	d := *s.state.CurrentDraft
	return &d
}

// GetReportByID ищет отчет среди уже загруженных
func (s *ReportStore) GetReportByID(id string) (*models.Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, report := range s.state.AllReports {
		if report.ID == id {
			r := report
			return &r, true
		}
	}
	return nil, false
}

// GetReportsByLocation - запрос по близости к загруженным отчетам.
// radiusKm <= 0 означает радиус по умолчанию
func (s *ReportStore) GetReportsByLocation(center models.LatLng, radiusKm float64) []models.Report {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return geo.WithinRadius(s.state.AllReports, center, radiusKm)
}

// FilteredReports применяет клиентский фильтр к загруженным отчетам
func (s *ReportStore) FilteredReports(filter models.ReportFilter) []models.Report {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	return FilterReports(s.state.AllReports, filter, now)
}

// Summary - общее количество отчетов и количество за сегодня
func (s *ReportStore) Summary() Summary {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summarize(s.state.AllReports, now)
}

func (s *ReportStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
}

// Snapshot возвращает согласованную копию состояния
func (s *ReportStore) Snapshot() ReportState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.state
	snap.AllReports = cloneReports(s.state.AllReports)
	snap.UserReports = cloneReports(s.state.UserReports)
	if s.state.CurrentDraft != nil {
		d := *s.state.CurrentDraft
		snap.CurrentDraft = &d
	}
	if s.state.LastSubmittedReport != nil {
		r := *s.state.LastSubmittedReport
		snap.LastSubmittedReport = &r
	}
	return snap
}

// Reset возвращает хранилище в начальное состояние
func (s *ReportStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = initialReportState()
}

func (s *ReportStore) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = true
	s.state.Error = ""
}

func (s *ReportStore) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = err.Error()
	s.state.IsLoading = false
}

func (s *ReportStore) simulateLatency(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-s.clock.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func prepend(report models.Report, reports []models.Report) []models.Report {
	result := make([]models.Report, 0, len(reports)+1)
	result = append(result, report)
	return append(result, reports...)
}

func without(reports []models.Report, id string) []models.Report {
	result := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		if r.ID != id {
			result = append(result, r)
		}
	}
	return result
}

func cloneReports(reports []models.Report) []models.Report {
	result := make([]models.Report, len(reports))
	copy(result, reports)
	return result
}
