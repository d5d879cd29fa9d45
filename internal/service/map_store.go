package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/dongmunseodap/internal/models"
	"github.com/sirupsen/logrus"
)

// Настройки карты по умолчанию: центр - мэрия Сеула
var DefaultCenter = models.LatLng{Lat: 37.5665, Lng: 126.9780}

const (
	DefaultZoom  = 15
	MinZoom      = 10
	MaxZoom      = 19
	SelectedZoom = 16
)

// Имена событий виджета карты
const (
	EventCenterChanged = "center_changed"
	EventZoomChanged   = "zoom_changed"
	EventClick         = "click"
	EventMarkerClick   = "marker_click"
)

// MapEvent - уведомление от виджета карты
type MapEvent struct {
	Type     string         `json:"type"`
	Center   *models.LatLng `json:"center,omitempty"`
	Zoom     *int           `json:"zoom,omitempty"`
	MarkerID string         `json:"markerId,omitempty"`
}

// MapState - состояние карты
type MapState struct {
	IsMapLoaded bool          `json:"isMapLoaded"`
	HasMap      bool          `json:"hasMap"`
	Center      models.LatLng `json:"center"`
	Zoom        int           `json:"zoom"`

	Reports []models.Report    `json:"reports"`
	Alerts  []models.Alert     `json:"alerts"`
	Markers []models.MapMarker `json:"markers"`

	SelectedReport *models.Report `json:"selectedReport"`
	SelectedAlert  *models.Alert  `json:"selectedAlert"`

	ShowReports        bool                `json:"showReports"`
	ShowAlerts         bool                `json:"showAlerts"`
	ReportTypeFilter   []models.ReportType `json:"reportTypeFilter"`
	TrafficLevelFilter []int               `json:"trafficLevelFilter"`
}

func initialMapState() MapState {
	return MapState{
		Center:             DefaultCenter,
		Zoom:               DefaultZoom,
		Reports:            []models.Report{},
		Alerts:             []models.Alert{},
		Markers:            []models.MapMarker{},
		ShowReports:        true,
		ShowAlerts:         true,
		ReportTypeFilter:   append([]models.ReportType(nil), models.ReportTypes...),
		TrafficLevelFilter: append([]int(nil), models.TrafficLevels...),
	}
}

// MapStore владеет видимой областью карты, маркерами и фильтрами.
// Любое изменение отчетов, оповещений, видимости или фильтров сразу
// пересчитывает маркеры
type MapStore struct {
	mu       sync.Mutex
	state    MapState
	renderer MapRenderer
	logger   *logrus.Logger
}

func NewMapStore(logger *logrus.Logger) *MapStore {
	return &MapStore{
		state:  initialMapState(),
		logger: logger,
	}
}

// AttachRenderer подключает виджет карты и отправляет ему текущее состояние
func (m *MapStore) AttachRenderer(ctx context.Context, renderer MapRenderer) {
	m.mu.Lock()
	m.renderer = renderer
	m.state.HasMap = renderer != nil
	center, zoom := m.state.Center, m.state.Zoom
	markers := cloneMarkers(m.state.Markers)
	m.mu.Unlock()

	if renderer == nil {
		return
	}
	m.command("SetCenter", func(r MapRenderer) error { return r.SetCenter(ctx, center) })
	m.command("SetZoom", func(r MapRenderer) error { return r.SetZoom(ctx, zoom) })
	m.command("SetMarkers", func(r MapRenderer) error { return r.SetMarkers(ctx, markers) })
}

// DetachRenderer отключает виджет и уничтожает карту
func (m *MapStore) DetachRenderer(ctx context.Context) {
	m.command("Destroy", func(r MapRenderer) error { return r.Destroy(ctx) })
	m.mu.Lock()
	m.renderer = nil
	m.state.HasMap = false
	m.state.IsMapLoaded = false
	m.mu.Unlock()
}

func (m *MapStore) SetMapLoaded(loaded bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.IsMapLoaded = loaded
}

// SetCenter сохраняет центр и, если он изменился, двигает карту
func (m *MapStore) SetCenter(ctx context.Context, center models.LatLng) {
	m.mu.Lock()
	changed := m.state.Center != center
	m.state.Center = center
	m.mu.Unlock()

	if changed {
		m.command("SetCenter", func(r MapRenderer) error { return r.SetCenter(ctx, center) })
	}
}

// SetZoom сохраняет масштаб в пределах [MinZoom, MaxZoom]
func (m *MapStore) SetZoom(ctx context.Context, zoom int) {
	zoom = clampZoom(zoom)
	m.mu.Lock()
	changed := m.state.Zoom != zoom
	m.state.Zoom = zoom
	m.mu.Unlock()

	if changed {
		m.command("SetZoom", func(r MapRenderer) error { return r.SetZoom(ctx, zoom) })
	}
}

// KeepZoom передается в MoveToLocation, чтобы не менять масштаб
const KeepZoom = 0

// MoveToLocation центрирует карту на точке. zoom <= KeepZoom оставляет масштаб
// прежним, положительный zoom ограничивается [MinZoom, MaxZoom] как в SetZoom
func (m *MapStore) MoveToLocation(ctx context.Context, location models.LatLng, zoom int) {
	m.SetCenter(ctx, location)
	if zoom > KeepZoom {
		m.SetZoom(ctx, zoom)
	}
}

// FitBounds просит карту охватить все точки. Пустой список ничего не делает
func (m *MapStore) FitBounds(ctx context.Context, points []models.LatLng) {
	if len(points) == 0 {
		return
	}
	pts := append([]models.LatLng(nil), points...)
	m.command("FitBounds", func(r MapRenderer) error { return r.FitBounds(ctx, pts) })
}

// SetReports заменяет отчеты на карте
func (m *MapStore) SetReports(ctx context.Context, reports []models.Report) {
	m.mutate(ctx, func(s *MapState) {
		s.Reports = cloneReports(reports)
	})
}

// AddReport добавляет отчет в начало списка
func (m *MapStore) AddReport(ctx context.Context, report models.Report) {
	m.mutate(ctx, func(s *MapState) {
		s.Reports = prepend(report, s.Reports)
	})
}

func (m *MapStore) RemoveReport(ctx context.Context, id string) {
	m.mutate(ctx, func(s *MapState) {
		s.Reports = without(s.Reports, id)
	})
}

func (m *MapStore) SetAlerts(ctx context.Context, alerts []models.Alert) {
	m.mutate(ctx, func(s *MapState) {
		s.Alerts = append([]models.Alert{}, alerts...)
	})
}

// SelectReport выбирает отчет, снимает выбор оповещения и центрирует карту на отчете
func (m *MapStore) SelectReport(ctx context.Context, report *models.Report) {
	m.mu.Lock()
	m.state.SelectedAlert = nil
	m.state.SelectedReport = nil
	if report != nil {
		r := *report
		m.state.SelectedReport = &r
	}
	m.mu.Unlock()

	if report != nil {
		m.MoveToLocation(ctx, report.Location.LatLng(), SelectedZoom)
	}
}

// SelectAlert выбирает оповещение, снимает выбор отчета и центрирует карту
func (m *MapStore) SelectAlert(ctx context.Context, alert *models.Alert) {
	m.mu.Lock()
	m.state.SelectedReport = nil
	m.state.SelectedAlert = nil
	if alert != nil {
		a := *alert
		m.state.SelectedAlert = &a
	}
	m.mu.Unlock()

	if alert != nil {
		m.MoveToLocation(ctx, alert.Location.LatLng(), SelectedZoom)
	}
}

// ClearSelection снимает выбор, видимая область не меняется
func (m *MapStore) ClearSelection() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.SelectedReport = nil
	m.state.SelectedAlert = nil
}

func (m *MapStore) ToggleReportsVisibility(ctx context.Context) {
	m.mutate(ctx, func(s *MapState) { s.ShowReports = !s.ShowReports })
}

func (m *MapStore) ToggleAlertsVisibility(ctx context.Context) {
	m.mutate(ctx, func(s *MapState) { s.ShowAlerts = !s.ShowAlerts })
}

func (m *MapStore) SetReportsVisible(ctx context.Context, visible bool) {
	m.mutate(ctx, func(s *MapState) { s.ShowReports = visible })
}

func (m *MapStore) SetAlertsVisible(ctx context.Context, visible bool) {
	m.mutate(ctx, func(s *MapState) { s.ShowAlerts = visible })
}

// SetReportTypeFilter задает типы отчетов, которые попадают в маркеры
func (m *MapStore) SetReportTypeFilter(ctx context.Context, types []models.ReportType) {
	m.mutate(ctx, func(s *MapState) {
		s.ReportTypeFilter = append([]models.ReportType{}, types...)
	})
}

// SetTrafficLevelFilter задает уровни загруженности, которые попадают в маркеры
func (m *MapStore) SetTrafficLevelFilter(ctx context.Context, levels []int) {
	m.mutate(ctx, func(s *MapState) {
		s.TrafficLevelFilter = append([]int{}, levels...)
	})
}

// HandleMapEvent применяет уведомление виджета через те же сеттеры,
// что и пользовательский код
func (m *MapStore) HandleMapEvent(ctx context.Context, event MapEvent) error {
	switch event.Type {
	case EventCenterChanged:
		if event.Center == nil {
			return fmt.Errorf("event %s without center", event.Type)
		}
		m.SetCenter(ctx, *event.Center)
	case EventZoomChanged:
		if event.Zoom == nil {
			return fmt.Errorf("event %s without zoom", event.Type)
		}
		m.SetZoom(ctx, *event.Zoom)
	case EventClick:
		m.ClearSelection()
	case EventMarkerClick:
		marker, ok := m.markerByID(event.MarkerID)
		if !ok {
			return fmt.Errorf("marker %s not found", event.MarkerID)
		}
		if marker.Report != nil {
			m.SelectReport(ctx, marker.Report)
		} else if marker.Alert != nil {
			m.SelectAlert(ctx, marker.Alert)
		}
	default:
		return fmt.Errorf("unknown map event %q", event.Type)
	}
	return nil
}

// AlertByID ищет оповещение среди загруженных на карту
func (m *MapStore) AlertByID(id string) (*models.Alert, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, alert := range m.state.Alerts {
		if alert.ID == id {
			a := alert
			return &a, true
		}
	}
	return nil, false
}

// Markers возвращает текущие маркеры
func (m *MapStore) Markers() []models.MapMarker {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneMarkers(m.state.Markers)
}

// Snapshot возвращает согласованную копию состояния
func (m *MapStore) Snapshot() MapState {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := m.state
	snap.Reports = cloneReports(m.state.Reports)
	snap.Alerts = append([]models.Alert{}, m.state.Alerts...)
	snap.Markers = cloneMarkers(m.state.Markers)
	snap.ReportTypeFilter = append([]models.ReportType{}, m.state.ReportTypeFilter...)
	snap.TrafficLevelFilter = append([]int{}, m.state.TrafficLevelFilter...)
	if m.state.SelectedReport != nil {
		r := *m.state.SelectedReport
		snap.SelectedReport = &r
	}
	if m.state.SelectedAlert != nil {
		a := *m.state.SelectedAlert
		snap.SelectedAlert = &a
	}
	return snap
}

// Reset возвращает состояние по умолчанию. Подключенный виджет остается
func (m *MapStore) Reset(ctx context.Context) {
	m.mu.Lock()
	hasMap := m.state.HasMap
	m.state = initialMapState()
	m.state.HasMap = hasMap
	center, zoom := m.state.Center, m.state.Zoom
	m.mu.Unlock()

	m.command("SetCenter", func(r MapRenderer) error { return r.SetCenter(ctx, center) })
	m.command("SetZoom", func(r MapRenderer) error { return r.SetZoom(ctx, zoom) })
	m.command("SetMarkers", func(r MapRenderer) error { return r.SetMarkers(ctx, []models.MapMarker{}) })
}

// BuildMarkers выводит маркеры из состояния: сначала отчеты, затем оповещения,
// порядок внутри каждой коллекции сохраняется
func BuildMarkers(s MapState) []models.MapMarker {
	markers := make([]models.MapMarker, 0, len(s.Reports)+len(s.Alerts))

	if s.ShowReports {
		for i := range s.Reports {
			report := s.Reports[i]
			if !containsType(s.ReportTypeFilter, report.Type) || !containsLevel(s.TrafficLevelFilter, report.TrafficLevel) {
				continue
			}
			markers = append(markers, models.MapMarker{
				ID:       "report-" + report.ID,
				Position: report.Location.LatLng(),
				Kind:     models.MarkerKindReport,
				Report:   &report,
			})
		}
	}

	if s.ShowAlerts {
		for i := range s.Alerts {
			alert := s.Alerts[i]
			markers = append(markers, models.MapMarker{
				ID:       "alert-" + alert.ID,
				Position: alert.Location.LatLng(),
				Kind:     models.MarkerKindAlert,
				Alert:    &alert,
			})
		}
	}

	return markers
}

func (m *MapStore) mutate(ctx context.Context, fn func(s *MapState)) {
	m.mu.Lock()
	fn(&m.state)
	m.state.Markers = BuildMarkers(m.state)
	markers := cloneMarkers(m.state.Markers)
	m.mu.Unlock()

	m.command("SetMarkers", func(r MapRenderer) error { return r.SetMarkers(ctx, markers) })
}

func (m *MapStore) markerByID(id string) (models.MapMarker, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, marker := range m.state.Markers {
		if marker.ID == id {
			return marker, true
		}
	}
	return models.MapMarker{}, false
}

// command отправляет команду виджету, если он подключен. Ошибка виджета
// только логируется, состояние не откатывается
func (m *MapStore) command(name string, fn func(r MapRenderer) error) {
	m.mu.Lock()
	renderer := m.renderer
	m.mu.Unlock()
	if renderer == nil {
		return
	}
	if err := fn(renderer); err != nil {
		m.logger.WithError(err).WithFields(logrus.Fields{
			"service": "map_store",
			"command": name,
		}).Warn("Map renderer command failed")
	}
}

func clampZoom(zoom int) int {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

func cloneMarkers(markers []models.MapMarker) []models.MapMarker {
	result := make([]models.MapMarker, len(markers))
	copy(result, markers)
	return result
}
