package v1

import (
	"encoding/json"
	"time"
)

// LatLngDTO DTO координат
// @Description DTO координат
type LatLngDTO struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// LocationDTO DTO местоположения устройства
// @Description DTO местоположения устройства
type LocationDTO struct {
	Lat       float64    `json:"lat" validate:"latitude"`
	Lng       float64    `json:"lng" validate:"longitude"`
	Address   string     `json:"address,omitempty" validate:"max=200"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// CreateDriverReportRequest DTO для отчета водителя
// @Description DTO для отчета водителя
type CreateDriverReportRequest struct {
	Location     *LocationDTO `json:"location" validate:"required"`
	TrafficLevel int          `json:"traffic_level" validate:"required,min=1,max=5"`
	Description  string       `json:"description,omitempty" validate:"max=200"`
}

// CreateTransitReportRequest DTO для отчета пассажира
// @Description DTO для отчета пассажира
type CreateTransitReportRequest struct {
	Location     *LocationDTO `json:"location" validate:"required"`
	BusRoute     string       `json:"bus_route" validate:"required,max=20"`
	TrafficLevel int          `json:"traffic_level" validate:"required,min=1,max=5"`
	Description  string       `json:"description,omitempty" validate:"max=200"`
}

// CreatePostReportRequest DTO для сообщения задним числом.
// Без текущей позиции нужен адрес, координаты берутся из центра карты
// @Description DTO для сообщения задним числом
type CreatePostReportRequest struct {
	UseCurrentLocation bool         `json:"use_current_location"`
	Location           *LocationDTO `json:"location,omitempty" validate:"required_if=UseCurrentLocation true"`
	Address            string       `json:"address,omitempty" validate:"required_if=UseCurrentLocation false,max=200"`
	ObservedAt         *time.Time   `json:"observed_at,omitempty"`
	TrafficLevel       int          `json:"traffic_level" validate:"required,min=1,max=5"`
	Description        string       `json:"description,omitempty" validate:"max=200"`
}

// ReportResponse DTO для ответа с отчетом
// @Description DTO для ответа с отчетом
type ReportResponse struct {
	ID           string      `json:"id"`
	Type         string      `json:"type"`
	Location     LocationDTO `json:"location"`
	Description  string      `json:"description"`
	TrafficLevel int         `json:"traffic_level"`
	CreatedAt    time.Time   `json:"created_at"`
	UserID       string      `json:"user_id,omitempty"`
	BusRoute     string      `json:"bus_route,omitempty"`
}

// SummaryResponse DTO для счетчиков главной страницы
// @Description DTO для счетчиков главной страницы
type SummaryResponse struct {
	Total int `json:"total"`
	Today int `json:"today"`
}

// DraftRequest DTO черновика. Пустые поля не заданы
// @Description DTO черновика
type DraftRequest struct {
	Type         *string      `json:"type,omitempty" validate:"omitempty,oneof=driver transit post"`
	Location     *LocationDTO `json:"location,omitempty"`
	Description  *string      `json:"description,omitempty" validate:"omitempty,max=200"`
	TrafficLevel *int         `json:"traffic_level,omitempty" validate:"omitempty,min=1,max=5"`
	BusRoute     *string      `json:"bus_route,omitempty" validate:"omitempty,max=20"`
}

// DraftResponse DTO текущего черновика
// @Description DTO текущего черновика
type DraftResponse = DraftRequest

// AlertResponse DTO оповещения
// @Description DTO оповещения
type AlertResponse struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Location    LocationDTO `json:"location"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Severity    string      `json:"severity"`
	CreatedAt   time.Time   `json:"created_at"`
}

// MarkerResponse DTO маркера карты
// @Description DTO маркера карты
type MarkerResponse struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Position LatLngDTO       `json:"position"`
	Report   *ReportResponse `json:"report,omitempty"`
	Alert    *AlertResponse  `json:"alert,omitempty"`
}

// MapStateResponse DTO состояния карты
// @Description DTO состояния карты
type MapStateResponse struct {
	IsMapLoaded        bool             `json:"is_map_loaded"`
	HasMap             bool             `json:"has_map"`
	Center             LatLngDTO        `json:"center"`
	Zoom               int              `json:"zoom"`
	Markers            []MarkerResponse `json:"markers"`
	SelectedReport     *ReportResponse  `json:"selected_report"`
	SelectedAlert      *AlertResponse   `json:"selected_alert"`
	ShowReports        bool             `json:"show_reports"`
	ShowAlerts         bool             `json:"show_alerts"`
	ReportTypeFilter   []string         `json:"report_type_filter"`
	TrafficLevelFilter []int            `json:"traffic_level_filter"`
}

// ViewportRequest DTO для перемещения карты
// @Description DTO для перемещения карты
type ViewportRequest struct {
	Center *LatLngDTO `json:"center,omitempty"`
	Zoom   *int       `json:"zoom,omitempty" validate:"omitempty,min=1,max=22"`
}

// FitBoundsRequest DTO для охвата точек
// @Description DTO для охвата точек
type FitBoundsRequest struct {
	Points []LatLngDTO `json:"points" validate:"required,min=1,dive"`
}

// MapFiltersRequest DTO фильтров карты. Отсутствующие поля не меняются,
// пустой список скрывает все отчеты
// @Description DTO фильтров карты
type MapFiltersRequest struct {
	Types       []string `json:"types,omitempty" validate:"omitempty,dive,oneof=driver transit post"`
	Levels      []int    `json:"levels,omitempty" validate:"omitempty,dive,min=1,max=5"`
	ShowReports *bool    `json:"show_reports,omitempty"`
	ShowAlerts  *bool    `json:"show_alerts,omitempty"`
}

// SelectRequest DTO выбора отчета или оповещения
// @Description DTO выбора отчета или оповещения
type SelectRequest struct {
	ReportID string `json:"report_id,omitempty" validate:"required_without=AlertID"`
	AlertID  string `json:"alert_id,omitempty" validate:"required_without=ReportID"`
}

// MapEventRequest DTO уведомления от виджета карты
// @Description DTO уведомления от виджета карты
type MapEventRequest struct {
	Type     string     `json:"type" validate:"required,oneof=center_changed zoom_changed click marker_click"`
	Center   *LatLngDTO `json:"center,omitempty" validate:"required_if=Type center_changed"`
	Zoom     *int       `json:"zoom,omitempty" validate:"required_if=Type zoom_changed"`
	MarkerID string     `json:"marker_id,omitempty" validate:"required_if=Type marker_click"`
}

// ResolveLocationRequest DTO позиции устройства
// @Description DTO позиции устройства
type ResolveLocationRequest struct {
	Lat       float64    `json:"lat" validate:"latitude"`
	Lng       float64    `json:"lng" validate:"longitude"`
	Accuracy  float64    `json:"accuracy,omitempty" validate:"gte=0"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// LocationErrorRequest DTO отказа геолокации
// @Description DTO отказа геолокации
type LocationErrorRequest struct {
	Code string `json:"code" validate:"required"`
}

// LocationErrorResponse DTO сообщения об отказе геолокации
// @Description DTO сообщения об отказе геолокации
type LocationErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SettingRequest DTO значения настройки
// @Description DTO значения настройки
type SettingRequest struct {
	Value json.RawMessage `json:"value" validate:"required"`
}

// SettingResponse DTO настройки
// @Description DTO настройки
type SettingResponse struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// ToastRequest DTO уведомления
// @Description DTO уведомления
type ToastRequest struct {
	Message string `json:"message" validate:"required,max=200"`
}

// UIUpdateRequest DTO изменения состояния интерфейса
// @Description DTO изменения состояния интерфейса
type UIUpdateRequest struct {
	ActiveSheet     *string `json:"active_sheet,omitempty"`
	ShowSafetyModal *bool   `json:"show_safety_modal,omitempty"`
}

// UIStateResponse DTO состояния интерфейса
// @Description DTO состояния интерфейса
type UIStateResponse struct {
	IsLoading         bool         `json:"is_loading"`
	LoadingMessage    string       `json:"loading_message,omitempty"`
	CurrentLocation   *LocationDTO `json:"current_location"`
	IsLocationLoading bool         `json:"is_location_loading"`
	LocationError     string       `json:"location_error,omitempty"`
	ActiveSheet       string       `json:"active_sheet,omitempty"`
	ShowSafetyModal   bool         `json:"show_safety_modal"`
	ToastMessage      string       `json:"toast_message,omitempty"`
}
