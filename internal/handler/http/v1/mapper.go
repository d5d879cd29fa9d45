package v1

import (
	"github.com/shenikar/dongmunseodap/internal/models"
	"github.com/shenikar/dongmunseodap/internal/service"
)

func DTOToLocation(dto LocationDTO) models.Location {
	return models.Location{
		Lat:       dto.Lat,
		Lng:       dto.Lng,
		Address:   dto.Address,
		Timestamp: dto.Timestamp,
	}
}

func LocationToDTO(loc models.Location) LocationDTO {
	return LocationDTO{
		Lat:       loc.Lat,
		Lng:       loc.Lng,
		Address:   loc.Address,
		Timestamp: loc.Timestamp,
	}
}

func DTOToLatLng(dto LatLngDTO) models.LatLng {
	return models.LatLng{Lat: dto.Lat, Lng: dto.Lng}
}

func LatLngToDTO(p models.LatLng) LatLngDTO {
	return LatLngDTO{Lat: p.Lat, Lng: p.Lng}
}

// ModelToReportResponse преобразует доменную модель в DTO для ответа
func ModelToReportResponse(model *models.Report) *ReportResponse {
	return &ReportResponse{
		ID:           model.ID,
		Type:         string(model.Type),
		Location:     LocationToDTO(model.Location),
		Description:  model.Description,
		TrafficLevel: model.TrafficLevel,
		CreatedAt:    model.CreatedAt,
		UserID:       model.UserID,
		BusRoute:     model.BusRoute,
	}
}

// ModelsToReportResponses преобразует слайс моделей в слайс DTO
func ModelsToReportResponses(reports []models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i := range reports {
		responses[i] = ModelToReportResponse(&reports[i])
	}
	return responses
}

func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:          model.ID,
		Type:        string(model.Type),
		Location:    LocationToDTO(model.Location),
		Title:       model.Title,
		Description: model.Description,
		Severity:    string(model.Severity),
		CreatedAt:   model.CreatedAt,
	}
}

// DTOToDraft - nil поля DTO остаются nil в черновике
func DTOToDraft(dto DraftRequest) models.Draft {
	draft := models.Draft{
		Description:  dto.Description,
		TrafficLevel: dto.TrafficLevel,
		BusRoute:     dto.BusRoute,
	}
	if dto.Type != nil {
		t := models.ReportType(*dto.Type)
		draft.Type = &t
	}
	if dto.Location != nil {
		loc := DTOToLocation(*dto.Location)
		draft.Location = &loc
	}
	return draft
}

func DraftToResponse(draft *models.Draft) *DraftResponse {
	resp := &DraftResponse{
		Description:  draft.Description,
		TrafficLevel: draft.TrafficLevel,
		BusRoute:     draft.BusRoute,
	}
	if draft.Type != nil {
		t := string(*draft.Type)
		resp.Type = &t
	}
	if draft.Location != nil {
		loc := LocationToDTO(*draft.Location)
		resp.Location = &loc
	}
	return resp
}

func MapStateToResponse(state service.MapState) *MapStateResponse {
	resp := &MapStateResponse{
		IsMapLoaded:        state.IsMapLoaded,
		HasMap:             state.HasMap,
		Center:             LatLngToDTO(state.Center),
		Zoom:               state.Zoom,
		Markers:            make([]MarkerResponse, 0, len(state.Markers)),
		ShowReports:        state.ShowReports,
		ShowAlerts:         state.ShowAlerts,
		ReportTypeFilter:   make([]string, 0, len(state.ReportTypeFilter)),
		TrafficLevelFilter: append([]int{}, state.TrafficLevelFilter...),
	}
	for _, m := range state.Markers {
		marker := MarkerResponse{
			ID:       m.ID,
			Type:     string(m.Kind),
			Position: LatLngToDTO(m.Position),
		}
		if m.Report != nil {
			marker.Report = ModelToReportResponse(m.Report)
		}
		if m.Alert != nil {
			marker.Alert = ModelToAlertResponse(m.Alert)
		}
		resp.Markers = append(resp.Markers, marker)
	}
	if state.SelectedReport != nil {
		resp.SelectedReport = ModelToReportResponse(state.SelectedReport)
	}
	if state.SelectedAlert != nil {
		resp.SelectedAlert = ModelToAlertResponse(state.SelectedAlert)
	}
	for _, t := range state.ReportTypeFilter {
		resp.ReportTypeFilter = append(resp.ReportTypeFilter, string(t))
	}
	return resp
}

func UIStateToResponse(state service.UIState) *UIStateResponse {
	resp := &UIStateResponse{
		IsLoading:         state.IsLoading,
		LoadingMessage:    state.LoadingMessage,
		IsLocationLoading: state.IsLocationLoading,
		LocationError:     state.LocationError,
		ActiveSheet:       state.ActiveSheet,
		ShowSafetyModal:   state.ShowSafetyModal,
		ToastMessage:      state.ToastMessage,
	}
	if state.CurrentLocation != nil {
		loc := LocationToDTO(*state.CurrentLocation)
		resp.CurrentLocation = &loc
	}
	return resp
}
