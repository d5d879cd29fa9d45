package models

type MarkerKind string

const (
	MarkerKindReport MarkerKind = "report"
	MarkerKindAlert  MarkerKind = "alert"
)

// MapMarker - маркер на карте. Заполнено ровно одно из Report/Alert
type MapMarker struct {
	ID       string     `json:"id"`
	Position LatLng     `json:"position"`
	Kind     MarkerKind `json:"type"`
	Report   *Report    `json:"report,omitempty"`
	Alert    *Alert     `json:"alert,omitempty"`
}
