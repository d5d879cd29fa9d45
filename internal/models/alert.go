package models

import "time"

type AlertType string

const (
	AlertTypeTraffic      AlertType = "traffic"
	AlertTypeAccident     AlertType = "accident"
	AlertTypeConstruction AlertType = "construction"
)

type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

// Alert - оповещение о событии на дороге, показывается на карте рядом с отчетами
type Alert struct {
	ID          string        `json:"id"`
	Type        AlertType     `json:"type"`
	Location    Location      `json:"location"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Severity    AlertSeverity `json:"severity"`
	CreatedAt   time.Time     `json:"createdAt"`
}
