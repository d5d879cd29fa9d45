package models

import (
	"time"
)

// ReportType - тип потока, через который создан отчет
type ReportType string

const (
	ReportTypeDriver  ReportType = "driver"
	ReportTypeTransit ReportType = "transit"
	ReportTypePost    ReportType = "post"
)

// ReportTypes перечисляет все типы в порядке отображения
var ReportTypes = []ReportType{ReportTypeDriver, ReportTypeTransit, ReportTypePost}

// IsValid проверяет, что тип входит в допустимый набор
func (t ReportType) IsValid() bool {
	for _, rt := range ReportTypes {
		if rt == t {
			return true
		}
	}
	return false
}

const (
	MinTrafficLevel = 1
	MaxTrafficLevel = 5

	MaxDescriptionLength = 200
)

// TrafficLevels перечисляет все уровни загруженности, 1 - свободно, 5 - сильная пробка
var TrafficLevels = []int{1, 2, 3, 4, 5}

// IsValidTrafficLevel проверяет, что уровень лежит в диапазоне [1,5]
func IsValidTrafficLevel(level int) bool {
	return level >= MinTrafficLevel && level <= MaxTrafficLevel
}

// Report - отчет о дорожной ситуации. После создания не изменяется
type Report struct {
	ID           string     `json:"id"`
	Type         ReportType `json:"type"`
	Location     Location   `json:"location"`
	Description  string     `json:"description"`
	TrafficLevel int        `json:"trafficLevel"`
	CreatedAt    time.Time  `json:"createdAt"`
	UserID       string     `json:"userId,omitempty"`
	BusRoute     string     `json:"busRoute,omitempty"`
}

// CreateReportRequest - входные данные для создания отчета
type CreateReportRequest struct {
	Type         ReportType `json:"type"`
	Location     Location   `json:"location"`
	Description  string     `json:"description"`
	TrafficLevel int        `json:"trafficLevel"`
	BusRoute     string     `json:"busRoute,omitempty"`
}

// Draft - частично заполненный CreateReportRequest, nil поля не заданы
type Draft struct {
	Type         *ReportType `json:"type,omitempty"`
	Location     *Location   `json:"location,omitempty"`
	Description  *string     `json:"description,omitempty"`
	TrafficLevel *int        `json:"trafficLevel,omitempty"`
	BusRoute     *string     `json:"busRoute,omitempty"`
}

// Merge возвращает копию черновика, поверх которой наложены заданные поля updates
func (d Draft) Merge(updates Draft) Draft {
	if updates.Type != nil {
		d.Type = updates.Type
	}
	if updates.Location != nil {
		d.Location = updates.Location
	}
	if updates.Description != nil {
		d.Description = updates.Description
	}
	if updates.TrafficLevel != nil {
		d.TrafficLevel = updates.TrafficLevel
	}
	if updates.BusRoute != nil {
		d.BusRoute = updates.BusRoute
	}
	return d
}
