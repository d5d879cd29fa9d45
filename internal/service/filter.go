package service

import (
	"time"

	"github.com/shenikar/dongmunseodap/internal/models"
)

// RecentWindow - окно фильтра "recent"
const RecentWindow = 6 * time.Hour

// FilterReports применяет фильтр по типу, уровню и давности. Порядок сохраняется.
// "today" - тот же календарный день в часовом поясе now
func FilterReports(reports []models.Report, filter models.ReportFilter, now time.Time) []models.Report {
	result := make([]models.Report, 0, len(reports))
	for _, report := range reports {
		if len(filter.Types) > 0 && !containsType(filter.Types, report.Type) {
			continue
		}
		if len(filter.Levels) > 0 && !containsLevel(filter.Levels, report.TrafficLevel) {
			continue
		}
		if !inWindow(report.CreatedAt, filter.Window, now) {
			continue
		}
		result = append(result, report)
	}
	return result
}

// Summary - счетчики для главной страницы
type Summary struct {
	Total int `json:"total"`
	Today int `json:"today"`
}

func Summarize(reports []models.Report, now time.Time) Summary {
	s := Summary{Total: len(reports)}
	for _, report := range reports {
		if sameDay(report.CreatedAt, now) {
			s.Today++
		}
	}
	return s
}

func inWindow(createdAt time.Time, window models.TimeWindow, now time.Time) bool {
	switch window {
	case models.TimeWindowToday:
		return sameDay(createdAt, now)
	case models.TimeWindowRecent:
		return now.Sub(createdAt) < RecentWindow
	default:
		return true
	}
}

func sameDay(t, now time.Time) bool {
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func containsType(types []models.ReportType, t models.ReportType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

func containsLevel(levels []int, level int) bool {
	for _, candidate := range levels {
		if candidate == level {
			return true
		}
	}
	return false
}
