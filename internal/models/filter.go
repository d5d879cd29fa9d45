package models

// TimeWindow - фильтр по давности создания отчета
type TimeWindow string

const (
	TimeWindowAll    TimeWindow = "all"
	TimeWindowToday  TimeWindow = "today"
	TimeWindowRecent TimeWindow = "recent"
)

// ReportFilter - клиентский фильтр списка отчетов. Пустые наборы означают "все"
type ReportFilter struct {
	Types  []ReportType
	Levels []int
	Window TimeWindow
}
