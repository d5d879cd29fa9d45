package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/shenikar/dongmunseodap/internal/models"
	"github.com/shenikar/dongmunseodap/internal/storage"
	"github.com/sirupsen/logrus"
)

// Landmark - опорная точка для тестовых данных
type Landmark struct {
	Lat     float64
	Lng     float64
	Address string
}

// Landmarks - основные точки Сеула
var Landmarks = []Landmark{
	{Lat: 37.5665, Lng: 126.9780, Address: "서울시청"},
	{Lat: 37.5510, Lng: 126.9882, Address: "강남역"},
	{Lat: 37.5443, Lng: 127.0557, Address: "잠실역"},
	{Lat: 37.5562, Lng: 126.9723, Address: "명동"},
	{Lat: 37.5797, Lng: 126.9770, Address: "종로3가"},
}

// Jitter - максимальное смещение от опорной точки в градусах (в обе стороны)
const Jitter = 0.005

var reportDescriptions = map[models.ReportType][]string{
	models.ReportTypeDriver: {
		"차량 정체가 심해요",
		"사고로 인한 지연",
		"공사로 차로 차단",
		"비로 인한 서행",
		"출퇴근 시간 정체",
	},
	models.ReportTypeTransit: {
		"버스가 많이 늦어요",
		"승객이 너무 많아요",
		"버스 운행 지연",
		"정류장 대기시간 길어짐",
		"배차간격이 불규칙해요",
	},
	models.ReportTypePost: {
		"오전에 정체가 있었어요",
		"어제 이 구간 막혔었음",
		"평소보다 교통량 많음",
		"주말 교통체증 발생",
		"행사로 인한 교통통제",
	},
}

var alertTitles = map[models.AlertType][]string{
	models.AlertTypeTraffic:      {"교통 정체 발생", "심각한 교통체증", "정체 구간 발생"},
	models.AlertTypeAccident:     {"교통사고 발생", "차량 사고", "다중 추돌 사고"},
	models.AlertTypeConstruction: {"도로 공사", "차로 통제", "공사로 인한 우회"},
}

var alertDescriptions = map[models.AlertType][]string{
	models.AlertTypeTraffic:      {"평소보다 30분 지연 예상", "우회도로 이용 권장", "대중교통 이용 권장"},
	models.AlertTypeAccident:     {"현재 처리 중", "경찰 출동 완료", "견인차 대기 중"},
	models.AlertTypeConstruction: {"오후 6시까지 진행", "1차로만 통행 가능", "우회로 안내"},
}

var (
	alertTypes = []models.AlertType{models.AlertTypeTraffic, models.AlertTypeAccident, models.AlertTypeConstruction}
	severities = []models.AlertSeverity{models.SeverityLow, models.SeverityMedium, models.SeverityHigh}
)

// Generator создает тестовые отчеты и оповещения. С одинаковым rng результат воспроизводим
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

func NewGenerator(rng *rand.Rand, now func() time.Time) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rng, now: now}
}

// Reports возвращает count отчетов за последние сутки, новые в начале
func (g *Generator) Reports(count int) []models.Report {
	now := g.now().UTC().Truncate(time.Millisecond)
	reports := make([]models.Report, 0, count)

	for i := 0; i < count; i++ {
		reportType := models.ReportTypes[g.rng.IntN(len(models.ReportTypes))]
		location := g.location(now)

		report := models.Report{
			ID:           fmt.Sprintf("report-%d-%d", now.UnixMilli(), i),
			Type:         reportType,
			Location:     location,
			Description:  pick(g.rng, reportDescriptions[reportType]),
			TrafficLevel: g.rng.IntN(models.MaxTrafficLevel) + models.MinTrafficLevel,
			CreatedAt:    now.Add(-time.Duration(g.rng.Int64N(int64(24 * time.Hour)))).Truncate(time.Millisecond),
			UserID:       fmt.Sprintf("user-%d", g.rng.IntN(100)),
		}
		if reportType == models.ReportTypeTransit {
			report.BusRoute = fmt.Sprintf("%d번", g.rng.IntN(999)+1)
		}
		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports
}

// Alerts возвращает count оповещений за последний час
func (g *Generator) Alerts(count int) []models.Alert {
	now := g.now().UTC().Truncate(time.Millisecond)
	alerts := make([]models.Alert, 0, count)

	for i := 0; i < count; i++ {
		alertType := alertTypes[g.rng.IntN(len(alertTypes))]
		location := g.location(now)
		location.Timestamp = nil

		alerts = append(alerts, models.Alert{
			ID:          fmt.Sprintf("alert-%d-%d", now.UnixMilli(), i),
			Type:        alertType,
			Location:    location,
			Title:       pick(g.rng, alertTitles[alertType]),
			Description: pick(g.rng, alertDescriptions[alertType]),
			Severity:    severities[g.rng.IntN(len(severities))],
			CreatedAt:   now.Add(-time.Duration(g.rng.Int64N(int64(time.Hour)))).Truncate(time.Millisecond),
		})
	}
	return alerts
}

func (g *Generator) location(now time.Time) models.Location {
	landmark := Landmarks[g.rng.IntN(len(Landmarks))]
	ts := now
	return models.Location{
		Lat:       landmark.Lat + (g.rng.Float64()-0.5)*2*Jitter,
		Lng:       landmark.Lng + (g.rng.Float64()-0.5)*2*Jitter,
		Address:   landmark.Address,
		Timestamp: &ts,
	}
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}

// InitializeStorage заполняет коллекцию отчетов, только если она пуста.
// Возвращает true, если данные были записаны
func InitializeStorage(ctx context.Context, store *storage.Store, gen *Generator, count int, log *logrus.Logger) (bool, error) {
	reports := store.Reports()
	if existing := reports.All(ctx); len(existing) > 0 {
		log.WithField("count", len(existing)).Info("Storage already contains reports, skipping seed")
		return false, nil
	}

	if err := reports.Save(ctx, gen.Reports(count)); err != nil {
		return false, fmt.Errorf("failed to seed reports: %w", err)
	}
	log.WithField("count", count).Info("Seeded storage with mock reports")
	return true, nil
}
