package geo

import (
	"math"

	"github.com/shenikar/dongmunseodap/internal/models"
)

// EarthRadiusKm - радиус Земли, используемый в формуле гаверсинуса
const EarthRadiusKm = 6371.0

// DistanceBetween возвращает расстояние по поверхности Земли в километрах (формула гаверсинуса)
func DistanceBetween(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// Distance - то же, что DistanceBetween, для пары точек
func Distance(a, b models.LatLng) float64 {
	return DistanceBetween(a.Lat, a.Lng, b.Lat, b.Lng)
}

// WithinRadius оставляет отчеты, расстояние до которых не больше radiusKm. Порядок сохраняется
func WithinRadius(reports []models.Report, center models.LatLng, radiusKm float64) []models.Report {
	result := make([]models.Report, 0)
	for _, report := range reports {
		if Distance(center, report.Location.LatLng()) <= radiusKm {
			result = append(result, report)
		}
	}
	return result
}
