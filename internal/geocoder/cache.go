package geocoder

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/shenikar/dongmunseodap/internal/geo"
	"github.com/shenikar/dongmunseodap/internal/observability"
)

// CachedGeocoder - LRU-кэш поверх другого геокодера.
// Кэшируются только непустые ответы, ошибки не кэшируются
type CachedGeocoder struct {
	inner   geo.ReverseGeocoder
	metrics *observability.Metrics
	entries *lru.Cache[string, geo.GeocodingResult]
}

func NewCachedGeocoder(inner geo.ReverseGeocoder, maxEntries int, metrics *observability.Metrics) *CachedGeocoder {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	// lru.New возвращает ошибку только для неположительного размера
	entries, _ := lru.New[string, geo.GeocodingResult](maxEntries)
	return &CachedGeocoder{
		inner:   inner,
		metrics: metrics,
		entries: entries,
	}
}

func (c *CachedGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (geo.GeocodingResult, error) {
	// Ключ округлен до ~11 см, как и координаты в запросе к Mapbox
	key := fmt.Sprintf("%.6f,%.6f", lat, lng)
	if result, ok := c.entries.Get(key); ok {
		c.metrics.GeocodeCache.WithLabelValues("hit").Inc()
		return result, nil
	}
	c.metrics.GeocodeCache.WithLabelValues("miss").Inc()

	result, err := c.inner.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return result, err
	}
	if result.FormattedAddress != "" {
		c.entries.Add(key, result)
	}
	return result, nil
}

// Len - количество записей в кэше
func (c *CachedGeocoder) Len() int {
	return c.entries.Len()
}
