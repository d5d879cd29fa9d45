package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shenikar/dongmunseodap/internal/geo"
	"github.com/shenikar/dongmunseodap/internal/observability"
	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// MapboxClient реализует geo.ReverseGeocoder через Mapbox Geocoding API
type MapboxClient struct {
	token      string
	language   string
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
	metrics    *observability.Metrics
}

func NewMapboxClient(token, language string, timeout time.Duration, logger *logrus.Logger, metrics *observability.Metrics) *MapboxClient {
	return &MapboxClient{
		token:      token,
		language:   language,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		logger:     logger,
		metrics:    metrics,
	}
}

// ReverseGeocode возвращает адрес ближайшего объекта. Пустой результат не ошибка
func (c *MapboxClient) ReverseGeocode(ctx context.Context, lat, lng float64) (geo.GeocodingResult, error) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "geocoder",
		"lat":       lat,
		"lng":       lng,
	})

	// Mapbox принимает координаты в порядке lng,lat
	u := fmt.Sprintf("%s/%.6f,%.6f.json", c.baseURL, lng, lat)
	params := url.Values{
		"access_token": {c.token},
		"limit":        {"1"},
	}
	if c.language != "" {
		params.Set("language", c.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+params.Encode(), nil)
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return geo.GeocodingResult{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		log.WithError(err).Warn("Reverse geocode request failed")
		return geo.GeocodingResult{}, fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return geo.GeocodingResult{}, fmt.Errorf("mapbox API error: status %d: %s", resp.StatusCode, body)
	}

	var payload featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return geo.GeocodingResult{}, fmt.Errorf("decode response: %w", err)
	}

	if len(payload.Features) == 0 {
		c.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
		log.Debug("No features for coordinates")
		return geo.GeocodingResult{}, nil
	}

	f := payload.Features[0]
	c.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	return geo.GeocodingResult{
		FormattedAddress: f.PlaceName,
		PlaceName:        f.Text,
		Confidence:       f.Relevance,
	}, nil
}

type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Center    []float64 `json:"center"`
	PlaceName string    `json:"place_name"`
	Text      string    `json:"text"`
	Relevance float64   `json:"relevance"`
}
