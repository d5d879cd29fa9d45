package geo

import (
	"testing"

	"github.com/shenikar/dongmunseodap/internal/models"
	"github.com/stretchr/testify/assert"
)

var (
	cityHall = models.LatLng{Lat: 37.5665, Lng: 126.9780}
	gangnam  = models.LatLng{Lat: 37.4979, Lng: 127.0276}
	busan    = models.LatLng{Lat: 35.1796, Lng: 129.0756}
)

func TestDistance_ZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, Distance(cityHall, cityHall))
}

func TestDistance_Symmetric(t *testing.T) {
	assert.InDelta(t, Distance(cityHall, busan), Distance(busan, cityHall), 1e-9)
	assert.InDelta(t, Distance(gangnam, cityHall), Distance(cityHall, gangnam), 1e-9)
}

func TestDistance_KnownPairs(t *testing.T) {
	tests := []struct {
		name     string
		a, b     models.LatLng
		expected float64
		delta    float64
	}{
		{"city hall to gangnam", cityHall, gangnam, 8.78, 0.1},
		{"seoul to busan", cityHall, busan, 325.0, 3.0},
		{"one degree of latitude", models.LatLng{Lat: 0, Lng: 0}, models.LatLng{Lat: 1, Lng: 0}, 111.19, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.a, tt.b), tt.delta)
		})
	}
}

func TestDistanceBetween_MatchesDistance(t *testing.T) {
	assert.Equal(t,
		Distance(cityHall, gangnam),
		DistanceBetween(cityHall.Lat, cityHall.Lng, gangnam.Lat, gangnam.Lng),
	)
}

func TestWithinRadius(t *testing.T) {
	reports := []models.Report{
		{ID: "far", Location: models.Location{Lat: busan.Lat, Lng: busan.Lng}},
		{ID: "here", Location: models.Location{Lat: cityHall.Lat, Lng: cityHall.Lng}},
		{ID: "gangnam", Location: models.Location{Lat: gangnam.Lat, Lng: gangnam.Lng}},
	}

	byID := func(rs []models.Report) []string {
		out := make([]string, 0, len(rs))
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}

	assert.Equal(t, []string{"here"}, byID(WithinRadius(reports, cityHall, 5)))
	assert.Equal(t, []string{"here", "gangnam"}, byID(WithinRadius(reports, cityHall, 10)))
	assert.Equal(t, []string{"far", "here", "gangnam"}, byID(WithinRadius(reports, cityHall, 400)))
	assert.Equal(t, []string{"here"}, byID(WithinRadius(reports, cityHall, 0)), "граница включается")

	empty := WithinRadius(nil, cityHall, 5)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
