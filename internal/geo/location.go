package geo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/dongmunseodap/internal/models"
	"github.com/sirupsen/logrus"
)

// Position - координаты, полученные от устройства
type Position struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationErrorCode классифицирует отказ геолокации устройства
type LocationErrorCode string

const (
	CodePermissionDenied    LocationErrorCode = "permission_denied"
	CodePositionUnavailable LocationErrorCode = "position_unavailable"
	CodeTimeout             LocationErrorCode = "timeout"
	CodeUnsupported         LocationErrorCode = "unsupported"
)

var locationMessages = map[LocationErrorCode]string{
	CodePermissionDenied:    "위치 접근이 거부되었습니다. 브라우저 설정에서 위치 권한을 허용해주세요.",
	CodePositionUnavailable: "위치 정보를 사용할 수 없습니다.",
	CodeTimeout:             "위치 요청이 시간 초과되었습니다.",
	CodeUnsupported:         "위치 서비스가 지원되지 않습니다.",
}

const unknownLocationMessage = "위치를 가져올 수 없습니다."

// LocationError - отказ геолокации с сообщением для пользователя
type LocationError struct {
	Code    LocationErrorCode
	Message string
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("geolocation %s: %s", e.Code, e.Message)
}

// ClassifyLocationError сопоставляет код отказа с сообщением. Неизвестный код дает общее сообщение
func ClassifyLocationError(code LocationErrorCode) *LocationError {
	msg, ok := locationMessages[code]
	if !ok {
		msg = unknownLocationMessage
	}
	return &LocationError{Code: code, Message: msg}
}

// UserMessage извлекает сообщение для пользователя из цепочки ошибок
func UserMessage(err error) string {
	var locErr *LocationError
	if errors.As(err, &locErr) {
		return locErr.Message
	}
	return unknownLocationMessage
}

// GeocodingResult - ответ провайдера обратного геокодирования
type GeocodingResult struct {
	FormattedAddress string
	PlaceName        string
	Confidence       float64
}

// ReverseGeocoder преобразует координаты в адрес
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (GeocodingResult, error)
}

// FallbackAddress - адрес, который показывается, если геокодер недоступен
func FallbackAddress(lat, lng float64) string {
	return fmt.Sprintf("위도 %.4f, 경도 %.4f", lat, lng)
}

// ResolveLocation превращает позицию устройства в Location с адресом.
// Ошибка геокодера не мешает вернуть координаты
func ResolveLocation(ctx context.Context, pos Position, geocoder ReverseGeocoder, log *logrus.Logger) models.Location {
	ts := pos.Timestamp.UTC().Truncate(time.Millisecond)
	loc := models.Location{
		Lat:       pos.Lat,
		Lng:       pos.Lng,
		Timestamp: &ts,
	}

	if geocoder == nil {
		loc.Address = FallbackAddress(pos.Lat, pos.Lng)
		return loc
	}

	result, err := geocoder.ReverseGeocode(ctx, pos.Lat, pos.Lng)
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"lat": pos.Lat,
			"lng": pos.Lng,
		}).Warn("Reverse geocoding failed, keeping raw coordinates")
		return loc
	}
	if result.FormattedAddress == "" {
		loc.Address = FallbackAddress(pos.Lat, pos.Lng)
		return loc
	}
	loc.Address = result.FormattedAddress
	return loc
}
