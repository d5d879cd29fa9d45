package models

import "time"

// LatLng - координаты в градусах
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location - координаты с необязательным адресом и временем наблюдения
type Location struct {
	Lat       float64    `json:"lat"`
	Lng       float64    `json:"lng"`
	Address   string     `json:"address,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// LatLng отбрасывает адрес и время
func (l Location) LatLng() LatLng {
	return LatLng{Lat: l.Lat, Lng: l.Lng}
}
