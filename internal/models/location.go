package models

import (
	"time"
)

// Location — точка интереса на карте. Детальные поля (описание, часы работы
// и т.д.) присутствуют только при загрузке полной записи; списочные выборки
// ограничены полями для карты.
type Location struct {
	ID              int64     `json:"id"`
	Titolo          string    `json:"titolo"`
	Descrizione     string    `json:"descrizione"`
	Indirizzo       string    `json:"indirizzo"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Stato           Stato     `json:"stato"`
	OrariApertura   *string   `json:"orari_apertura,omitempty"`
	PrezzoBiglietto *string   `json:"prezzo_biglietto,omitempty"`
	SitoWeb         *string   `json:"sito_web,omitempty"`
	Telefono        *string   `json:"telefono,omitempty"`
	NoteVisitatori  *string   `json:"note_visitatori,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Bounds — прямоугольник координат для выборки по области карты.
// Границы включительные.
type Bounds struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}

// NearbyLocation — локация с расстоянием до точки запроса в километрах.
type NearbyLocation struct {
	Location   *Location
	DistanceKm float64
}

// ValidCoordinates проверяет допустимость координат точки.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
