package v1

import "time"

// SearchLocationsRequest DTO для строгого поиска локаций
// @Description Параметры поиска локаций
type SearchLocationsRequest struct {
	Search string `form:"search" validate:"omitempty,max=255"`
	Stato  string `form:"stato" validate:"omitempty,oneof=attivo disattivo in_allarme"`
}

// LocationListItem DTO для элемента списка/карты.
// Содержит только поля, нужные для отображения маркеров: детальные поля
// в списочные ответы не попадают.
type LocationListItem struct {
	ID        int64   `json:"id"`
	Titolo    string  `json:"titolo"`
	Indirizzo string  `json:"indirizzo"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Stato     string  `json:"stato"`
}

// NearbyLocationItem DTO для результата поиска поблизости
type NearbyLocationItem struct {
	LocationListItem
	DistanceKm float64 `json:"distance_km"`
}

// StatoResponse DTO для статуса с метаданными отображения
type StatoResponse struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Color    string `json:"color"`
	CSSClass string `json:"css_class"`
}

// LocationDetailsResponse DTO для полной информации о локации
type LocationDetailsResponse struct {
	ID              int64         `json:"id"`
	Titolo          string        `json:"titolo"`
	Descrizione     string        `json:"descrizione"`
	Indirizzo       string        `json:"indirizzo"`
	Latitude        float64       `json:"latitude"`
	Longitude       float64       `json:"longitude"`
	Stato           StatoResponse `json:"stato"`
	OrariApertura   *string       `json:"orari_apertura"`
	PrezzoBiglietto *string       `json:"prezzo_biglietto"`
	SitoWeb         *string       `json:"sito_web"`
	Telefono        *string       `json:"telefono"`
	NoteVisitatori  *string       `json:"note_visitatori"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// IndexFilters — нормализованные фильтры, примененные к выдаче страницы
type IndexFilters struct {
	Search string `json:"search"`
	Stato  string `json:"stato"`
}

// IndexResponse DTO для страницы карты: фильтры, локации и конфигурация карты
type IndexResponse struct {
	Filters                 IndexFilters       `json:"filters"`
	Locations               []LocationListItem `json:"locations"`
	GoogleMapsAPIKey        string             `json:"google_maps_api_key"`
	GoogleMapsAPIKeyMissing bool               `json:"google_maps_api_key_missing"`
}

// ErrorResponse DTO для ошибок с машиночитаемым тегом
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
