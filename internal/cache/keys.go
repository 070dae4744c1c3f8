package cache

import (
	"fmt"
	"time"
)

// Схема ключей кеша. Формат фиксирован: записи должны оставаться
// совместимыми между деплоями.
const (
	// AllForMapKey — полный набор локаций для первоначальной загрузки карты.
	AllForMapKey = "locations.all_for_map"

	searchKeyPrefix  = "locations.search:"
	detailsKeyPrefix = "locations.details:"
)

// TTL по классам ключей. Набор для карты живет дольше: меняется реже
// и дороже в сборке.
const (
	SearchTTL  = 15 * time.Minute
	DetailsTTL = 15 * time.Minute
	MapTTL     = time.Hour
)

// SearchKey возвращает ключ кеша результатов поиска по отпечатку критериев.
func SearchKey(fingerprint string) string {
	return searchKeyPrefix + fingerprint
}

// DetailsKey возвращает ключ кеша деталей локации.
func DetailsKey(locationID int64) string {
	return fmt.Sprintf("%s%d", detailsKeyPrefix, locationID)
}
