package models

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// SearchCriteria — нормализованные параметры поиска локаций.
// Пустая строка означает отсутствие фильтра.
type SearchCriteria struct {
	Search string
	Stato  Stato
}

// NewSearchCriteria нормализует сырой ввод: поисковая строка обрезается
// (пустая схлопывается в отсутствие фильтра), нераспознанный статус
// молча отбрасывается. Ограничение длины поиска (255) — забота
// валидации на границе, не этого слоя.
func NewSearchCriteria(rawSearch, rawStato string) SearchCriteria {
	c := SearchCriteria{
		Search: strings.TrimSpace(rawSearch),
	}
	if stato, ok := ParseStato(rawStato); ok {
		c.Stato = stato
	}
	return c
}

// Fingerprint возвращает детерминированный отпечаток критериев:
// md5 от "search|stato" в нижнем регистре hex (32 символа).
// Используется как компонент ключа кеша, поэтому должен быть
// стабилен между перезапусками процесса.
func (c SearchCriteria) Fingerprint() string {
	sum := md5.Sum([]byte(c.Search + "|" + string(c.Stato)))
	return hex.EncodeToString(sum[:])
}

// HasFilters сообщает, задан ли хотя бы один фильтр.
func (c SearchCriteria) HasFilters() bool {
	return c.Search != "" || c.Stato != ""
}
