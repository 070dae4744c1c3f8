package models

import "strings"

// Stato — статус локации. Закрытое множество из трех значений,
// в БД хранится как строка.
type Stato string

const (
	StatoAttivo    Stato = "attivo"
	StatoDisattivo Stato = "disattivo"
	StatoInAllarme Stato = "in_allarme"
)

// statoOrder задает стабильный порядок значений для StatoValues.
var statoOrder = []Stato{StatoAttivo, StatoDisattivo, StatoInAllarme}

// StatoValues возвращает все сырые значения статуса в фиксированном порядке.
func StatoValues() []string {
	values := make([]string, len(statoOrder))
	for i, s := range statoOrder {
		values[i] = string(s)
	}
	return values
}

// ParseStato разбирает сырое значение статуса. Нераспознанный ввод
// не является ошибкой: возвращается ok=false (мягкая нормализация).
func ParseStato(raw string) (Stato, bool) {
	switch Stato(strings.TrimSpace(raw)) {
	case StatoAttivo:
		return StatoAttivo, true
	case StatoDisattivo:
		return StatoDisattivo, true
	case StatoInAllarme:
		return StatoInAllarme, true
	}
	return "", false
}

// IsValidStato проверяет, входит ли значение в перечисление.
func IsValidStato(raw string) bool {
	_, ok := ParseStato(raw)
	return ok
}

// Label возвращает отображаемую подпись статуса.
func (s Stato) Label() string {
	switch s {
	case StatoAttivo:
		return "Attivo"
	case StatoDisattivo:
		return "Disattivo"
	case StatoInAllarme:
		return "In Allarme"
	}
	return string(s)
}

// Color возвращает hex-цвет маркера для статуса.
func (s Stato) Color() string {
	switch s {
	case StatoAttivo:
		return "#10B981"
	case StatoDisattivo:
		return "#9CA3AF"
	case StatoInAllarme:
		return "#EF4444"
	}
	return ""
}

// CSSClass возвращает css-класс для отображения статуса.
func (s Stato) CSSClass() string {
	switch s {
	case StatoAttivo:
		return "success"
	case StatoDisattivo:
		return "muted"
	case StatoInAllarme:
		return "danger"
	}
	return ""
}
