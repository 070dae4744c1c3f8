package v1

import (
	"github.com/shenikar/location_directory/internal/models"
)

// ModelToListItem преобразует доменную модель в элемент списка для карты
func ModelToListItem(model *models.Location) LocationListItem {
	return LocationListItem{
		ID:        model.ID,
		Titolo:    model.Titolo,
		Indirizzo: model.Indirizzo,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Stato:     string(model.Stato),
	}
}

// ModelsToListItems преобразует слайс моделей в слайс элементов списка
func ModelsToListItems(locations []*models.Location) []LocationListItem {
	items := make([]LocationListItem, len(locations))
	for i, location := range locations {
		items[i] = ModelToListItem(location)
	}
	return items
}

// ModelToDetailsResponse преобразует доменную модель в полный ответ,
// статус разворачивается в объект с метаданными отображения
func ModelToDetailsResponse(model *models.Location) LocationDetailsResponse {
	return LocationDetailsResponse{
		ID:          model.ID,
		Titolo:      model.Titolo,
		Descrizione: model.Descrizione,
		Indirizzo:   model.Indirizzo,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Stato: StatoResponse{
			Value:    string(model.Stato),
			Label:    model.Stato.Label(),
			Color:    model.Stato.Color(),
			CSSClass: model.Stato.CSSClass(),
		},
		OrariApertura:   model.OrariApertura,
		PrezzoBiglietto: model.PrezzoBiglietto,
		SitoWeb:         model.SitoWeb,
		Telefono:        model.Telefono,
		NoteVisitatori:  model.NoteVisitatori,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

// NearbyToItems преобразует результаты поиска поблизости в DTO с расстоянием
func NearbyToItems(nearby []models.NearbyLocation) []NearbyLocationItem {
	items := make([]NearbyLocationItem, len(nearby))
	for i, n := range nearby {
		items[i] = NearbyLocationItem{
			LocationListItem: ModelToListItem(n.Location),
			DistanceKm:       n.DistanceKm,
		}
	}
	return items
}
