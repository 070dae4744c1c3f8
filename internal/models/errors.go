package models

import "fmt"

// LocationNotFoundError возвращается, когда локация с запрошенным id
// не существует. Несет id, чтобы граница HTTP могла отличить это
// состояние от пустого результата.
type LocationNotFoundError struct {
	ID int64
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("location with id %d not found", e.ID)
}
