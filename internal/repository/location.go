package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/location_directory/internal/models"
)

// LocationRepository — доступ к таблице locations через pgx.
// Списочные запросы выбирают только поля для карты: id, titolo, indirizzo,
// latitude, longitude, stato. Детальные поля отдает только GetByID.
type LocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{db: db}
}

// listColumns — проекция для списков и карты.
const listColumns = "id, titolo, indirizzo, latitude, longitude, stato"

// Search выполняет поиск локаций по критериям: подстрока без учета регистра
// по titolo или indirizzo, точное совпадение статуса. Отсутствующий фильтр —
// no-op. Результат всегда упорядочен по titolo.
func (r *LocationRepository) Search(ctx context.Context, criteria models.SearchCriteria) ([]*models.Location, error) {
	query := "SELECT " + listColumns + " FROM locations"
	args := make([]any, 0, 2)
	where := ""

	if criteria.Search != "" {
		args = append(args, "%"+criteria.Search+"%")
		where = fmt.Sprintf(" WHERE (titolo ILIKE $%d OR indirizzo ILIKE $%d)", len(args), len(args))
	}
	if criteria.Stato != "" {
		args = append(args, string(criteria.Stato))
		if where == "" {
			where = fmt.Sprintf(" WHERE stato = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND stato = $%d", len(args))
		}
	}

	query += where + " ORDER BY titolo ASC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}
	defer rows.Close()

	return scanListRows(rows)
}

// AllForMap возвращает полный набор локаций в проекции для карты.
func (r *LocationRepository) AllForMap(ctx context.Context) ([]*models.Location, error) {
	query := "SELECT " + listColumns + " FROM locations ORDER BY titolo ASC;"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations for map: %w", err)
	}
	defer rows.Close()

	return scanListRows(rows)
}

// WithinBounds возвращает локации внутри прямоугольника координат.
// Границы включительные, вычисления расстояний нет — это дешевый
// предфильтр для больших областей карты.
func (r *LocationRepository) WithinBounds(ctx context.Context, bounds models.Bounds) ([]*models.Location, error) {
	query := "SELECT " + listColumns + ` FROM locations
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		ORDER BY titolo ASC;`

	rows, err := r.db.Query(ctx, query, bounds.MinLat, bounds.MaxLat, bounds.MinLng, bounds.MaxLng)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations within bounds: %w", err)
	}
	defer rows.Close()

	return scanListRows(rows)
}

// GetByID возвращает полную запись локации, включая детальные поля.
func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*models.Location, error) {
	location := &models.Location{}
	query := `
		SELECT
			id, titolo, descrizione, indirizzo, latitude, longitude, stato,
			orari_apertura, prezzo_biglietto, sito_web, telefono, note_visitatori,
			created_at, updated_at
		FROM locations
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&location.ID,
		&location.Titolo,
		&location.Descrizione,
		&location.Indirizzo,
		&location.Latitude,
		&location.Longitude,
		&location.Stato,
		&location.OrariApertura,
		&location.PrezzoBiglietto,
		&location.SitoWeb,
		&location.Telefono,
		&location.NoteVisitatori,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &models.LocationNotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to get location by id: %w", err)
	}
	return location, nil
}

// Create вставляет новую локацию. Используется процессами управления
// данными (сидер, админ-инструменты), не HTTP-слоем.
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	if !models.ValidCoordinates(location.Latitude, location.Longitude) {
		return fmt.Errorf("invalid coordinates: lat=%f lng=%f", location.Latitude, location.Longitude)
	}
	if location.Stato == "" {
		location.Stato = models.StatoAttivo
	}
	if !models.IsValidStato(string(location.Stato)) {
		return fmt.Errorf("invalid stato: %q", location.Stato)
	}

	query := `
		INSERT INTO locations (titolo, descrizione, indirizzo, latitude, longitude, stato,
			orari_apertura, prezzo_biglietto, sito_web, telefono, note_visitatori)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		location.Titolo,
		location.Descrizione,
		location.Indirizzo,
		location.Latitude,
		location.Longitude,
		string(location.Stato),
		location.OrariApertura,
		location.PrezzoBiglietto,
		location.SitoWeb,
		location.Telefono,
		location.NoteVisitatori,
	).Scan(&location.ID, &location.CreatedAt, &location.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

// Update обновляет существующую локацию целиком.
func (r *LocationRepository) Update(ctx context.Context, location *models.Location) error {
	if !models.ValidCoordinates(location.Latitude, location.Longitude) {
		return fmt.Errorf("invalid coordinates: lat=%f lng=%f", location.Latitude, location.Longitude)
	}
	if !models.IsValidStato(string(location.Stato)) {
		return fmt.Errorf("invalid stato: %q", location.Stato)
	}

	query := `
		UPDATE locations SET
			titolo = $1,
			descrizione = $2,
			indirizzo = $3,
			latitude = $4,
			longitude = $5,
			stato = $6,
			orari_apertura = $7,
			prezzo_biglietto = $8,
			sito_web = $9,
			telefono = $10,
			note_visitatori = $11,
			updated_at = NOW()
		WHERE id = $12;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		location.Titolo,
		location.Descrizione,
		location.Indirizzo,
		location.Latitude,
		location.Longitude,
		string(location.Stato),
		location.OrariApertura,
		location.PrezzoBiglietto,
		location.SitoWeb,
		location.Telefono,
		location.NoteVisitatori,
		location.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return &models.LocationNotFoundError{ID: location.ID}
	}
	return nil
}

// Delete удаляет локацию.
func (r *LocationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, "DELETE FROM locations WHERE id = $1;", id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return &models.LocationNotFoundError{ID: id}
	}
	return nil
}

func scanListRows(rows pgx.Rows) ([]*models.Location, error) {
	locations := make([]*models.Location, 0)
	for rows.Next() {
		location := &models.Location{}
		err := rows.Scan(
			&location.ID,
			&location.Titolo,
			&location.Indirizzo,
			&location.Latitude,
			&location.Longitude,
			&location.Stato,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return locations, nil
}
