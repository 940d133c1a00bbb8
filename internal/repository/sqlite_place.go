package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mariusbk/wander/internal/domain"
)

// SQLitePlaceRepo implements PlaceRepo using a SQLite database.
type SQLitePlaceRepo struct {
	db *sql.DB
}

// NewSQLitePlaceRepo creates a new SQLitePlaceRepo.
func NewSQLitePlaceRepo(db *sql.DB) *SQLitePlaceRepo {
	return &SQLitePlaceRepo{db: db}
}

func (r *SQLitePlaceRepo) Create(ctx context.Context, p *domain.Place) error {
	query := `INSERT INTO places (id, name, location, description, visited, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Location,
		p.Description,
		boolToInt(p.Visited),
		p.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting place: %w", err)
	}
	return nil
}

func (r *SQLitePlaceRepo) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	query := `SELECT id, name, location, description, visited, created_at
		FROM places WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanPlace(row)
}

// List returns all places, newest first. The id tiebreak keeps the
// order stable for rows created within the same nanosecond.
func (r *SQLitePlaceRepo) List(ctx context.Context) ([]*domain.Place, error) {
	query := `SELECT id, name, location, description, visited, created_at
		FROM places ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing places: %w", err)
	}
	defer rows.Close()

	var places []*domain.Place
	for rows.Next() {
		p, err := scanPlaceFromRows(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating places: %w", err)
	}
	return places, nil
}

func (r *SQLitePlaceRepo) SetVisited(ctx context.Context, id string, visited bool) error {
	query := `UPDATE places SET visited = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, boolToInt(visited), id)
	if err != nil {
		return fmt.Errorf("updating place: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating place: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("place not found")
	}
	return nil
}

func (r *SQLitePlaceRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM places WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting place: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting place: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("place not found")
	}
	return nil
}

// scanPlace scans a single place row from a *sql.Row.
func scanPlace(row *sql.Row) (*domain.Place, error) {
	var p domain.Place
	var visited int
	var createdAtStr string

	err := row.Scan(&p.ID, &p.Name, &p.Location, &p.Description, &visited, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("place not found")
		}
		return nil, fmt.Errorf("scanning place: %w", err)
	}

	p.Visited = intToBool(visited)
	p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &p, nil
}

// scanPlaceFromRows scans a place from *sql.Rows during list iteration.
func scanPlaceFromRows(rows *sql.Rows) (*domain.Place, error) {
	var p domain.Place
	var visited int
	var createdAtStr string

	err := rows.Scan(&p.ID, &p.Name, &p.Location, &p.Description, &visited, &createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning place: %w", err)
	}

	p.Visited = intToBool(visited)
	p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &p, nil
}
