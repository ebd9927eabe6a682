package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mahiganga/marketplace-backend/internal/models"
)

// PostgresStore persists users and vehicles in PostgreSQL. Every operation is
// a single statement, so the database's per-statement atomicity is all the
// consistency the store relies on.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the users and vehicles tables if they don't exist. Users are
// seeded out-of-band; the API never writes to that table.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			username VARCHAR(100) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS vehicles (
			id                SERIAL PRIMARY KEY,
			name              VARCHAR(255) NOT NULL,
			category          VARCHAR(100) NOT NULL,
			price             DOUBLE PRECISION NOT NULL,
			year              INTEGER NOT NULL,
			kilometers        INTEGER NOT NULL,
			fuel_type         VARCHAR(50) NOT NULL,
			finance_available BOOLEAN NOT NULL DEFAULT FALSE,
			images            TEXT[] NOT NULL DEFAULT '{}'
		)
	`)
	return err
}

func (s *PostgresStore) GetUser(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT username, password FROM users WHERE username = $1`, username,
	).Scan(&u.Username, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// ListVehicles returns all vehicles newest first.
func (s *PostgresStore) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, category, price, year, kilometers, fuel_type, finance_available, images
		 FROM vehicles ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Category, &v.Price, &v.Year,
			&v.Kilometers, &v.FuelType, &v.FinanceAvailable, &v.Images); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (s *PostgresStore) GetVehicle(ctx context.Context, id int) (*models.Vehicle, error) {
	var v models.Vehicle
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, category, price, year, kilometers, fuel_type, finance_available, images
		 FROM vehicles WHERE id = $1`, id,
	).Scan(&v.ID, &v.Name, &v.Category, &v.Price, &v.Year,
		&v.Kilometers, &v.FuelType, &v.FinanceAvailable, &v.Images)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return &v, nil
}

// CreateVehicle inserts the vehicle and fills in the database-assigned id.
func (s *PostgresStore) CreateVehicle(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	if v.Images == nil {
		v.Images = []string{}
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO vehicles (name, category, price, year, kilometers, fuel_type, finance_available, images)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		v.Name, v.Category, v.Price, v.Year, v.Kilometers, v.FuelType, v.FinanceAvailable, v.Images,
	).Scan(&v.ID)
	if err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return v, nil
}

// UpdateVehicle shallow-merges the supplied JSON fields over the stored row
// and writes the result back. Fields absent from partial keep their values.
func (s *PostgresStore) UpdateVehicle(ctx context.Context, id int, partial []byte) (*models.Vehicle, error) {
	v, err := s.GetVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(partial, v); err != nil {
		return nil, fmt.Errorf("merge vehicle %d: %w", id, err)
	}
	v.ID = id

	_, err = s.pool.Exec(ctx,
		`UPDATE vehicles
		 SET name = $1, category = $2, price = $3, year = $4, kilometers = $5,
		     fuel_type = $6, finance_available = $7, images = $8
		 WHERE id = $9`,
		v.Name, v.Category, v.Price, v.Year, v.Kilometers, v.FuelType, v.FinanceAvailable, v.Images, id)
	if err != nil {
		return nil, fmt.Errorf("update vehicle: %w", err)
	}
	return v, nil
}

func (s *PostgresStore) DeleteVehicle(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
