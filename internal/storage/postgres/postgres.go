package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"promptGallery/internal/config"
	"promptGallery/internal/models"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	const schema = `
        CREATE TABLE IF NOT EXISTS images (
            id UUID PRIMARY KEY,
            url TEXT NOT NULL,
            prompt TEXT NOT NULL,
            width INTEGER NOT NULL DEFAULT 0,
            height INTEGER NOT NULL DEFAULT 0,
            latency BIGINT NOT NULL DEFAULT 0,
            is_favorite BOOLEAN NOT NULL DEFAULT FALSE,
            deleted BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create images table: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) SaveImage(ctx context.Context, params models.ImageParams) (*models.Image, error) {
	const op = "storage.postgres.SaveImage"

	imageID := uuid.New()

	query := `
        INSERT INTO images (id, url, prompt, width, height, latency)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, url, prompt, width, height, latency, is_favorite, deleted, created_at`

	var image models.Image

	err := s.DB.QueryRowContext(ctx, query,
		imageID,
		params.URL,
		params.Prompt,
		params.Width,
		params.Height,
		params.Latency,
	).Scan(
		&image.ID,
		&image.URL,
		&image.Prompt,
		&image.Width,
		&image.Height,
		&image.Latency,
		&image.IsFavorite,
		&image.Deleted,
		&image.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &image, nil
}

// ListImages returns all records that are not soft-deleted, newest first.
func (s *Storage) ListImages(ctx context.Context) ([]models.Image, error) {
	const op = "storage.postgres.ListImages"

	query := `
        SELECT id, url, prompt, width, height, latency, is_favorite, deleted, created_at
        FROM images
        WHERE NOT deleted
        ORDER BY created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	images := make([]models.Image, 0)

	for rows.Next() {
		var image models.Image
		if err = rows.Scan(
			&image.ID,
			&image.URL,
			&image.Prompt,
			&image.Width,
			&image.Height,
			&image.Latency,
			&image.IsFavorite,
			&image.Deleted,
			&image.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		images = append(images, image)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return images, nil
}

func (s *Storage) GetImage(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	const op = "storage.postgres.GetImage"

	query := `
        SELECT id, url, prompt, width, height, latency, is_favorite, deleted, created_at
        FROM images
        WHERE id = $1 AND NOT deleted`

	image := &models.Image{}

	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&image.ID,
		&image.URL,
		&image.Prompt,
		&image.Width,
		&image.Height,
		&image.Latency,
		&image.IsFavorite,
		&image.Deleted,
		&image.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: image with ID %s not found: %w", op, id, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return image, nil
}

// ToggleFavorite flips is_favorite in a single UPDATE so concurrent toggles
// of the same record serialize on the database row lock.
func (s *Storage) ToggleFavorite(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	const op = "storage.postgres.ToggleFavorite"

	query := `
        UPDATE images
        SET is_favorite = NOT is_favorite
        WHERE id = $1 AND NOT deleted
        RETURNING id, url, prompt, width, height, latency, is_favorite, deleted, created_at`

	image := &models.Image{}

	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&image.ID,
		&image.URL,
		&image.Prompt,
		&image.Width,
		&image.Height,
		&image.Latency,
		&image.IsFavorite,
		&image.Deleted,
		&image.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: image with ID %s not found: %w", op, id, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return image, nil
}

// DeleteImage soft-deletes a record. The row is kept and only flagged;
// an already-deleted or unknown id reports not found.
func (s *Storage) DeleteImage(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteImage"

	query := `
        UPDATE images
        SET deleted = TRUE
        WHERE id = $1 AND NOT deleted`

	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: image with ID %s not found: %w", op, id, sql.ErrNoRows)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
