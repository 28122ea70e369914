package repository

import (
	"context"
	"fmt"

	"realtor-listings/internal/data/entity"
	"realtor-listings/pkg/database"

	"go.uber.org/zap"
)

type ImageRepository interface {
	Create(ctx context.Context, image *entity.Image) error
	FindByHomeID(ctx context.Context, homeID int64) ([]*entity.Image, error)
	DeleteByHomeID(ctx context.Context, homeID int64) error
}

type imageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewImageRepository(db database.PgxIface, log *zap.Logger) ImageRepository {
	return &imageRepository{
		db:  db,
		log: log.With(zap.String("repository", "image")),
	}
}

func (r *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	query := `
		INSERT INTO images (url, home_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		image.URL,
		image.HomeID,
		image.CreatedAt,
	).Scan(&image.ID)

	if err != nil {
		r.log.Error("Failed to create image",
			zap.Error(err),
			zap.Int64("home_id", image.HomeID),
		)
		return fmt.Errorf("create image for home %d: %w", image.HomeID, err)
	}

	return nil
}

func (r *imageRepository) FindByHomeID(ctx context.Context, homeID int64) ([]*entity.Image, error) {
	query := `
		SELECT id, url, home_id, created_at
		FROM images
		WHERE home_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, homeID)
	if err != nil {
		r.log.Error("Failed to find images by home",
			zap.Error(err),
			zap.Int64("home_id", homeID),
		)
		return nil, fmt.Errorf("find images for home %d: %w", homeID, err)
	}
	defer rows.Close()

	var images []*entity.Image
	for rows.Next() {
		var image entity.Image
		err := rows.Scan(
			&image.ID,
			&image.URL,
			&image.HomeID,
			&image.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan image row", zap.Error(err))
			return nil, fmt.Errorf("scan image row: %w", err)
		}
		images = append(images, &image)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate images rows: %w", err)
	}

	return images, nil
}

func (r *imageRepository) DeleteByHomeID(ctx context.Context, homeID int64) error {
	query := `DELETE FROM images WHERE home_id = $1`

	_, err := r.db.Exec(ctx, query, homeID)
	if err != nil {
		r.log.Error("Failed to delete images by home",
			zap.Error(err),
			zap.Int64("home_id", homeID),
		)
		return fmt.Errorf("delete images for home %d: %w", homeID, err)
	}

	return nil
}
