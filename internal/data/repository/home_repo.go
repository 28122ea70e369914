package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"realtor-listings/internal/data/entity"
	"realtor-listings/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// HomeFilter is a sparse predicate over listings. A nil field means the
// filter is absent and must not appear in the generated query.
type HomeFilter struct {
	City         *string
	MinPrice     *float64
	MaxPrice     *float64
	PropertyType *entity.PropertyType
}

// NewHomeFilter builds a filter from raw query string values. Empty values
// are skipped; malformed prices and unknown property types fail fast
// instead of being coerced.
func NewHomeFilter(city, minPrice, maxPrice, propertyType string) (HomeFilter, error) {
	var f HomeFilter

	if city != "" {
		f.City = &city
	}

	if minPrice != "" {
		v, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			return HomeFilter{}, fmt.Errorf("invalid minPrice %q", minPrice)
		}
		f.MinPrice = &v
	}

	if maxPrice != "" {
		v, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			return HomeFilter{}, fmt.Errorf("invalid maxPrice %q", maxPrice)
		}
		f.MaxPrice = &v
	}

	if propertyType != "" {
		pt := entity.PropertyType(propertyType)
		if !pt.Valid() {
			return HomeFilter{}, fmt.Errorf("invalid propertyType %q", propertyType)
		}
		f.PropertyType = &pt
	}

	return f, nil
}

// buildWhere renders only the supplied filters into a WHERE clause with
// positional args starting at $1.
func (f HomeFilter) buildWhere() (string, []any) {
	var clauses []string
	var args []any

	if f.City != nil {
		args = append(args, *f.City)
		clauses = append(clauses, fmt.Sprintf("city = $%d", len(args)))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		clauses = append(clauses, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		clauses = append(clauses, fmt.Sprintf("price <= $%d", len(args)))
	}
	if f.PropertyType != nil {
		args = append(args, *f.PropertyType)
		clauses = append(clauses, fmt.Sprintf("property_type = $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

type HomeRepository interface {
	Create(ctx context.Context, home *entity.Home) error
	FindByID(ctx context.Context, id int64) (*entity.Home, error)
	FindAll(ctx context.Context, filter HomeFilter, limit, offset int) ([]*entity.Home, error)
	CountAll(ctx context.Context, filter HomeFilter) (int64, error)
	Update(ctx context.Context, home *entity.Home) error
	Delete(ctx context.Context, id int64) error
}

type homeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHomeRepository(db database.PgxIface, log *zap.Logger) HomeRepository {
	return &homeRepository{
		db:  db,
		log: log.With(zap.String("repository", "home")),
	}
}

func (r *homeRepository) Create(ctx context.Context, home *entity.Home) error {
	query := `
		INSERT INTO homes (realtor_id, address, city, price, property_type,
		                   land_size, number_of_bedrooms, number_of_bathrooms,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		home.RealtorID,
		home.Address,
		home.City,
		home.Price,
		home.PropertyType,
		home.LandSize,
		home.NumberOfBedrooms,
		home.NumberOfBathrooms,
		home.CreatedAt,
		home.UpdatedAt,
	).Scan(&home.ID)

	if err != nil {
		r.log.Error("Failed to create home",
			zap.Error(err),
			zap.Int64("realtor_id", home.RealtorID),
			zap.String("city", home.City),
		)
		return fmt.Errorf("create home: %w", err)
	}

	return nil
}

func (r *homeRepository) FindByID(ctx context.Context, id int64) (*entity.Home, error) {
	query := `
		SELECT id, realtor_id, address, city, price, property_type,
		       land_size, number_of_bedrooms, number_of_bathrooms,
		       created_at, updated_at
		FROM homes
		WHERE id = $1
	`

	var home entity.Home
	err := r.db.QueryRow(ctx, query, id).Scan(
		&home.ID,
		&home.RealtorID,
		&home.Address,
		&home.City,
		&home.Price,
		&home.PropertyType,
		&home.LandSize,
		&home.NumberOfBedrooms,
		&home.NumberOfBathrooms,
		&home.CreatedAt,
		&home.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find home by ID",
			zap.Error(err),
			zap.Int64("home_id", id),
		)
		return nil, fmt.Errorf("find home by ID %d: %w", id, err)
	}

	return &home, nil
}

func (r *homeRepository) FindAll(ctx context.Context, filter HomeFilter, limit, offset int) ([]*entity.Home, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, realtor_id, address, city, price, property_type,
		       land_size, number_of_bedrooms, number_of_bathrooms,
		       created_at, updated_at
		FROM homes`)

	where, args := filter.buildWhere()
	queryBuilder.WriteString(where)

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find homes",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find homes: %w", err)
	}
	defer rows.Close()

	var homes []*entity.Home
	for rows.Next() {
		var home entity.Home
		err := rows.Scan(
			&home.ID,
			&home.RealtorID,
			&home.Address,
			&home.City,
			&home.Price,
			&home.PropertyType,
			&home.LandSize,
			&home.NumberOfBedrooms,
			&home.NumberOfBathrooms,
			&home.CreatedAt,
			&home.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan home row", zap.Error(err))
			return nil, fmt.Errorf("scan home row: %w", err)
		}
		homes = append(homes, &home)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate homes rows: %w", err)
	}

	return homes, nil
}

func (r *homeRepository) CountAll(ctx context.Context, filter HomeFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM homes`

	where, args := filter.buildWhere()
	query += where

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count homes", zap.Error(err))
		return 0, fmt.Errorf("count homes: %w", err)
	}

	return total, nil
}

// Update writes all mutable fields. realtor_id is deliberately absent from
// the SET list so ownership can never change through this path.
func (r *homeRepository) Update(ctx context.Context, home *entity.Home) error {
	query := `
		UPDATE homes
		SET address = $2, city = $3, price = $4, property_type = $5,
		    land_size = $6, number_of_bedrooms = $7, number_of_bathrooms = $8,
		    updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		home.ID,
		home.Address,
		home.City,
		home.Price,
		home.PropertyType,
		home.LandSize,
		home.NumberOfBedrooms,
		home.NumberOfBathrooms,
		home.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update home",
			zap.Error(err),
			zap.Int64("home_id", home.ID),
		)
		return fmt.Errorf("update home %d: %w", home.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("home %d not found", home.ID)
	}

	return nil
}

func (r *homeRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM homes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete home",
			zap.Error(err),
			zap.Int64("home_id", id),
		)
		return fmt.Errorf("delete home %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("home %d not found", id)
	}

	r.log.Info("Home deleted", zap.Int64("home_id", id))
	return nil
}
