package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
)

type VenueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVenueRepo(db *dbpg.DB) *VenueRepository {
	return &VenueRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	query := `INSERT INTO venues (organization_id, name, capacity, form_field_data)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		venue.OrganizationID, venue.Name, venue.Capacity, venue.FormFieldData,
	)
	if err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}

	if err = row.Scan(&venue.ID, &venue.CreatedAt, &venue.UpdatedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrVenueTaken
		}
		return fmt.Errorf("scan venue: %w", err)
	}

	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, organizationID, id int64) (*domain.Venue, error) {
	query := `SELECT id, organization_id, name, capacity, form_field_data, created_at, updated_at
			  FROM venues
			  WHERE organization_id = $1 AND id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, organizationID, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	var v domain.Venue
	if err = row.Scan(
		&v.ID, &v.OrganizationID, &v.Name, &v.Capacity,
		&v.FormFieldData, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("scan venue: %w", err)
	}

	return &v, nil
}

func (r *VenueRepository) List(ctx context.Context, organizationID int64) ([]*domain.Venue, error) {
	query := `SELECT id, organization_id, name, capacity, form_field_data, created_at, updated_at
			  FROM venues
			  WHERE organization_id = $1
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var res []*domain.Venue
	for rows.Next() {
		var v domain.Venue
		if err = rows.Scan(
			&v.ID, &v.OrganizationID, &v.Name, &v.Capacity,
			&v.FormFieldData, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}
