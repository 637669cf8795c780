package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
)

type ProductRequestRepository interface {
	Create(ctx context.Context, request *models.ProductRequest) error
	GetByID(ctx context.Context, id int64) (*models.ProductRequest, error)
	List(ctx context.Context, page, size int) ([]*models.ProductRequest, int, error)
	ListByVariant(ctx context.Context, variantID int64) ([]*models.ProductRequest, error)
}

type productRequestRepository struct {
	DB *sql.DB
}

func NewProductRequestRepo(db *sql.DB) ProductRequestRepository {
	return &productRequestRepository{DB: db}
}

func (r *productRequestRepository) Create(ctx context.Context, request *models.ProductRequest) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO product_requests (variant_id, email)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	if err := r.DB.QueryRowContext(dbCtx, query, request.VariantID, request.Email).Scan(&request.ID, &request.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert product request: %w", err)
	}

	return nil
}

func (r *productRequestRepository) GetByID(ctx context.Context, id int64) (*models.ProductRequest, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	request := &models.ProductRequest{}

	err := r.DB.QueryRowContext(dbCtx, `SELECT id, variant_id, email, created_at FROM product_requests WHERE id = $1`, id).
		Scan(&request.ID, &request.VariantID, &request.Email, &request.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return request, nil
}

func (r *productRequestRepository) List(ctx context.Context, page, size int) ([]*models.ProductRequest, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM product_requests`).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `
		SELECT id, variant_id, email, created_at
		FROM product_requests
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	requests, err := scanProductRequests(rows)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *productRequestRepository) ListByVariant(ctx context.Context, variantID int64) ([]*models.ProductRequest, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, variant_id, email, created_at
		FROM product_requests
		WHERE variant_id = $1
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, variantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list product requests: %w", err)
	}
	defer rows.Close()

	return scanProductRequests(rows)
}

func scanProductRequests(rows *sql.Rows) ([]*models.ProductRequest, error) {
	requests := []*models.ProductRequest{}

	for rows.Next() {
		request := &models.ProductRequest{}

		if err := rows.Scan(&request.ID, &request.VariantID, &request.Email, &request.CreatedAt); err != nil {
			return nil, err
		}

		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
