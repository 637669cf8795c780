package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schema string

type Repository struct {
	DB             *sql.DB
	Basket         BasketRepository
	Variant        VariantRepository
	Order          OrderRepository
	ProductRequest ProductRequestRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)
	utils.SetDBTimeout(cfg.Database.QueryTimeout)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewWithDB(db), nil
}

func NewWithDB(db *sql.DB) *Repository {
	return &Repository{
		DB:             db,
		Basket:         NewBasketRepo(db),
		Variant:        NewVariantRepo(db),
		Order:          NewOrderRepo(db),
		ProductRequest: NewProductRequestRepo(db),
	}
}

// EnsureSchema creates missing tables and indexes. Every statement is idempotent.
func (p *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := p.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
