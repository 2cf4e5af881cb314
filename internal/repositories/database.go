package repository

import (
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/solistore/digital-storefront/internal/config"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	_ "github.com/lib/pq"
)

type Repositories struct {
	DB       *sql.DB
	User     UserRepository
	Product  ProductRepository
	Category CategoryRepository
	Cart     CartRepository
	Order    OrderRepository
	Deposit  DepositRepository
	Loyalty  LoyaltyRepository
}

func New(cfg *config.Config) (*Repositories, error) {

	// otelsql wraps the pq driver so every query shows up as a span.
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repositories{
		DB:       db,
		User:     NewUserRepo(db),
		Product:  NewProductRepo(db),
		Category: NewCategoryRepo(db),
		Cart:     NewCartRepo(db),
		Order:    NewOrderRepo(db),
		Deposit:  NewDepositRepo(db),
		Loyalty:  NewLoyaltyRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
