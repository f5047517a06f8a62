package repository

import (
	"context"
	_ "embed"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Migrate creates the flights and bookings tables when missing.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, schemaSQL)
	return domain.WrapStore("apply schema", err)
}
