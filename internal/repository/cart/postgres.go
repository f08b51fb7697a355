package cart

import (
	"context"

	"storefront-sync/internal/domain"
	"storefront-sync/internal/variant"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetLines(ctx context.Context, ownerID string) ([]domain.CartLine, error) {
	const q = `
SELECT variant_key, product_id, name, unit_price_cents, quantity, dimensions, image
FROM cart_lines
WHERE owner_id = $1
ORDER BY pos ASC
`
	rows, err := r.pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(
			&line.VariantKey,
			&line.ProductID,
			&line.Name,
			&line.UnitPriceCents,
			&line.Quantity,
			&line.Dimensions,
			&line.Image,
		); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ReplaceLines swaps the owner's entire list in one transaction. Input is
// deduped first so the unique (owner_id, variant_key) constraint can
// never trip on a racy payload.
func (r *postgresRepo) ReplaceLines(ctx context.Context, ownerID string, lines []domain.CartLine) ([]domain.CartLine, error) {
	merged := variant.MergeLines(lines)

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE owner_id = $1`, ownerID); err != nil {
		return nil, err
	}
	const insert = `
INSERT INTO cart_lines (owner_id, variant_key, product_id, name, unit_price_cents, quantity, dimensions, image, pos)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	for i, line := range merged {
		if line.Quantity < 1 {
			continue
		}
		if _, err := tx.Exec(ctx, insert,
			ownerID,
			line.VariantKey,
			line.ProductID,
			line.Name,
			line.UnitPriceCents,
			line.Quantity,
			line.Dimensions,
			line.Image,
			i,
		); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetLines(ctx, ownerID)
}

func (r *postgresRepo) Clear(ctx context.Context, ownerID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_lines WHERE owner_id = $1`, ownerID)
	return err
}
