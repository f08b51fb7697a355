package wishlist

import (
	"context"

	"storefront-sync/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context, ownerID string) ([]domain.WishlistEntry, error) {
	const q = `
SELECT kind, product_id, variant_id, dimensions, name, price_cents, image, saved_at
FROM wishlist_entries
WHERE owner_id = $1
ORDER BY saved_at ASC
`
	rows, err := r.pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WishlistEntry
	for rows.Next() {
		var e domain.WishlistEntry
		if err := rows.Scan(
			&e.Kind,
			&e.ProductID,
			&e.VariantID,
			&e.Dimensions,
			&e.Name,
			&e.PriceCents,
			&e.Image,
			&e.SavedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *postgresRepo) Insert(ctx context.Context, ownerID string, entry domain.WishlistEntry) error {
	const q = `
INSERT INTO wishlist_entries (id, owner_id, kind, product_id, variant_id, dimensions, name, price_cents, image)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	_, err := r.pool.Exec(ctx, q,
		uuid.NewString(),
		ownerID,
		string(entry.Kind),
		entry.ProductID,
		entry.VariantID,
		entry.Dimensions,
		entry.Name,
		entry.PriceCents,
		entry.Image,
	)
	return err
}

// Delete removes entries for a product; with a variantID only that
// variant's snapshots go, otherwise every entry for the product goes.
func (r *postgresRepo) Delete(ctx context.Context, ownerID, productID, variantID string) error {
	if variantID != "" {
		_, err := r.pool.Exec(ctx, `
DELETE FROM wishlist_entries
WHERE owner_id = $1 AND product_id = $2 AND variant_id = $3
`, ownerID, productID, variantID)
		return err
	}
	_, err := r.pool.Exec(ctx, `
DELETE FROM wishlist_entries
WHERE owner_id = $1 AND product_id = $2
`, ownerID, productID)
	return err
}

func (r *postgresRepo) Clear(ctx context.Context, ownerID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM wishlist_entries WHERE owner_id = $1`, ownerID)
	return err
}
