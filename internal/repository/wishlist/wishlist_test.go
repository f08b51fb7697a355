package wishlist

import (
	"context"
	"os"
	"testing"

	"storefront-sync/internal/domain"
	"storefront-sync/internal/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE wishlist_entries`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}

func TestPostgres_InsertAndList(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool)
	entry := domain.WishlistEntry{
		Kind:       domain.EntrySnapshot,
		ProductID:  "p1",
		VariantID:  "v1",
		Dimensions: map[string]string{"size": "M"},
		Name:       "Shirt",
		PriceCents: 1999,
	}
	if err := repo.Insert(ctx, "guest:w1", entry); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	entries, err := repo.List(ctx, "guest:w1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	got := entries[0]
	if got.Kind != domain.EntrySnapshot || got.VariantID != "v1" || got.PriceCents != 1999 {
		t.Fatalf("entry not round-tripped: %+v", got)
	}
	if got.SavedAt.IsZero() {
		t.Fatal("saved_at should be set by the database")
	}
}

func TestPostgres_DeleteScopesByVariant(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool)
	owner := "guest:w2"
	for _, v := range []string{"v1", "v2"} {
		if err := repo.Insert(ctx, owner, domain.WishlistEntry{Kind: domain.EntrySnapshot, ProductID: "p1", VariantID: v}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	if err := repo.Delete(ctx, owner, "p1", "v1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	entries, err := repo.List(ctx, owner)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].VariantID != "v2" {
		t.Fatalf("expected only v2 to remain, got %+v", entries)
	}

	if err := repo.Delete(ctx, owner, "p1", ""); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	entries, err = repo.List(ctx, owner)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("unscoped delete should remove the rest, got %+v", entries)
	}
}

func TestPostgres_Clear(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool)
	if err := repo.Insert(ctx, "guest:w3", domain.WishlistEntry{Kind: domain.EntryReference, ProductID: "p1"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := repo.Insert(ctx, "guest:w4", domain.WishlistEntry{Kind: domain.EntryReference, ProductID: "p1"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := repo.Clear(ctx, "guest:w3"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	entries, err := repo.List(ctx, "guest:w3")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty wishlist, got %+v", entries)
	}
	other, err := repo.List(ctx, "guest:w4")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(other) != 1 {
		t.Fatalf("other owner's wishlist should survive, got %+v", other)
	}
}
