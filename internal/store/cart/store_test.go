package cart

import (
	"testing"

	"storefront-sync/internal/domain"
)

func line(productID string, priceCents int64, dims map[string]string) domain.CartLine {
	return domain.CartLine{
		ProductID:      productID,
		Name:           productID,
		UnitPriceCents: priceCents,
		Dimensions:     dims,
	}
}

func checkAggregates(t *testing.T, s *Store) {
	t.Helper()
	qty := 0
	var cents int64
	for _, l := range s.Items() {
		qty += l.Quantity
		cents += l.UnitPriceCents * int64(l.Quantity)
	}
	if got := s.TotalQuantity(); got != qty {
		t.Fatalf("total quantity %d, want %d", got, qty)
	}
	if got := s.TotalPriceCents(); got != cents {
		t.Fatalf("total price %d, want %d", got, cents)
	}
}

func TestAddMergesSameVariant(t *testing.T) {
	s := New()
	s.Add(line("P1", 100, nil), 1)
	s.Add(line("P1", 100, nil), 1)

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
	checkAggregates(t, s)
}

func TestAddKeepsDistinctVariants(t *testing.T) {
	s := New()
	s.Add(line("P1", 100, map[string]string{"size": "M"}), 1)
	s.Add(line("P1", 100, map[string]string{"size": "L"}), 1)

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].Quantity != 1 || items[1].Quantity != 1 {
		t.Fatalf("expected quantity 1 each, got %+v", items)
	}
	checkAggregates(t, s)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	s := New()
	s.Add(line("P1", 100, nil), 0)
	if got := s.TotalQuantity(); got != 1 {
		t.Fatalf("expected quantity 1, got %d", got)
	}
}

func TestUpdateQuantitySets(t *testing.T) {
	s := New()
	s.Add(line("P1", 250, nil), 1)
	key := s.Items()[0].VariantKey

	s.UpdateQuantity(key, 4)
	if got := s.Items()[0].Quantity; got != 4 {
		t.Fatalf("expected quantity 4, got %d", got)
	}
	checkAggregates(t, s)
}

func TestUpdateQuantityBelowOneRemoves(t *testing.T) {
	s := New()
	s.Add(line("P1", 250, nil), 2)
	key := s.Items()[0].VariantKey

	s.UpdateQuantity(key, 0)
	if len(s.Items()) != 0 {
		t.Fatalf("expected empty cart, got %+v", s.Items())
	}
	checkAggregates(t, s)
}

func TestRemoveAndClear(t *testing.T) {
	s := New()
	s.Add(line("P1", 100, nil), 1)
	s.Add(line("P2", 200, nil), 3)

	s.Remove(s.Items()[0].VariantKey)
	if len(s.Items()) != 1 || s.Items()[0].ProductID != "P2" {
		t.Fatalf("unexpected items after remove: %+v", s.Items())
	}
	checkAggregates(t, s)

	s.Clear()
	if len(s.Items()) != 0 || s.TotalQuantity() != 0 || s.TotalPriceCents() != 0 {
		t.Fatalf("expected empty cart after clear")
	}
}

func TestReplaceAllDedupsInput(t *testing.T) {
	s := New()
	s.ReplaceAll([]domain.CartLine{
		{ProductID: "P1", UnitPriceCents: 100, Quantity: 2},
		{ProductID: "P1", UnitPriceCents: 100, Quantity: 1},
		{ProductID: "P2", UnitPriceCents: 50, Quantity: 1},
	})
	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", items[0].Quantity)
	}
	checkAggregates(t, s)
}

func TestOnChangeFiresPerMutation(t *testing.T) {
	s := New()
	calls := 0
	s.SetOnChange(func() { calls++ })

	s.Add(line("P1", 100, nil), 1)
	s.UpdateQuantity(s.Items()[0].VariantKey, 2)
	s.Remove(s.Items()[0].VariantKey)
	s.Clear()
	s.ReplaceAll(nil)

	if calls != 5 {
		t.Fatalf("expected 5 change notifications, got %d", calls)
	}
}
