package variant

import (
	"testing"

	"storefront-sync/internal/domain"
)

func TestKeyOrderIndependent(t *testing.T) {
	a := Key("p1", Selection{Dimensions: map[string]string{"color": "red", "size": "M"}})
	b := Key("p1", Selection{Dimensions: map[string]string{"size": "M", "color": "red"}})
	if a != b {
		t.Fatalf("keys differ: %q vs %q", a, b)
	}
}

func TestKeyFoldsShorthandIntoDimensions(t *testing.T) {
	a := Key("p1", Selection{Size: "M", Color: "red"})
	b := Key("p1", Selection{Dimensions: map[string]string{"size": "M", "color": "red"}})
	if a != b {
		t.Fatalf("shorthand key %q != dimension key %q", a, b)
	}
}

func TestKeyNoDimensionsIsProductID(t *testing.T) {
	if got := Key("p1", Selection{}); got != "p1" {
		t.Fatalf("expected bare product id, got %q", got)
	}
}

func TestKeyDistinguishesValues(t *testing.T) {
	a := Key("p1", Selection{Size: "M"})
	b := Key("p1", Selection{Size: "L"})
	if a == b {
		t.Fatalf("expected distinct keys, both %q", a)
	}
}

func TestNormalizeDropsBlanks(t *testing.T) {
	dims := Normalize(Selection{Size: "  ", Dimensions: map[string]string{"fit": "slim", "": "x", "trim": " "}})
	if len(dims) != 1 || dims["fit"] != "slim" {
		t.Fatalf("unexpected dims: %v", dims)
	}
}

func TestNormalizeLowercasesNames(t *testing.T) {
	dims := Normalize(Selection{Dimensions: map[string]string{"Fit": "slim"}})
	if dims["fit"] != "slim" {
		t.Fatalf("unexpected dims: %v", dims)
	}
}

func TestDimensionsEqual(t *testing.T) {
	if !DimensionsEqual(nil, map[string]string{}) {
		t.Fatalf("nil and empty should match")
	}
	if !DimensionsEqual(map[string]string{"size": "M"}, map[string]string{"size": "M"}) {
		t.Fatalf("equal maps should match")
	}
	if DimensionsEqual(map[string]string{"size": "M"}, map[string]string{"size": "L"}) {
		t.Fatalf("different values should not match")
	}
}

func TestMergeLinesSumsQuantities(t *testing.T) {
	merged := MergeLines([]domain.CartLine{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p1", Quantity: 1},
	})
	if len(merged) != 1 {
		t.Fatalf("expected 1 line, got %d", len(merged))
	}
	if merged[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", merged[0].Quantity)
	}
}

func TestMergeLinesKeepsDistinctVariants(t *testing.T) {
	merged := MergeLines([]domain.CartLine{
		{ProductID: "p1", Dimensions: map[string]string{"size": "M"}, Quantity: 1},
		{ProductID: "p1", Dimensions: map[string]string{"size": "L"}, Quantity: 1},
	})
	if len(merged) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(merged))
	}
}

func TestMergeLinesPreservesOrder(t *testing.T) {
	merged := MergeLines([]domain.CartLine{
		{ProductID: "p2", Quantity: 1},
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 4},
	})
	if len(merged) != 2 || merged[0].ProductID != "p2" || merged[1].ProductID != "p1" {
		t.Fatalf("unexpected merge result: %+v", merged)
	}
	if merged[0].Quantity != 5 {
		t.Fatalf("expected first line quantity 5, got %d", merged[0].Quantity)
	}
}
