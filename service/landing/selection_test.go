package landing

import (
	"testing"

	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/catalog"
)

func TestSelectProduct_Cyclic(t *testing.T) {
	cat := testCatalog()
	start := InitialSelection(cat)
	if start.ProductIndex != 0 {
		t.Fatalf("initial index = %d, want 0", start.ProductIndex)
	}
	if got := start.SelectProduct(cat, -1).ProductIndex; got != 2 {
		t.Errorf("SelectProduct(-1) = %d, want 2", got)
	}
	if got := start.SelectProduct(cat, 5).ProductIndex; got != 2 {
		t.Errorf("SelectProduct(5) = %d, want 2", got)
	}
	if got := start.SelectProduct(cat, 3).ProductIndex; got != 0 {
		t.Errorf("SelectProduct(3) = %d, want 0", got)
	}
}

func TestSelectProduct_ResetsToDefaultVariant(t *testing.T) {
	cat := testCatalog()
	tests := []struct {
		index int
		want  catalogEntity.ID
	}{
		{0, "11"}, // S is sold out, M is first available
		{1, "21"},
		{2, "31"}, // no sizes: product fallback
	}
	for _, tt := range tests {
		s := Selection{ProductIndex: 0, SelectedVariantID: "12"}.SelectProduct(cat, tt.index)
		if s.SelectedVariantID != tt.want {
			t.Errorf("SelectProduct(%d).SelectedVariantID = %q, want %q", tt.index, s.SelectedVariantID, tt.want)
		}
	}
}

func TestSelectProduct_EmptyCatalog(t *testing.T) {
	cat := catalog.New(nil)
	s := InitialSelection(cat)
	if s.ProductIndex != NoProduct || !s.SelectedVariantID.IsZero() {
		t.Errorf("selection = %+v, want NoProduct", s)
	}
	if _, ok := s.Product(cat); ok {
		t.Error("Product on empty catalog: want false")
	}
}

func TestSelectSize(t *testing.T) {
	cat := testCatalog()
	s := InitialSelection(cat)

	next, ok := s.SelectSize(cat, "12")
	if !ok || next.SelectedVariantID != "12" {
		t.Errorf("SelectSize(L) = %+v, %v; want 12, true", next, ok)
	}

	// sold out
	same, ok := s.SelectSize(cat, "10")
	if ok || same != s {
		t.Errorf("SelectSize(sold out) = %+v, %v; want unchanged, false", same, ok)
	}

	// belongs to another product
	same, ok = s.SelectSize(cat, "21")
	if ok || same != s {
		t.Errorf("SelectSize(foreign) = %+v, %v; want unchanged, false", same, ok)
	}
}

func TestNormalize(t *testing.T) {
	cat := testCatalog()
	tests := []struct {
		name string
		in   Selection
		want Selection
	}{
		{"valid", Selection{0, "12"}, Selection{0, "12"}},
		{"out of range", Selection{7, "12"}, Selection{0, "11"}},
		{"foreign variant", Selection{1, "12"}, Selection{1, "21"}},
		{"blank variant", Selection{2, ""}, Selection{2, "31"}},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(cat); got != tt.want {
			t.Errorf("%s: Normalize = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}
