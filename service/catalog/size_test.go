package catalog

import (
	"testing"

	catalogEntity "storefront.GO/model/entity/catalog"
)

func sizedProduct(optionNames []string, variants ...catalogEntity.Variant) catalogEntity.Product {
	return catalogEntity.Product{ID: "p", OptionNames: optionNames, Variants: variants, VariantID: "fallback"}
}

func labels(opts []catalogEntity.SizeOption) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOptionColumn_CaseInsensitive(t *testing.T) {
	p := sizedProduct([]string{"Color", "SiZe"})
	col, ok := OptionColumn(p)
	if !ok || col != 1 {
		t.Errorf("OptionColumn = %d, %v; want 1, true", col, ok)
	}
	if _, ok := OptionColumn(sizedProduct([]string{"Color"})); ok {
		t.Error("OptionColumn without size: want false")
	}
}

func TestSizeOptions_NoSizeColumnIsEmpty(t *testing.T) {
	p := sizedProduct([]string{"Color"}, catalogEntity.Variant{ID: "1", Options: []string{"Red"}, Available: true})
	if got := SizeOptions(p); len(got) != 0 {
		t.Errorf("SizeOptions = %v, want empty", got)
	}
}

func TestSizeOptions_NumericSortAscending(t *testing.T) {
	p := sizedProduct([]string{"Size"},
		catalogEntity.Variant{ID: "10", Options: []string{"10"}, Available: true},
		catalogEntity.Variant{ID: "8", Options: []string{"8"}, Available: true},
		catalogEntity.Variant{ID: "9", Options: []string{"9"}, Available: true},
	)
	got := labels(SizeOptions(p))
	if want := []string{"8", "9", "10"}; !equalStrings(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestSizeOptions_DecimalLabelsSortByValue(t *testing.T) {
	p := sizedProduct([]string{"size"},
		catalogEntity.Variant{ID: "a", Options: []string{"9.5"}},
		catalogEntity.Variant{ID: "b", Options: []string{"10"}},
		catalogEntity.Variant{ID: "c", Options: []string{"8.5"}},
	)
	got := labels(SizeOptions(p))
	if want := []string{"8.5", "9.5", "10"}; !equalStrings(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestSizeOptions_MixedLabelsKeepFirstSeenOrder(t *testing.T) {
	p := sizedProduct([]string{"Size"},
		catalogEntity.Variant{ID: "1", Options: []string{"M"}},
		catalogEntity.Variant{ID: "2", Options: []string{"10"}},
		catalogEntity.Variant{ID: "3", Options: []string{"S"}},
	)
	got := labels(SizeOptions(p))
	if want := []string{"M", "10", "S"}; !equalStrings(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestSizeOptions_DedupeKeepsFirstOccurrence(t *testing.T) {
	p := sizedProduct([]string{"Color", "Size"},
		catalogEntity.Variant{ID: "1", Options: []string{"Red", "M"}, Available: false, PriceText: "$10"},
		catalogEntity.Variant{ID: "2", Options: []string{"Blue", "M"}, Available: true, PriceText: "$12"},
		catalogEntity.Variant{ID: "3", Options: []string{"Red", "L"}, Available: true},
	)
	opts := SizeOptions(p)
	if got := labels(opts); !equalStrings(got, []string{"M", "L"}) {
		t.Fatalf("labels = %v, want [M L]", got)
	}
	m := opts[0]
	if m.VariantID != "1" || m.Available || m.PriceText != "$10" {
		t.Errorf("M option = %+v, want first occurrence (variant 1, unavailable, $10)", m)
	}
}

func TestSizeOptions_SkipsMissingLabels(t *testing.T) {
	p := sizedProduct([]string{"Color", "Size"},
		catalogEntity.Variant{ID: "1", Options: []string{"Red"}, Available: true},
		catalogEntity.Variant{ID: "2", Options: []string{"Red", ""}, Available: true},
		catalogEntity.Variant{ID: "3", Options: []string{"Red", "S"}},
	)
	opts := SizeOptions(p)
	if got := labels(opts); !equalStrings(got, []string{"S"}) {
		t.Fatalf("labels = %v, want [S]", got)
	}
	def, ok := DefaultSelection(opts)
	if !ok || def.VariantID != "3" {
		t.Errorf("DefaultSelection = %+v, want variant 3 (label-less variants never count)", def)
	}
}

func TestDefaultSelection_FirstAvailable(t *testing.T) {
	opts := []catalogEntity.SizeOption{
		{Label: "S", VariantID: "s", Available: false},
		{Label: "M", VariantID: "m", Available: true},
		{Label: "L", VariantID: "l", Available: true},
	}
	got, ok := DefaultSelection(opts)
	if !ok || got.Label != "M" {
		t.Errorf("DefaultSelection = %v, %v; want M", got.Label, ok)
	}
}

func TestDefaultSelection_NoneAvailableFallsBackToFirst(t *testing.T) {
	opts := []catalogEntity.SizeOption{{Label: "S"}, {Label: "M"}}
	got, ok := DefaultSelection(opts)
	if !ok || got.Label != "S" {
		t.Errorf("DefaultSelection = %v, %v; want S", got.Label, ok)
	}
	if _, ok := DefaultSelection(nil); ok {
		t.Error("DefaultSelection(nil): want false")
	}
}

func TestDefaultVariant_FallsBackToProductVariant(t *testing.T) {
	p := sizedProduct(nil, catalogEntity.Variant{ID: "1"})
	if got := DefaultVariant(p); got != "fallback" {
		t.Errorf("DefaultVariant = %q, want fallback", got)
	}
}

func TestFindSizeOption(t *testing.T) {
	opts := []catalogEntity.SizeOption{{Label: "S", VariantID: "11"}, {Label: "M", VariantID: "12"}}
	if o, ok := FindSizeOption(opts, "12"); !ok || o.Label != "M" {
		t.Errorf("FindSizeOption(12) = %v, %v; want M", o.Label, ok)
	}
	if _, ok := FindSizeOption(opts, "13"); ok {
		t.Error("FindSizeOption(13): want false")
	}
}
