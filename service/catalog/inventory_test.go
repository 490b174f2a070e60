package catalog

import (
	"testing"

	catalogEntity "storefront.GO/model/entity/catalog"
	variantRepo "storefront.GO/model/repository/variant"
)

func oracleFor(variants ...catalogEntity.Variant) *Oracle {
	return NewOracle(variantRepo.NewIndex([]catalogEntity.Product{{ID: "p", Variants: variants}}))
}

func TestIsEnforced(t *testing.T) {
	o := oracleFor(
		catalogEntity.Variant{ID: "1", InventoryManagement: "shopify", InventoryPolicy: "deny"},
		catalogEntity.Variant{ID: "2", InventoryManagement: "shopify", InventoryPolicy: "continue"},
		catalogEntity.Variant{ID: "3", InventoryManagement: "", InventoryPolicy: "deny"},
		catalogEntity.Variant{ID: "4", InventoryManagement: "SHOPIFY", InventoryPolicy: "DENY"},
		catalogEntity.Variant{ID: "5", InventoryManagement: "warehouse-app", InventoryPolicy: "deny"},
	)
	cases := []struct {
		id        catalogEntity.ID
		enforced  bool
		wantKnown bool
	}{
		{"1", true, true},
		{"2", false, true},
		{"3", false, true},
		{"4", true, true},
		{"5", false, true},
		{"404", false, false},
	}
	for _, tc := range cases {
		enforced, known := o.IsEnforced(tc.id)
		if enforced != tc.enforced || known != tc.wantKnown {
			t.Errorf("IsEnforced(%s) = %v, %v; want %v, %v", tc.id, enforced, known, tc.enforced, tc.wantKnown)
		}
	}
}

func TestIsEnforced_CustomTrackers(t *testing.T) {
	idx := variantRepo.NewIndex([]catalogEntity.Product{{Variants: []catalogEntity.Variant{
		{ID: "5", InventoryManagement: "warehouse-app", InventoryPolicy: "deny"},
	}}})
	o := NewOracle(idx, "shopify", " warehouse-app ")
	if enforced, _ := o.IsEnforced("5"); !enforced {
		t.Error("IsEnforced with custom tracker: want true")
	}
}
