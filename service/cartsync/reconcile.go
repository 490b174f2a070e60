package cartsync

import (
	"fmt"

	cartEntity "storefront.GO/model/entity/cart"
	catalogEntity "storefront.GO/model/entity/catalog"
)

// Shopper-facing notices.
const (
	NoticeAddFailed    = "Unable to add item."
	NoticeChangeFailed = "Unable to update quantity."
	NoticeRemoveFailed = "Unable to update cart."
	NoticeLoadFailed   = "Unable to load cart."
	NoticeUnavailable  = "Item unavailable — cart updated."

	// NoticeNotEnforcedAdd is shown before adding a variant whose stock limits the
	// backend does not apply.
	NoticeNotEnforcedAdd = "Stock limits aren't enforced for this item: its variant keeps selling when out of stock or doesn't track quantity."
	// NoticeNotEnforcedChange explains why a quantity was accepted as requested.
	NoticeNotEnforcedChange = "Note: stock limits aren't enforced for this item, so the quantity was accepted as requested."
)

// LimitedStockNotice reports a server-side clamp.
func LimitedStockNotice(actual int) string {
	return fmt.Sprintf("Limited stock — quantity updated to %d.", actual)
}

// EnforcementOracle tells whether stock limits apply to a variant; known is false
// for variants outside the catalog.
type EnforcementOracle interface {
	IsEnforced(id catalogEntity.ID) (enforced bool, known bool)
}

// Reconcile compares a requested line quantity with the cart the service returned
// and explains any divergence. It returns "" when nothing needs saying. The line is
// looked up by position, so a concurrent change elsewhere in the cart can make it
// compare against the wrong row.
func Reconcile(snap *cartEntity.Snapshot, line, requested int, oracle EnforcementOracle) string {
	if requested <= 0 {
		return ""
	}
	item, ok := snap.Line(line)
	if !ok {
		return NoticeUnavailable
	}
	if item.Quantity < requested {
		return LimitedStockNotice(item.Quantity)
	}
	if item.Quantity == requested && oracle != nil {
		if enforced, known := oracle.IsEnforced(item.VariantID); known && !enforced {
			return NoticeNotEnforcedChange
		}
	}
	return ""
}
