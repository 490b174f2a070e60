package catalog

import (
	"strings"

	catalogEntity "storefront.GO/model/entity/catalog"
	variantRepo "storefront.GO/model/repository/variant"
)

// DefaultTracker is the inventory provider whose tracking the backend honours.
const DefaultTracker = "shopify"

const denyPolicy = "deny"

// Oracle guesses from variant flags whether the backend actually enforces stock
// limits. The flags are an incomplete proxy for the backend's behaviour: the answer
// is only used to explain what the cart did, never to block a cart operation.
type Oracle struct {
	index    *variantRepo.Index
	trackers []string
}

// NewOracle returns an oracle over idx. With no trackers given DefaultTracker is used.
func NewOracle(idx *variantRepo.Index, trackers ...string) *Oracle {
	clean := make([]string, 0, len(trackers))
	for _, t := range trackers {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	if len(clean) == 0 {
		clean = []string{DefaultTracker}
	}
	return &Oracle{index: idx, trackers: clean}
}

// IsEnforced reports whether stock limits apply to the variant. known is false when
// the variant is not in the catalog.
func (o *Oracle) IsEnforced(id catalogEntity.ID) (enforced bool, known bool) {
	if o == nil {
		return false, false
	}
	v, ok := o.index.Lookup(id)
	if !ok {
		return false, false
	}
	return o.tracked(v) && strings.EqualFold(v.InventoryPolicy, denyPolicy), true
}

func (o *Oracle) tracked(v catalogEntity.Variant) bool {
	if v.InventoryManagement == "" {
		return false
	}
	for _, t := range o.trackers {
		if strings.EqualFold(v.InventoryManagement, t) {
			return true
		}
	}
	return false
}
