package sandbox

import (
	"encoding/json"
	"strconv"
	"strings"

	catalogEntity "storefront.GO/model/entity/catalog"
	sandboxEntity "storefront.GO/model/entity/sandbox"
	sandboxRepo "storefront.GO/model/repository/sandbox"
)

// Seed loads every catalog variant into the sandbox. Available variants start with
// stock units, unavailable ones with none; inventory flags are copied as-is.
func Seed(repo *sandboxRepo.SandboxRepository, products []catalogEntity.Product, stock int) (int, error) {
	var rows []sandboxEntity.Variant
	for _, p := range products {
		for _, v := range p.Variants {
			if v.ID.IsZero() {
				continue
			}
			rows = append(rows, variantRow(p, v, stock))
		}
	}
	return len(rows), repo.UpsertVariants(rows)
}

func variantRow(p catalogEntity.Product, v catalogEntity.Variant, stock int) sandboxEntity.Variant {
	opts, _ := json.Marshal(v.Options)
	title := v.Title
	if title == "" {
		title = strings.Join(v.Options, " / ")
	}
	price := v.PriceText
	if price == "" {
		price = p.PriceText
	}
	qty := 0
	if v.Available {
		qty = stock
	}
	return sandboxEntity.Variant{
		VariantID:           v.ID.String(),
		ProductTitle:        p.Title,
		VariantTitle:        title,
		Options:             opts,
		PriceCents:          PriceCents(price),
		Image:               p.Image(),
		Stock:               qty,
		InventoryManagement: v.InventoryManagement,
		InventoryPolicy:     v.InventoryPolicy,
	}
}

// PriceCents reads a display price such as "$1,234.50" or "1.234,50 €" as minor
// units. The last '.' or ',' followed by exactly two digits is the decimal mark.
func PriceCents(text string) int64 {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	whole, frac := s, ""
	if i := strings.LastIndexAny(s, ".,"); i >= 0 && len(s)-i-1 == 2 {
		whole, frac = s[:i], s[i+1:]
	}
	whole = strings.NewReplacer(".", "", ",", "").Replace(whole)
	if whole == "" {
		whole = "0"
	}
	if frac == "" {
		frac = "00"
	}
	n, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
