package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"

	catalogEntity "storefront.GO/model/entity/catalog"
)

const sizeOptionName = "size"

// OptionColumn returns the position of the "size" option within the product's
// option names, matched case-insensitively.
func OptionColumn(p catalogEntity.Product) (int, bool) {
	for i, name := range p.OptionNames {
		if strings.EqualFold(name, sizeOptionName) {
			return i, true
		}
	}
	return 0, false
}

// SizeOptions derives the purchasable size list for a product. Variants without a
// size label are left out entirely. Labels are unique: the first variant carrying a
// label decides its availability, variant and price. When every label is a number
// the list is ordered ascending by value, otherwise by first occurrence.
func SizeOptions(p catalogEntity.Product) []catalogEntity.SizeOption {
	col, ok := OptionColumn(p)
	if !ok {
		return nil
	}

	seen := make(map[string]struct{}, len(p.Variants))
	opts := make([]catalogEntity.SizeOption, 0, len(p.Variants))
	for _, v := range p.Variants {
		label := v.Option(col)
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		opts = append(opts, catalogEntity.SizeOption{
			Label:     label,
			VariantID: v.ID,
			Available: v.Available,
			PriceText: v.PriceText,
		})
	}

	if len(opts) == 0 {
		return opts
	}
	values := make([]float64, len(opts))
	for i, o := range opts {
		n, ok := numericLabel(o.Label)
		if !ok {
			return opts
		}
		values[i] = n
	}
	sort.Stable(byValue{opts: opts, values: values})
	return opts
}

// DefaultSelection picks the first available option, else the first option.
func DefaultSelection(opts []catalogEntity.SizeOption) (catalogEntity.SizeOption, bool) {
	if len(opts) == 0 {
		return catalogEntity.SizeOption{}, false
	}
	for _, o := range opts {
		if o.Available {
			return o, true
		}
	}
	return opts[0], true
}

// DefaultVariant resolves the variant a product starts out with: the default size
// option when the product has a size list, the product's own fallback otherwise.
func DefaultVariant(p catalogEntity.Product) catalogEntity.ID {
	if o, ok := DefaultSelection(SizeOptions(p)); ok {
		return o.VariantID
	}
	return p.VariantID
}

// FindSizeOption returns the option in opts pointing at id.
func FindSizeOption(opts []catalogEntity.SizeOption, id catalogEntity.ID) (catalogEntity.SizeOption, bool) {
	want := strings.TrimSpace(id.String())
	for _, o := range opts {
		if strings.TrimSpace(o.VariantID.String()) == want {
			return o, true
		}
	}
	return catalogEntity.SizeOption{}, false
}

func numericLabel(label string) (float64, bool) {
	s := strings.TrimSpace(label)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

type byValue struct {
	opts   []catalogEntity.SizeOption
	values []float64
}

func (b byValue) Len() int           { return len(b.opts) }
func (b byValue) Less(i, j int) bool { return b.values[i] < b.values[j] }
func (b byValue) Swap(i, j int) {
	b.opts[i], b.opts[j] = b.opts[j], b.opts[i]
	b.values[i], b.values[j] = b.values[j], b.values[i]
}
