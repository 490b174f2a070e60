package sandbox

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	sandboxEntity "storefront.GO/model/entity/sandbox"
)

// ErrLineNotFound is returned for a line position the cart does not have.
var ErrLineNotFound = errors.New("sandbox: line not found")

// ErrUnknownVariant is returned when adding a variant that was never seeded.
var ErrUnknownVariant = errors.New("sandbox: unknown variant")

type SandboxRepository struct {
	db       *gorm.DB
	trackers []string
}

// NewSandboxRepository wraps db. trackers are the inventory providers whose
// tracking is honoured; with none, "shopify" is used.
func NewSandboxRepository(db *gorm.DB, trackers ...string) *SandboxRepository {
	if len(trackers) == 0 {
		trackers = []string{"shopify"}
	}
	return &SandboxRepository{db: db, trackers: trackers}
}

// AutoMigrate creates the sandbox tables.
func (r *SandboxRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&sandboxEntity.Variant{}, &sandboxEntity.CartLine{})
}

// UpsertVariants inserts or replaces variants by id.
func (r *SandboxRepository) UpsertVariants(variants []sandboxEntity.Variant) error {
	if len(variants) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&variants).Error
}

// SetStock updates stock levels by variant id and returns how many were applied.
func (r *SandboxRepository) SetStock(levels map[string]int) (int, error) {
	n := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for id, qty := range levels {
			res := tx.Model(&sandboxEntity.Variant{}).Where("variant_id = ?", id).Update("stock", qty)
			if res.Error != nil {
				return res.Error
			}
			n += int(res.RowsAffected)
		}
		return nil
	})
	return n, err
}

// Variant returns a variant by id.
func (r *SandboxRepository) Variant(id string) (*sandboxEntity.Variant, error) {
	var v sandboxEntity.Variant
	if err := r.db.Where("variant_id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// VariantsByID loads variants keyed by id.
func (r *SandboxRepository) VariantsByID(ids []string) (map[string]sandboxEntity.Variant, error) {
	out := make(map[string]sandboxEntity.Variant, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []sandboxEntity.Variant
	if err := r.db.Where("variant_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, v := range rows {
		out[v.VariantID] = v
	}
	return out, nil
}

// Enforced reports whether stock limits apply to v.
func (r *SandboxRepository) Enforced(v sandboxEntity.Variant) bool {
	if !strings.EqualFold(v.InventoryPolicy, "deny") || v.InventoryManagement == "" {
		return false
	}
	for _, t := range r.trackers {
		if strings.EqualFold(v.InventoryManagement, t) {
			return true
		}
	}
	return false
}

// Lines returns a cart's lines in position order.
func (r *SandboxRepository) Lines(token string) ([]sandboxEntity.CartLine, error) {
	var lines []sandboxEntity.CartLine
	err := r.db.Where("cart_token = ?", token).Order("position ASC, line_id ASC").Find(&lines).Error
	return lines, err
}

// Add puts quantity more of variant id into the cart, merging with an existing line.
// Enforced variants are refused past their stock; the returned bool is false then.
func (r *SandboxRepository) Add(token, id string, quantity int) (bool, error) {
	ok := true
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var v sandboxEntity.Variant
		if err := tx.Where("variant_id = ?", id).First(&v).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownVariant
			}
			return err
		}

		var line sandboxEntity.CartLine
		err := tx.Where("cart_token = ? AND variant_id = ?", token, id).First(&line).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		exists := err == nil

		want := line.Quantity + quantity
		if r.Enforced(v) && want > v.Stock {
			ok = false
			return nil
		}
		if exists {
			return tx.Model(&line).Update("quantity", want).Error
		}

		var maxPos int
		if err := tx.Model(&sandboxEntity.CartLine{}).Where("cart_token = ?", token).
			Select("COALESCE(MAX(position), 0)").Scan(&maxPos).Error; err != nil {
			return err
		}
		return tx.Create(&sandboxEntity.CartLine{
			CartToken: token, VariantID: id, Quantity: want, Position: maxPos + 1,
		}).Error
	})
	return ok, err
}

// Change sets the quantity of the 1-based line, clamping enforced variants to stock.
// Zero removes the line.
func (r *SandboxRepository) Change(token string, line, quantity int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var lines []sandboxEntity.CartLine
		if err := tx.Where("cart_token = ?", token).Order("position ASC, line_id ASC").Find(&lines).Error; err != nil {
			return err
		}
		if line < 1 || line > len(lines) {
			return ErrLineNotFound
		}
		target := lines[line-1]
		if quantity <= 0 {
			return tx.Delete(&target).Error
		}

		var v sandboxEntity.Variant
		if err := tx.Where("variant_id = ?", target.VariantID).First(&v).Error; err == nil && r.Enforced(v) && quantity > v.Stock {
			quantity = v.Stock
		}
		if quantity <= 0 {
			return tx.Delete(&target).Error
		}
		return tx.Model(&target).Update("quantity", quantity).Error
	})
}

// Clear drops every line of the cart.
func (r *SandboxRepository) Clear(token string) error {
	return r.db.Where("cart_token = ?", token).Delete(&sandboxEntity.CartLine{}).Error
}

// Reserved sums the quantity of variant id held across all carts.
func (r *SandboxRepository) Reserved(id string) (int, error) {
	var total int64
	err := r.db.Model(&sandboxEntity.CartLine{}).
		Where("variant_id = ?", id).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return int(total), err
}
