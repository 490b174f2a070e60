package cart

import (
	"storefront.GO/model/entity/catalog"
)

// LineItem is one row of the remote cart. Lines have no stable identity: a line is
// addressed by its 1-based position in Snapshot.Items, which shifts whenever the
// set of lines changes shape.
type LineItem struct {
	ProductTitle   string     `json:"product_title"`
	VariantTitle   string     `json:"variant_title"`
	VariantID      catalog.ID `json:"variant_id"`
	Quantity       int        `json:"quantity"`
	FinalLinePrice int64      `json:"final_line_price"`
	Image          string     `json:"image"`
}

// Snapshot is the authoritative cart as returned by the remote service. The local
// mirror is always replaced by a whole Snapshot, never patched.
type Snapshot struct {
	Items      []LineItem `json:"items"`
	TotalPrice int64      `json:"total_price"`
}

// Line returns the item at 1-based position line.
func (s *Snapshot) Line(line int) (LineItem, bool) {
	if s == nil || line < 1 || line > len(s.Items) {
		return LineItem{}, false
	}
	return s.Items[line-1], true
}

// IsEmpty reports whether the cart has no lines.
func (s *Snapshot) IsEmpty() bool {
	return s == nil || len(s.Items) == 0
}

// ItemCount sums quantities across lines.
func (s *Snapshot) ItemCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}

// AddRequest is the body of POST /cart/add.
type AddRequest struct {
	ID       interface{} `json:"id"`
	Quantity int         `json:"quantity"`
}

// ChangeRequest is the body of POST /cart/change.
type ChangeRequest struct {
	Line     int `json:"line"`
	Quantity int `json:"quantity"`
}

// ErrorBody is the optional JSON body of a rejected cart request. Status is a
// number on some backends and a string code on others.
type ErrorBody struct {
	Status      interface{} `json:"status,omitempty"`
	Message     string      `json:"message,omitempty"`
	Description string      `json:"description,omitempty"`
}

// Reason prefers the description over the message.
func (b ErrorBody) Reason() string {
	if b.Description != "" {
		return b.Description
	}
	return b.Message
}
