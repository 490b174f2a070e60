// Package view turns landing state into render-ready values. Everything here is a
// pure function of its inputs.
package view

import (
	"time"

	"storefront.GO/html/money"
	cartEntity "storefront.GO/model/entity/cart"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/cartsync"
	"storefront.GO/service/catalog"
	"storefront.GO/service/landing"
)

// Shopper-facing labels.
const (
	EmptyCartText = "Your cart is empty."
	AddLabel      = "Add to cart"
)

// SizeButton is one entry of the size picker.
type SizeButton struct {
	Label     string           `json:"label"`
	VariantID catalogEntity.ID `json:"variantId"`
	Active    bool             `json:"active"`
	Disabled  bool             `json:"disabled"`
}

// CartRow is one cart line with its 1-based position, used to address it.
type CartRow struct {
	Line         int              `json:"line"`
	ProductTitle string           `json:"productTitle"`
	VariantTitle string           `json:"variantTitle,omitempty"`
	VariantID    catalogEntity.ID `json:"variantId"`
	Quantity     int              `json:"quantity"`
	LinePrice    string           `json:"linePrice"`
	Image        string           `json:"image,omitempty"`
}

// Cart is the slide-over panel.
type Cart struct {
	Open      bool      `json:"open"`
	Rows      []CartRow `json:"rows"`
	Empty     bool      `json:"empty"`
	EmptyText string    `json:"emptyText,omitempty"`
	Subtotal  string    `json:"subtotal"`
	ItemCount int       `json:"itemCount"`
	Notice    string    `json:"notice,omitempty"`
}

// Thumb is a gallery thumbnail.
type Thumb struct {
	Index  int    `json:"index"`
	Image  string `json:"image"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// Page is the whole landing page. Empty pages render nothing.
type Page struct {
	Empty             bool             `json:"empty"`
	ProductIndex      int              `json:"productIndex"`
	PrevIndex         int              `json:"prevIndex"`
	NextIndex         int              `json:"nextIndex"`
	Title             string           `json:"title"`
	PriceText         string           `json:"priceText"`
	HeroImage         string           `json:"heroImage"`
	Thumbs            []Thumb          `json:"thumbs"`
	Sizes             []SizeButton     `json:"sizes"`
	SelectedVariantID catalogEntity.ID `json:"selectedVariantId,omitempty"`
	FeatureLines      []string         `json:"featureLines"`
	ModelLines        []string         `json:"modelLines"`
	AddLabel          string           `json:"addLabel"`
	FeedbackMillis    int64            `json:"feedbackMillis,omitempty"`
	SizeChartOpen     bool             `json:"sizeChartOpen"`
	Cart              Cart             `json:"cart"`
}

// Input is what a page is built from.
type Input struct {
	Products      []catalogEntity.Product
	Selection     landing.Selection
	Cart          cartsync.View
	SizeChartOpen bool
	Feedback      landing.Feedback
	Now           time.Time
	Money         money.Formatter
}

// Build renders the page.
func Build(in Input) Page {
	n := len(in.Products)
	idx := in.Selection.ProductIndex
	if n == 0 || idx < 0 || idx >= n {
		return Page{Empty: true}
	}
	p := in.Products[idx]
	opts := catalog.SizeOptions(p)

	page := Page{
		ProductIndex:      idx,
		PrevIndex:         (idx - 1 + n) % n,
		NextIndex:         (idx + 1) % n,
		Title:             p.Title,
		PriceText:         PriceText(p, opts, in.Selection.SelectedVariantID),
		HeroImage:         p.Image(),
		Thumbs:            Thumbs(in.Products, idx),
		Sizes:             SizeButtons(opts, in.Selection.SelectedVariantID),
		SelectedVariantID: in.Selection.SelectedVariantID,
		AddLabel:          AddLabel,
		SizeChartOpen:     in.SizeChartOpen && len(opts) > 0,
		Cart:              BuildCart(in.Cart, in.Money),
	}
	page.FeatureLines, page.ModelLines = InfoColumns(p)
	if kind := in.Feedback.At(in.Now); kind != landing.FeedbackNone {
		page.AddLabel = string(kind)
		page.FeedbackMillis = in.Feedback.Remaining(in.Now).Milliseconds()
	}
	return page
}

// PriceText is the selected size's price, falling back to the product's.
func PriceText(p catalogEntity.Product, opts []catalogEntity.SizeOption, selected catalogEntity.ID) string {
	if o, ok := catalog.FindSizeOption(opts, selected); ok && o.PriceText != "" {
		return o.PriceText
	}
	return p.PriceText
}

// SizeButtons marks the selected option active and sold-out options disabled.
func SizeButtons(opts []catalogEntity.SizeOption, selected catalogEntity.ID) []SizeButton {
	out := make([]SizeButton, 0, len(opts))
	for _, o := range opts {
		out = append(out, SizeButton{
			Label:     o.Label,
			VariantID: o.VariantID,
			Active:    o.VariantID == selected,
			Disabled:  !o.Available,
		})
	}
	return out
}

// Thumbs lists one thumbnail per product.
func Thumbs(products []catalogEntity.Product, active int) []Thumb {
	out := make([]Thumb, len(products))
	for i, p := range products {
		out[i] = Thumb{Index: i, Image: p.Image(), Title: p.Title, Active: i == active}
	}
	return out
}

// InfoColumns derives the features column from the description HTML and the model
// column from the model info text.
func InfoColumns(p catalogEntity.Product) (features, model []string) {
	return catalog.HTMLLines(p.DescriptionHTML), catalog.SplitLines(p.ModelInfo)
}

// CartRows numbers the lines from 1 in server order.
func CartRows(snap *cartEntity.Snapshot, f money.Formatter) []CartRow {
	if snap.IsEmpty() {
		return []CartRow{}
	}
	f = money.Or(f)
	rows := make([]CartRow, len(snap.Items))
	for i, it := range snap.Items {
		rows[i] = CartRow{
			Line:         i + 1,
			ProductTitle: it.ProductTitle,
			VariantTitle: it.VariantTitle,
			VariantID:    it.VariantID,
			Quantity:     it.Quantity,
			LinePrice:    f.Format(it.FinalLinePrice),
			Image:        it.Image,
		}
	}
	return rows
}

// Subtotal is the server's total; an empty cart shows zero.
func Subtotal(snap *cartEntity.Snapshot, f money.Formatter) string {
	f = money.Or(f)
	if snap.IsEmpty() {
		return f.Format(0)
	}
	return f.Format(snap.TotalPrice)
}

// BuildCart renders the cart panel.
func BuildCart(v cartsync.View, f money.Formatter) Cart {
	c := Cart{
		Open:      v.Open,
		Rows:      CartRows(v.Cart, f),
		Empty:     v.Cart.IsEmpty(),
		Subtotal:  Subtotal(v.Cart, f),
		ItemCount: v.Cart.ItemCount(),
		Notice:    v.Notice,
	}
	if c.Empty {
		c.EmptyText = EmptyCartText
	}
	return c
}
