// Package sandbox is a development stand-in for the remote cart service. It speaks
// the same JSON contract, clamps enforced variants to stock and lets unenforced ones
// oversell, so every storefront notice can be reproduced locally.
package sandbox

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	cartEntity "storefront.GO/model/entity/cart"
	catalogEntity "storefront.GO/model/entity/catalog"
	sandboxEntity "storefront.GO/model/entity/sandbox"
	sandboxRepo "storefront.GO/model/repository/sandbox"
	"storefront.GO/service/cartsync"
)

const cartError = "Cart Error"

// RegisterRoutes mounts the cart endpoints, with and without the .js suffix.
func RegisterRoutes(e *echo.Echo, repo *sandboxRepo.SandboxRepository) {
	h := &handler{repo: repo}
	for _, suffix := range []string{"", ".js"} {
		e.GET("/cart"+suffix, h.cart)
		e.POST("/cart/add"+suffix, h.add)
		e.POST("/cart/change"+suffix, h.change)
	}
}

type handler struct {
	repo *sandboxRepo.SandboxRepository
}

func (h *handler) cart(c echo.Context) error {
	snap, err := h.snapshot(cartToken(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody(http.StatusInternalServerError, err.Error()))
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *handler) add(c echo.Context) error {
	var body struct {
		ID       catalogEntity.ID `json:"id"`
		Quantity int              `json:"quantity"`
	}
	if err := c.Bind(&body); err != nil || body.ID.IsZero() {
		return c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Parameter Missing or Invalid: id"))
	}
	if body.Quantity <= 0 {
		body.Quantity = 1
	}

	token := cartToken(c)
	id := body.ID.String()
	ok, err := h.repo.Add(token, id, body.Quantity)
	switch {
	case errors.Is(err, sandboxRepo.ErrUnknownVariant):
		return c.JSON(http.StatusNotFound, errorBody(http.StatusNotFound, "Cannot find variant"))
	case err != nil:
		return c.JSON(http.StatusInternalServerError, errorBody(http.StatusInternalServerError, err.Error()))
	case !ok:
		v, _ := h.repo.Variant(id)
		return c.JSON(http.StatusUnprocessableEntity, errorBody(http.StatusUnprocessableEntity, soldOutReason(v)))
	}

	snap, err := h.snapshot(token)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody(http.StatusInternalServerError, err.Error()))
	}
	for _, it := range snap.Items {
		if it.VariantID.String() == id {
			return c.JSON(http.StatusOK, it)
		}
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *handler) change(c echo.Context) error {
	var body struct {
		Line     int `json:"line"`
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "no valid id or line parameter"))
	}
	if body.Quantity < 0 {
		body.Quantity = 0
	}

	token := cartToken(c)
	if err := h.repo.Change(token, body.Line, body.Quantity); err != nil {
		if errors.Is(err, sandboxRepo.ErrLineNotFound) {
			return c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "no valid id or line parameter"))
		}
		return c.JSON(http.StatusInternalServerError, errorBody(http.StatusInternalServerError, err.Error()))
	}
	snap, err := h.snapshot(token)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody(http.StatusInternalServerError, err.Error()))
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *handler) snapshot(token string) (*cartEntity.Snapshot, error) {
	lines, err := h.repo.Lines(token)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(lines))
	for i, l := range lines {
		ids[i] = l.VariantID
	}
	variants, err := h.repo.VariantsByID(ids)
	if err != nil {
		return nil, err
	}

	snap := &cartEntity.Snapshot{Items: make([]cartEntity.LineItem, 0, len(lines))}
	for _, l := range lines {
		v := variants[l.VariantID]
		price := v.PriceCents * int64(l.Quantity)
		snap.Items = append(snap.Items, cartEntity.LineItem{
			ProductTitle:   v.ProductTitle,
			VariantTitle:   v.VariantTitle,
			VariantID:      catalogEntity.ID(l.VariantID),
			Quantity:       l.Quantity,
			FinalLinePrice: price,
			Image:          v.Image,
		})
		snap.TotalPrice += price
	}
	return snap, nil
}

// cartToken identifies the caller's cart, issuing a new token when none was sent.
func cartToken(c echo.Context) string {
	if ck, err := c.Cookie(cartsync.CartCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	token := uuid.NewString()
	c.SetCookie(&http.Cookie{Name: cartsync.CartCookie, Value: token, Path: "/", HttpOnly: true})
	return token
}

func errorBody(status int, description string) cartEntity.ErrorBody {
	return cartEntity.ErrorBody{Status: status, Message: cartError, Description: description}
}

func soldOutReason(v *sandboxEntity.Variant) string {
	if v == nil {
		return "This item is sold out."
	}
	title := strings.TrimSpace(v.ProductTitle + " - " + v.VariantTitle)
	title = strings.TrimSuffix(title, " -")
	if v.Stock <= 0 {
		return title + " is sold out."
	}
	return "All " + strconv.Itoa(v.Stock) + " " + title + " are in your cart."
}
