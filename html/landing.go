package html

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"storefront.GO/html/money"
	"storefront.GO/html/parts"
	"storefront.GO/html/view"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/landing"
)

// LandingPage renders view.Page through the "landing.html" template.
type LandingPage struct {
	Sessions *Sessions
	Money    money.Formatter
}

// Page builds the view for st.
func (l *LandingPage) Page(st landing.State) view.Page {
	ctl := l.Sessions.Ctl
	return view.Build(view.Input{
		Products:      ctl.Catalog().Products(),
		Selection:     st.Selection,
		Cart:          st.Cart,
		SizeChartOpen: st.SizeChartOpen,
		Feedback:      st.Feedback,
		Now:           ctl.Clock().Now(),
		Money:         l.Money,
	})
}

// event mutates state for one shopper action. Returning landing.ErrBusy leaves the
// stored state alone.
type event func(ctx context.Context, c echo.Context, id string, st *landing.State) error

// RegisterLandingHTMLRoutes registers the landing page and its action endpoints.
func RegisterLandingHTMLRoutes(e *echo.Echo, l *LandingPage) {
	ctl := l.Sessions.Ctl

	e.GET("/", func(c echo.Context) error {
		id, st := l.Sessions.Load(c)
		l.Sessions.Save(c, id, st)
		return l.render(c, st)
	})

	g := e.Group("/landing")
	g.POST("/product", l.handle(func(_ context.Context, c echo.Context, _ string, st *landing.State) error {
		if i, ok := formInt(c, "index"); ok {
			ctl.SelectProduct(st, i)
		}
		return nil
	}))
	g.POST("/size", l.handle(func(_ context.Context, c echo.Context, _ string, st *landing.State) error {
		ctl.SelectSize(st, catalogEntity.ID(strings.TrimSpace(c.FormValue("variant"))))
		return nil
	}))
	g.POST("/cart/add", l.handle(func(ctx context.Context, _ echo.Context, id string, st *landing.State) error {
		return ctl.AddToCart(ctx, id, st)
	}))
	g.POST("/cart/open", l.handle(func(ctx context.Context, _ echo.Context, _ string, st *landing.State) error {
		return ctl.OpenCart(ctx, st)
	}))
	closeCart := l.handle(func(_ context.Context, _ echo.Context, _ string, st *landing.State) error {
		ctl.CloseCart(st)
		return nil
	})
	g.POST("/cart/close", closeCart)
	g.POST("/cart/back", closeCart)
	g.POST("/cart/change", l.handle(func(ctx context.Context, c echo.Context, id string, st *landing.State) error {
		line, ok := formInt(c, "line")
		if !ok {
			return nil
		}
		qty, ok := formInt(c, "quantity")
		if !ok {
			return nil
		}
		return ctl.ChangeLine(ctx, id, st, line, qty)
	}))
	g.POST("/cart/remove", l.handle(func(ctx context.Context, c echo.Context, id string, st *landing.State) error {
		if line, ok := formInt(c, "line"); ok {
			return ctl.RemoveLine(ctx, id, st, line)
		}
		return nil
	}))
	g.POST("/sizechart/open", l.handle(func(_ context.Context, _ echo.Context, _ string, st *landing.State) error {
		ctl.OpenSizeChart(st)
		return nil
	}))
	g.POST("/sizechart/close", l.handle(func(_ context.Context, _ echo.Context, _ string, st *landing.State) error {
		ctl.CloseSizeChart(st)
		return nil
	}))
}

// handle loads the session, applies ev, saves and renders. Failures already live in
// the state as notices, so the page is always rendered with 200.
func (l *LandingPage) handle(ev event) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, st := l.Sessions.Load(c)
		if err := ev(c.Request().Context(), c, id, &st); errors.Is(err, landing.ErrBusy) {
			return l.render(c, st)
		}
		l.Sessions.Save(c, id, st)
		return l.render(c, st)
	}
}

func (l *LandingPage) render(c echo.Context, st landing.State) error {
	css, _ := parts.GetCriticalCSS()
	return c.Render(http.StatusOK, "landing.html", map[string]interface{}{
		"Page":        l.Page(st),
		"CriticalCSS": css,
		"AddLabel":    view.AddLabel,
	})
}

func formInt(c echo.Context, name string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(c.FormValue(name)))
	return n, err == nil
}
