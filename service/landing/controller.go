// Package landing owns the shopper's page state and applies landing-page events
// to it: gallery navigation, size picks, cart actions and overlays.
package landing

import (
	"context"
	"errors"
	"log"
	"strconv"

	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/cartsync"
	"storefront.GO/service/catalog"
)

// ErrBusy is returned when the same action is already running for the session.
var ErrBusy = errors.New("landing: action already in flight")

// Action names, also used as Guard keys.
const (
	ActionAdd    = "cart:add"
	ActionChange = "cart:change"
	ActionRemove = "cart:remove"
)

// State is everything one shopper's page shows. It is loaded and saved whole per
// request.
type State struct {
	Selection     Selection     `json:"selection"`
	Cart          cartsync.View `json:"cart"`
	SizeChartOpen bool          `json:"sizeChartOpen"`
	Feedback      Feedback      `json:"feedback"`
	CartToken     string        `json:"cartToken"`
}

// RemoteFactory returns the cart service bound to a shopper's cart token.
type RemoteFactory func(cartToken string) cartsync.Remote

// Controller applies events to a State. It is shared by all sessions.
type Controller struct {
	catalog  *catalog.Catalog
	remotes  RemoteFactory
	clock    Clock
	feedback FeedbackDurations
	guard    *Guard
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(ctl *Controller) {
		if c != nil {
			ctl.clock = c
		}
	}
}

// WithFeedback sets the label lifetimes. Zero fields keep their defaults.
func WithFeedback(d FeedbackDurations) Option {
	return func(ctl *Controller) {
		if d.Added > 0 {
			ctl.feedback.Added = d.Added
		}
		if d.Error > 0 {
			ctl.feedback.Error = d.Error
		}
	}
}

// WithGuard shares an in-flight guard.
func WithGuard(g *Guard) Option {
	return func(ctl *Controller) {
		if g != nil {
			ctl.guard = g
		}
	}
}

// NewController returns a controller over cat.
func NewController(cat *catalog.Catalog, remotes RemoteFactory, opts ...Option) *Controller {
	ctl := &Controller{
		catalog:  cat,
		remotes:  remotes,
		clock:    SystemClock{},
		feedback: DefaultFeedbackDurations(),
		guard:    NewGuard(),
	}
	for _, opt := range opts {
		opt(ctl)
	}
	return ctl
}

// Catalog returns the catalog the controller serves.
func (ctl *Controller) Catalog() *catalog.Catalog { return ctl.catalog }

// Clock returns the controller's clock.
func (ctl *Controller) Clock() Clock { return ctl.clock }

// NewState returns the initial state for a new shopper holding cartToken.
func (ctl *Controller) NewState(cartToken string) State {
	return State{Selection: InitialSelection(ctl.catalog), CartToken: cartToken}
}

// Restore fixes up saved state against the current catalog.
func (ctl *Controller) Restore(st *State) {
	st.Selection = st.Selection.Normalize(ctl.catalog)
}

// Empty reports whether there is nothing to show. No event makes network calls then.
func (ctl *Controller) Empty() bool { return ctl.catalog.Len() == 0 }

// SelectProduct navigates the gallery. Notices and the size chart belong to the
// previous product and are dropped.
func (ctl *Controller) SelectProduct(st *State, i int) {
	if ctl.Empty() {
		return
	}
	st.Selection = st.Selection.SelectProduct(ctl.catalog, i)
	st.Cart.SetNotice("")
	st.SizeChartOpen = false
}

// SelectSize picks a size. An invalid pick changes nothing.
func (ctl *Controller) SelectSize(st *State, id catalogEntity.ID) bool {
	next, ok := st.Selection.SelectSize(ctl.catalog, id)
	if !ok {
		return false
	}
	st.Selection = next
	st.Cart.SetNotice("")
	return true
}

// AddToCart adds one unit of the selected variant and starts the add label.
func (ctl *Controller) AddToCart(ctx context.Context, session string, st *State) error {
	p, ok := st.Selection.Product(ctl.catalog)
	if !ok {
		return nil
	}
	id := st.Selection.SelectedVariantID
	if id.IsZero() {
		id = p.VariantID
	}
	if id.IsZero() {
		return nil
	}

	release, ok := ctl.guard.Acquire(session, ActionAdd)
	if !ok {
		return ErrBusy
	}
	defer release()

	err := ctl.sync(st).AddToCart(ctx, &st.Cart, id)
	now := ctl.clock.Now()
	if err != nil {
		log.Printf("landing: add %s: %v", id, err)
		st.Feedback = ctl.feedback.Show(FeedbackError, now)
		return err
	}
	st.Feedback = ctl.feedback.Show(FeedbackAdded, now)
	return nil
}

// OpenCart shows the cart panel with fresh contents.
func (ctl *Controller) OpenCart(ctx context.Context, st *State) error {
	if ctl.Empty() {
		return nil
	}
	err := ctl.sync(st).OpenCart(ctx, &st.Cart)
	if err != nil {
		log.Printf("landing: open cart: %v", err)
	}
	return err
}

// CloseCart hides the cart panel. The back control does the same.
func (ctl *Controller) CloseCart(st *State) {
	ctl.sync(st).CloseCart(&st.Cart)
}

// ChangeLine sets the quantity of a 1-based cart line. Lines below 1 are ignored.
func (ctl *Controller) ChangeLine(ctx context.Context, session string, st *State, line, quantity int) error {
	if ctl.Empty() || line < 1 {
		return nil
	}
	release, ok := ctl.guard.Acquire(session, ActionChange+":"+strconv.Itoa(line))
	if !ok {
		return ErrBusy
	}
	defer release()

	err := ctl.sync(st).ChangeLine(ctx, &st.Cart, line, quantity)
	if err != nil {
		log.Printf("landing: change line %d to %d: %v", line, quantity, err)
	}
	return err
}

// RemoveLine drops a 1-based cart line.
func (ctl *Controller) RemoveLine(ctx context.Context, session string, st *State, line int) error {
	if ctl.Empty() || line < 1 {
		return nil
	}
	release, ok := ctl.guard.Acquire(session, ActionRemove+":"+strconv.Itoa(line))
	if !ok {
		return ErrBusy
	}
	defer release()

	err := ctl.sync(st).RemoveLine(ctx, &st.Cart, line)
	if err != nil {
		log.Printf("landing: remove line %d: %v", line, err)
	}
	return err
}

// OpenSizeChart shows the size chart. Products without sizes have no chart.
func (ctl *Controller) OpenSizeChart(st *State) {
	p, ok := st.Selection.Product(ctl.catalog)
	if !ok || len(catalog.SizeOptions(p)) == 0 {
		return
	}
	st.SizeChartOpen = true
}

// CloseSizeChart hides the size chart.
func (ctl *Controller) CloseSizeChart(st *State) {
	st.SizeChartOpen = false
}

func (ctl *Controller) sync(st *State) *cartsync.Synchronizer {
	return cartsync.NewSynchronizer(ctl.remotes(st.CartToken), ctl.catalog.Oracle())
}
