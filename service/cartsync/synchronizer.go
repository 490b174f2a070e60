// Package cartsync keeps a shopper's local cart mirror in step with a remote cart
// service that may clamp, reject or silently accept requested changes.
package cartsync

import (
	"context"
	"log"
	"strings"

	cartEntity "storefront.GO/model/entity/cart"
	catalogEntity "storefront.GO/model/entity/catalog"
)

// View is the cart state a shopper sees: the mirrored cart, whether the cart panel
// is open and the single active notice. Only the Synchronizer writes Cart, and
// always by replacing it with a whole snapshot.
type View struct {
	Cart   *cartEntity.Snapshot `json:"cart,omitempty"`
	Open   bool                 `json:"open"`
	Notice string               `json:"notice,omitempty"`
}

// SetNotice replaces the active notice; blank text clears it.
func (v *View) SetNotice(msg string) {
	v.Notice = strings.TrimSpace(msg)
}

// Synchronizer performs cart operations against a Remote and converts what the
// service did into notices on a View. Errors are returned for logging only; by the
// time a method returns the View already reflects the failure.
type Synchronizer struct {
	remote Remote
	oracle EnforcementOracle
}

// NewSynchronizer returns a synchronizer. oracle may be nil, in which case no
// enforcement explanations are produced.
func NewSynchronizer(remote Remote, oracle EnforcementOracle) *Synchronizer {
	return &Synchronizer{remote: remote, oracle: oracle}
}

// FetchCart re-reads the cart and replaces the mirror.
func (s *Synchronizer) FetchCart(ctx context.Context, v *View) error {
	snap, err := s.remote.Cart(ctx)
	if err != nil {
		return err
	}
	v.Cart = snap
	return nil
}

// OpenCart shows the cart panel with freshly fetched contents.
func (s *Synchronizer) OpenCart(ctx context.Context, v *View) error {
	v.Open = true
	v.SetNotice("")
	if err := s.FetchCart(ctx, v); err != nil {
		v.SetNotice(NoticeLoadFailed)
		return err
	}
	return nil
}

// CloseCart hides the cart panel.
func (s *Synchronizer) CloseCart(v *View) {
	v.Open = false
	v.SetNotice("")
}

// AddToCart adds one unit of id. On success the panel opens and the cart is
// re-read; the add response itself is never rendered. On failure the panel is left
// as it was and the notice carries the service's reason when it gave one.
func (s *Synchronizer) AddToCart(ctx context.Context, v *View, id catalogEntity.ID) error {
	v.SetNotice("")
	if s.oracle != nil {
		if enforced, known := s.oracle.IsEnforced(id); known && !enforced {
			v.SetNotice(NoticeNotEnforcedAdd)
		}
	}

	if err := s.remote.Add(ctx, id, 1); err != nil {
		v.SetNotice(Reason(err, NoticeAddFailed))
		return err
	}

	v.Open = true
	if err := s.FetchCart(ctx, v); err != nil {
		v.SetNotice(NoticeLoadFailed)
		return err
	}
	return nil
}

// ChangeLine sets the quantity of a 1-based line; negative requests are sent as 0.
// The returned cart replaces the mirror and is compared with the request to explain
// clamps, disappeared lines and unenforced stock. After any failure the cart is
// re-read once so the mirror never keeps optimistic state.
func (s *Synchronizer) ChangeLine(ctx context.Context, v *View, line, requested int) error {
	return s.change(ctx, v, line, requested, NoticeChangeFailed)
}

// RemoveLine is ChangeLine(line, 0).
func (s *Synchronizer) RemoveLine(ctx context.Context, v *View, line int) error {
	return s.change(ctx, v, line, 0, NoticeRemoveFailed)
}

func (s *Synchronizer) change(ctx context.Context, v *View, line, requested int, failure string) error {
	if requested < 0 {
		requested = 0
	}
	v.SetNotice("")

	snap, err := s.remote.Change(ctx, line, requested)
	if err != nil {
		v.SetNotice(Reason(err, failure))
		if ferr := s.FetchCart(ctx, v); ferr != nil {
			log.Printf("cartsync: resync after failed change: %v", ferr)
		}
		return err
	}

	v.Cart = snap
	v.SetNotice(Reconcile(snap, line, requested, s.oracle))
	return nil
}
