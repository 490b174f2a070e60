package cartsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	cartEntity "storefront.GO/model/entity/cart"
	catalogEntity "storefront.GO/model/entity/catalog"
)

// CartCookie carries the shopper's cart token to the cart service.
const CartCookie = "cart"

// maxErrorBody bounds how much of a rejection body is read looking for a reason.
const maxErrorBody = 64 << 10

// Paths are the cart endpoints relative to the service base URL.
type Paths struct {
	Cart   string
	Add    string
	Change string
}

// DefaultPaths are the Shopify AJAX cart endpoints.
var DefaultPaths = Paths{Cart: "/cart.js", Add: "/cart/add.js", Change: "/cart/change.js"}

// Remote is the cart service as seen by the synchronizer.
type Remote interface {
	Cart(ctx context.Context) (*cartEntity.Snapshot, error)
	Add(ctx context.Context, id catalogEntity.ID, quantity int) error
	Change(ctx context.Context, line, quantity int) (*cartEntity.Snapshot, error)
}

// Client talks JSON to the remote cart service. A Client is safe for concurrent use;
// WithCartToken derives per-shopper copies sharing the same transport.
type Client struct {
	httpClient *http.Client
	baseURL    string
	paths      Paths
	cartToken  string
}

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client. The cart contract sets no
// timeout of its own, so the one on hc is the only one applied.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithPaths overrides the endpoint paths. Empty fields keep their defaults.
func WithPaths(p Paths) ClientOption {
	return func(c *Client) {
		if p.Cart != "" {
			c.paths.Cart = p.Cart
		}
		if p.Add != "" {
			c.paths.Add = p.Add
		}
		if p.Change != "" {
			c.paths.Change = p.Change
		}
	}
}

// NewClient returns a client for the cart service at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		paths:      DefaultPaths,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithCartToken returns a copy of c that identifies the shopper's cart by token.
func (c *Client) WithCartToken(token string) *Client {
	cp := *c
	cp.cartToken = token
	return &cp
}

// Cart reads the current cart.
func (c *Client) Cart(ctx context.Context) (*cartEntity.Snapshot, error) {
	const op = "get cart"
	resp, err := c.do(ctx, http.MethodGet, c.paths.Cart, nil, op)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, op); err != nil {
		return nil, err
	}
	return decodeSnapshot(resp.Body, op)
}

// Add requests quantity more of variant id. The success body is not used: callers
// re-read the cart for authoritative totals.
func (c *Client) Add(ctx context.Context, id catalogEntity.ID, quantity int) error {
	const op = "add to cart"
	body := cartEntity.AddRequest{ID: id.Wire(), Quantity: quantity}
	resp, err := c.do(ctx, http.MethodPost, c.paths.Add, body, op)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, op); err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// Change sets the quantity of the 1-based line. The service answers 200 with the
// full cart even when it clamped the quantity.
func (c *Client) Change(ctx context.Context, line, quantity int) (*cartEntity.Snapshot, error) {
	const op = "change line"
	body := cartEntity.ChangeRequest{Line: line, Quantity: quantity}
	resp, err := c.do(ctx, http.MethodPost, c.paths.Change, body, op)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, op); err != nil {
		return nil, err
	}
	return decodeSnapshot(resp.Body, op)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, op string) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Op: op, Err: err}
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cartToken != "" {
		req.AddCookie(&http.Cookie{Name: CartCookie, Value: c.cartToken})
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	return resp, nil
}

func checkStatus(resp *http.Response, op string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	rej := &RejectedError{Op: op, Status: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(bytes.TrimSpace(raw)) > 0 {
		var eb cartEntity.ErrorBody
		if json.Unmarshal(raw, &eb) == nil {
			rej.Message = strings.TrimSpace(eb.Reason())
		}
	}
	return rej
}

func decodeSnapshot(r io.Reader, op string) (*cartEntity.Snapshot, error) {
	var snap cartEntity.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	if snap.Items == nil {
		snap.Items = []cartEntity.LineItem{}
	}
	return &snap, nil
}
