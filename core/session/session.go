// Package session stores per-shopper landing state between requests.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by Load for missing or expired sessions.
var ErrNotFound = errors.New("session: not found")

// Store keeps raw session payloads by id.
type Store interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Set(ctx context.Context, id string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// Load decodes the session id into dst.
func Load(ctx context.Context, s Store, id string, dst interface{}) error {
	raw, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("session: decode %s: %w", id, err)
	}
	return nil
}

// Save encodes v and stores it under id for ttl.
func Save(ctx context.Context, s Store, id string, v interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("session: encode %s: %w", id, err)
	}
	return s.Set(ctx, id, raw, ttl)
}
