package html

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"storefront.GO/core/registry"
	"storefront.GO/core/session"
	"storefront.GO/service/landing"
)

// DefaultSessionCookie names the cookie carrying the shopper's session id.
const DefaultSessionCookie = "sf_session"

// Sessions loads and saves landing state keyed by a cookie.
type Sessions struct {
	Store  session.Store
	Ctl    *landing.Controller
	Cookie string
	TTL    time.Duration
}

// Load returns the caller's session id and state. A missing cookie starts a new
// session; a cookie whose state expired keeps its id but starts over with a fresh
// cart token.
func (s *Sessions) Load(c echo.Context) (string, landing.State) {
	name := s.cookieName()
	if ck, err := c.Cookie(name); err == nil && ck.Value != "" {
		c.Set(registry.KeySessionID, ck.Value)
		var st landing.State
		err := session.Load(c.Request().Context(), s.Store, ck.Value, &st)
		if err == nil {
			s.Ctl.Restore(&st)
			return ck.Value, st
		}
		if !errors.Is(err, session.ErrNotFound) {
			log.Printf("html: session %s: %v", ck.Value, err)
		}
		return ck.Value, s.Ctl.NewState(uuid.NewString())
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.TTL / time.Second),
	})
	c.Set(registry.KeySessionID, id)
	return id, s.Ctl.NewState(uuid.NewString())
}

// Save stores st. Concurrent requests of one session overwrite each other; the last
// to finish wins.
func (s *Sessions) Save(c echo.Context, id string, st landing.State) {
	if err := session.Save(c.Request().Context(), s.Store, id, st, s.TTL); err != nil {
		log.Printf("html: save session %s: %v", id, err)
	}
}

func (s *Sessions) cookieName() string {
	if s.Cookie == "" {
		return DefaultSessionCookie
	}
	return s.Cookie
}
