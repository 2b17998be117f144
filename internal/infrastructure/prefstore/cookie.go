package prefstore

import (
	"net/http"
	"strings"
	"time"

	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/platform/id"
)

const (
	LanguageCookie   = "lang"
	TournamentCookie = "active_tournament"
	VisitorCookie    = "visitor_id"

	cookieMaxAge = 365 * 24 * time.Hour
	// Longest raw value accepted from a preference cookie.
	maxCookieValue = 64
)

type CookieOptions struct {
	Secure bool
	Domain string
	// IDs mints visitor ids. Defaults to random uuids.
	IDs id.Generator
}

// Cookies reads and writes the visitor preference cookies.
type Cookies struct {
	secure bool
	domain string
	ids    id.Generator
}

func NewCookies(opts CookieOptions) *Cookies {
	ids := opts.IDs
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &Cookies{secure: opts.Secure, domain: strings.TrimSpace(opts.Domain), ids: ids}
}

// ReadLanguage returns the raw lang cookie as a resolver candidate.
func (c *Cookies) ReadLanguage(r *http.Request) *string {
	return readCandidate(r, LanguageCookie)
}

func (c *Cookies) ReadTournament(r *http.Request) *string {
	return readCandidate(r, TournamentCookie)
}

// ReadVisitorID returns the visitor id or "" when the cookie is missing or
// not a uuid.
func (c *Cookies) ReadVisitorID(r *http.Request) string {
	raw := readCandidate(r, VisitorCookie)
	if raw == nil {
		return ""
	}
	visitorID, ok := id.Valid(*raw)
	if !ok {
		return ""
	}
	return visitorID
}

func (c *Cookies) WriteLanguage(w http.ResponseWriter, lang preference.Language) {
	c.write(w, LanguageCookie, lang.String())
}

func (c *Cookies) WriteTournament(w http.ResponseWriter, tournamentID string) {
	c.write(w, TournamentCookie, strings.ToLower(strings.TrimSpace(tournamentID)))
}

// EnsureVisitorID returns the request's visitor id, minting and setting a
// new one when absent. It returns "" only when minting fails, in which case
// preferences stay cookie-only for this request.
func (c *Cookies) EnsureVisitorID(w http.ResponseWriter, r *http.Request) string {
	if visitorID := c.ReadVisitorID(r); visitorID != "" {
		return visitorID
	}
	visitorID, err := c.ids.NewID()
	if err != nil {
		return ""
	}
	c.write(w, VisitorCookie, visitorID)
	return visitorID
}

func (c *Cookies) write(w http.ResponseWriter, name, value string) {
	if w == nil || value == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   c.domain,
		MaxAge:   int(cookieMaxAge.Seconds()),
		Secure:   c.secure,
		HttpOnly: name == VisitorCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func readCandidate(r *http.Request, name string) *string {
	if r == nil {
		return nil
	}
	cookie, err := r.Cookie(name)
	if err != nil {
		return nil
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" || len(value) > maxCookieValue {
		return nil
	}
	return &value
}
