// PrinceMahmood | 2026
// cookie.go

package auth

import (
	"net/http"
	"time"
)

// CookieWriter issues and clears the session cookie. Browsers on a different
// origin only send the cookie cross-site when SameSite=None and Secure are
// set, which is why production gets different attributes than local dev.
type CookieWriter struct {
	name       string
	production bool
}

func NewCookieWriter(name string, production bool) *CookieWriter {
	return &CookieWriter{name: name, production: production}
}

func (c *CookieWriter) Set(w http.ResponseWriter, token string, maxAge time.Duration) {
	http.SetCookie(w, c.build(token, int(maxAge.Seconds())))
}

// Clear expires the cookie immediately. The attributes must match the ones
// used when setting it or the browser treats it as a different cookie.
func (c *CookieWriter) Clear(w http.ResponseWriter) {
	http.SetCookie(w, c.build("", -1))
}

func (c *CookieWriter) Name() string {
	return c.name
}

func (c *CookieWriter) build(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if c.production {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     c.name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.production,
		SameSite: sameSite,
	}
}
