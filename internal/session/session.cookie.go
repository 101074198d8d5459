// Package session carries the signed token between client and server as an
// HTTP-only cookie.
package session

import (
	"net/http"
	"time"
)

const CookieName = "session"

// CookieManager sets and clears the session cookie. Clear must use the exact
// same name and attributes as Attach: some clients refuse to delete a cookie
// when the attributes differ.
type CookieManager struct {
	ttl    time.Duration
	secure bool
}

func NewCookieManager(ttl time.Duration, secure bool) *CookieManager {
	return &CookieManager{ttl: ttl, secure: secure}
}

// Attach sets the session cookie with the token, valid for the token's TTL.
func (m *CookieManager) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear instructs the client to delete the session cookie.
func (m *CookieManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
