// Package session holds the access token issued by the shopping list API.
// Policy (is someone signed in?) lives behind the Store interface, the
// cookie mechanics stay in CookieStore.
package session

import (
	"net/http"

	"github.com/xhit/go-str2duration/v2"
)

const TokenCookieName = "accessToken"

type Store interface {
	SetToken(w http.ResponseWriter, token string) error
	GetToken(r *http.Request) string
	Clear(w http.ResponseWriter)
	IsAuthenticated(r *http.Request) bool
}

type CookieStore struct {
	expiry string
	secure bool
}

func NewCookieStore(expiry string, secure bool) *CookieStore {
	return &CookieStore{
		expiry: expiry,
		secure: secure,
	}
}

// SetToken persists the token verbatim, replacing any existing value.
func (store *CookieStore) SetToken(w http.ResponseWriter, token string) error {
	ttl, err := str2duration.ParseDuration(store.expiry)
	if err != nil {
		return err
	}

	cookie := http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		MaxAge:   int(ttl.Seconds()),
		SameSite: http.SameSiteStrictMode,
		HttpOnly: true,
		Secure:   store.secure,
		Path:     "/",
	}

	http.SetCookie(w, &cookie)
	return nil
}

func (store *CookieStore) GetToken(r *http.Request) string {
	cookie, err := r.Cookie(TokenCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func (store *CookieStore) Clear(w http.ResponseWriter) {
	deleteCookie := http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		MaxAge:   -1,
		SameSite: http.SameSiteStrictMode,
		HttpOnly: true,
		Secure:   store.secure,
		Path:     "/",
	}

	http.SetCookie(w, &deleteCookie)
}

// IsAuthenticated only checks presence, the token is never inspected.
func (store *CookieStore) IsAuthenticated(r *http.Request) bool {
	return store.GetToken(r) != ""
}
