package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"

	"shopping.xdoubleu.com/cmd/web/internal/dtos"
	"shopping.xdoubleu.com/internal/session"
)

func TestSignInHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/login",
	)

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.SignInDto{
		Username: "testuser",
		Password: "password123",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Equal(t, "/", rs.Header.Get("Location"))

	var tokenCookie *http.Cookie
	for _, cookie := range rs.Cookies() {
		if cookie.Name == session.TokenCookieName {
			tokenCookie = cookie
		}
	}

	require.NotNil(t, tokenCookie)
	assert.NotEmpty(t, tokenCookie.Value)
}

func TestSignInHandlerInvalidCredentials(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/login",
	)

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.SignInDto{
		Username: "testuser",
		Password: "wrong",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	// no token on failure
	for _, cookie := range rs.Cookies() {
		assert.NotEqual(t, session.TokenCookieName, cookie.Name)
	}
}

func TestRegisterHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/register",
	)

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.RegisterDto{
		Username: "newuser",
		Password: "password123",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Equal(t, "/login", rs.Header.Get("Location"))
}

func TestRegisterHandlerUsernameTaken(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/register",
	)

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.RegisterDto{
		Username: "taken",
		Password: "password123",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Contains(t, rs.Header.Get("Location"), "/register")
}

func TestSignOutHandler(t *testing.T) {
	tokenCookie := signIn(t)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/logout",
	)

	tReq.SetFollowRedirect(false)
	tReq.AddCookie(tokenCookie)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Equal(t, "/login", rs.Header.Get("Location"))

	var deleteCookie *http.Cookie
	for _, cookie := range rs.Cookies() {
		if cookie.Name == session.TokenCookieName {
			deleteCookie = cookie
		}
	}

	require.NotNil(t, deleteCookie)
	assert.Empty(t, deleteCookie.Value)
	assert.Negative(t, deleteCookie.MaxAge)
}
