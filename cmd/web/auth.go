package main

import (
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"

	"shopping.xdoubleu.com/cmd/web/internal/dtos"
)

func (app *Application) authRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /login", app.signInHandler)
	mux.HandleFunc("POST /register", app.registerHandler)
	mux.HandleFunc("GET /logout", app.signOutHandler)
}

func (app *Application) signInHandler(w http.ResponseWriter, r *http.Request) {
	var signInDto dtos.SignInDto

	err := httptools.ReadForm(r, &signInDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/login", err)
		return
	}

	if ok, errs := signInDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	token, err := app.services.Auth.SignIn(r.Context(), &signInDto)
	if err != nil {
		// failed attempts leave the session untouched
		httptools.RedirectWithError(w, r, "/login", err)
		return
	}

	err = app.services.Auth.Store().SetToken(w, token)
	if err != nil {
		httptools.RedirectWithError(w, r, "/login", err)
		return
	}

	app.services.Auth.SetSentryUser(r.Context(), signInDto.Username)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *Application) registerHandler(w http.ResponseWriter, r *http.Request) {
	var registerDto dtos.RegisterDto

	err := httptools.ReadForm(r, &registerDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/register", err)
		return
	}

	if ok, errs := registerDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	err = app.services.Auth.Register(r.Context(), &registerDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/register", err)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (app *Application) signOutHandler(w http.ResponseWriter, r *http.Request) {
	token := app.services.Auth.Store().GetToken(r)
	if token != "" {
		app.services.Lists.Forget(token)
	}

	app.services.Auth.Store().Clear(w)

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
