package main

import (
	"errors"
	"net/http"

	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"

	"shopping.xdoubleu.com/pkg/shoppinglist"
)

type ListsPageData struct {
	Lists []shoppinglist.List
	Error string
}

func (app *Application) listsHandler(w http.ResponseWriter, r *http.Request) {
	token := app.services.Auth.Store().GetToken(r)

	lists, err := app.services.Lists.Refresh(r.Context(), token)
	if err != nil {
		if errors.Is(err, shoppinglist.ErrSessionExpired) {
			app.services.Auth.Store().Clear(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		// keep whatever was rendered before, surface the failure inline
		data := ListsPageData{
			Lists: app.services.Lists.Lists(token),
			Error: err.Error(),
		}
		tpltools.RenderWithPanic(app.tpl, w, "lists.html", data)
		return
	}

	tpltools.RenderWithPanic(app.tpl, w, "lists.html", ListsPageData{
		Lists: lists,
		Error: "",
	})
}

func (app *Application) loginPageHandler(w http.ResponseWriter, r *http.Request) {
	if app.services.Auth.Store().IsAuthenticated(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	tpltools.RenderWithPanic(app.tpl, w, "login.html", nil)
}

func (app *Application) registerPageHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	if app.services.Auth.Store().IsAuthenticated(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	tpltools.RenderWithPanic(app.tpl, w, "register.html", nil)
}
