package main

import (
	"errors"
	"net/http"
	"strconv"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"

	"shopping.xdoubleu.com/cmd/web/internal/dtos"
	"shopping.xdoubleu.com/cmd/web/internal/jobs"
)

func (app *Application) listsRoutes(mux *http.ServeMux) {
	mux.HandleFunc(
		"POST /lists",
		app.services.Auth.Access(app.createListHandler),
	)
	mux.HandleFunc(
		"POST /lists/{id}/items",
		app.services.Auth.Access(app.addItemHandler),
	)
	mux.HandleFunc(
		"GET /lists/{id}/items/{itemID}/toggle",
		app.services.Auth.Access(app.toggleItemHandler),
	)
	mux.HandleFunc(
		"GET /lists/{id}/delete",
		app.services.Auth.Access(app.deleteListHandler),
	)
}

func (app *Application) createListHandler(w http.ResponseWriter, r *http.Request) {
	var createListDto dtos.CreateListDto

	err := httptools.ReadForm(r, &createListDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	if ok, errs := createListDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	token := app.services.Auth.Store().GetToken(r)
	_, err = app.services.Lists.CreateList(r.Context(), token, &createListDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	app.services.WebSocket.NotifyChanged(jobs.ResyncJobID)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *Application) addItemHandler(w http.ResponseWriter, r *http.Request) {
	listID, err := app.urlParamInt64(r, "id")
	if err != nil {
		panic(err)
	}

	var addItemDto dtos.AddItemDto

	err = httptools.ReadForm(r, &addItemDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	if ok, errs := addItemDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	if addItemDto.Quantity <= 0 {
		httptools.RedirectWithError(w, r, "/",
			errors.New("quantity must be greater than zero"))
		return
	}

	token := app.services.Auth.Store().GetToken(r)
	_, err = app.services.Lists.AddItem(r.Context(), token, listID, &addItemDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	app.services.WebSocket.NotifyChanged(jobs.ResyncJobID)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *Application) toggleItemHandler(w http.ResponseWriter, r *http.Request) {
	listID, err := app.urlParamInt64(r, "id")
	if err != nil {
		panic(err)
	}

	itemID, err := app.urlParamInt64(r, "itemID")
	if err != nil {
		panic(err)
	}

	token := app.services.Auth.Store().GetToken(r)
	_, err = app.services.Lists.ToggleItem(r.Context(), token, listID, itemID)
	if err != nil {
		// a 401 here intentionally doesn't clear the session, only the
		// initial fetch does
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	app.services.WebSocket.NotifyChanged(jobs.ResyncJobID)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *Application) deleteListHandler(w http.ResponseWriter, r *http.Request) {
	listID, err := app.urlParamInt64(r, "id")
	if err != nil {
		panic(err)
	}

	token := app.services.Auth.Store().GetToken(r)
	err = app.services.Lists.DeleteList(r.Context(), token, listID)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	app.services.WebSocket.NotifyChanged(jobs.ResyncJobID)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *Application) urlParamInt64(r *http.Request, name string) (int64, error) {
	value, err := parse.URLParam[string](r, name, nil)
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(value, 10, 64)
}
