package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"

	"shopping.xdoubleu.com/cmd/web/internal/dtos"
	"shopping.xdoubleu.com/pkg/shoppinglist"
)

func createList(t *testing.T, tokenCookie *http.Cookie) shoppinglist.List {
	t.Helper()

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/lists",
	)

	tReq.SetFollowRedirect(false)
	tReq.AddCookie(tokenCookie)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.CreateListDto{
		Name:    "Groceries",
		DueDate: "2024-12-31",
	})

	rs := tReq.Do(t)
	require.Equal(t, http.StatusSeeOther, rs.StatusCode)
	require.Equal(t, "/", rs.Header.Get("Location"))

	lists := testApp.services.Lists.Lists(tokenCookie.Value)
	require.NotEmpty(t, lists)
	return lists[len(lists)-1]
}

func TestCreateListHandler(t *testing.T) {
	tokenCookie := signIn(t)

	list := createList(t, tokenCookie)
	assert.Equal(t, "Groceries", list.Name)
	assert.Equal(t, "2024-12-31", list.DueDate)
	assert.Empty(t, list.Items)
}

func TestAddItemHandler(t *testing.T) {
	tokenCookie := signIn(t)
	list := createList(t, tokenCookie)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		fmt.Sprintf("/lists/%d/items", list.ID),
	)

	tReq.SetFollowRedirect(false)
	tReq.AddCookie(tokenCookie)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.AddItemDto{
		Name:     "Milk",
		Quantity: 2,
		Unit:     "L",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Equal(t, "/", rs.Header.Get("Location"))

	lists := testApp.services.Lists.Lists(tokenCookie.Value)
	var updated *shoppinglist.List
	for i := range lists {
		if lists[i].ID == list.ID {
			updated = &lists[i]
		}
	}

	require.NotNil(t, updated)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Milk", updated.Items[0].Name)
	assert.False(t, updated.Items[0].Completed)
}

func TestAddItemHandlerInvalidQuantity(t *testing.T) {
	tokenCookie := signIn(t)
	list := createList(t, tokenCookie)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		fmt.Sprintf("/lists/%d/items", list.ID),
	)

	tReq.SetFollowRedirect(false)
	tReq.AddCookie(tokenCookie)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.AddItemDto{
		Name:     "Milk",
		Quantity: 0,
		Unit:     "L",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	lists := testApp.services.Lists.Lists(tokenCookie.Value)
	for i := range lists {
		if lists[i].ID == list.ID {
			assert.Empty(t, lists[i].Items)
		}
	}
}

func TestToggleItemHandler(t *testing.T) {
	tokenCookie := signIn(t)
	list := createList(t, tokenCookie)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		fmt.Sprintf("/lists/%d/items", list.ID),
	)

	tReq.SetFollowRedirect(false)
	tReq.AddCookie(tokenCookie)
	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.AddItemDto{
		Name:     "Milk",
		Quantity: 2,
		Unit:     "L",
	})
	tReq.Do(t)

	lists := testApp.services.Lists.Lists(tokenCookie.Value)
	var item shoppinglist.Item
	for i := range lists {
		if lists[i].ID == list.ID {
			require.NotEmpty(t, lists[i].Items)
			item = lists[i].Items[0]
		}
	}

	tReq = test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		fmt.Sprintf("/lists/%d/items/%d/toggle", list.ID, item.ID),
	)

	tReq.SetFollowRedirect(false)
	tReq.AddCookie(tokenCookie)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Equal(t, "/", rs.Header.Get("Location"))

	lists = testApp.services.Lists.Lists(tokenCookie.Value)
	for i := range lists {
		if lists[i].ID == list.ID {
			assert.True(t, lists[i].Items[0].Completed)
			assert.Equal(t, item.Name, lists[i].Items[0].Name)
			assert.Equal(t, item.Quantity, lists[i].Items[0].Quantity)
		}
	}
}

func TestDeleteListHandler(t *testing.T) {
	tokenCookie := signIn(t)
	list := createList(t, tokenCookie)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		fmt.Sprintf("/lists/%d/delete", list.ID),
	)

	tReq.SetFollowRedirect(false)
	tReq.AddCookie(tokenCookie)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Equal(t, "/", rs.Header.Get("Location"))

	for _, l := range testApp.services.Lists.Lists(tokenCookie.Value) {
		assert.NotEqual(t, list.ID, l.ID)
	}
}

func TestListsRoutesRequireAuth(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/lists",
	)

	tReq.SetFollowRedirect(false)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Equal(t, "/login", rs.Header.Get("Location"))
}
