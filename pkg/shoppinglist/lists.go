package shoppinglist

import (
	"context"
	"fmt"
	"net/http"
)

const ListsEndpoint = "shopping-lists/"

type List struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	DueDate string `json:"due_date"`
	Items   []Item `json:"items"`
}

type CreateListDto struct {
	Name    string `json:"name"`
	DueDate string `json:"due_date"`
}

func (client client) GetAllLists(ctx context.Context) ([]List, error) {
	var lists []List
	err := client.sendRequest(ctx, http.MethodGet, ListsEndpoint, nil, &lists)
	if err != nil {
		return nil, err
	}

	return lists, nil
}

func (client client) CreateList(
	ctx context.Context,
	createListDto CreateListDto,
) (*List, error) {
	var list *List
	err := client.sendRequest(
		ctx,
		http.MethodPost,
		ListsEndpoint,
		createListDto,
		&list,
	)
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (client client) DeleteList(ctx context.Context, listID int64) error {
	endpoint := fmt.Sprintf("%s%d/", ListsEndpoint, listID)
	return client.sendRequest(ctx, http.MethodDelete, endpoint, nil, nil)
}
