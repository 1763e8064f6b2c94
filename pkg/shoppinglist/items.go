package shoppinglist

import (
	"context"
	"fmt"
	"net/http"
)

type Item struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
	Completed bool   `json:"completed"`
}

type CreateItemDto struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

func (client client) AddItem(
	ctx context.Context,
	listID int64,
	createItemDto CreateItemDto,
) (*Item, error) {
	endpoint := fmt.Sprintf("%s%d/items/", ListsEndpoint, listID)

	var item *Item
	err := client.sendRequest(ctx, http.MethodPost, endpoint, createItemDto, &item)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// ToggleItem flips the completion flag server-side. The returned item carries
// the authoritative completed value, the client never computes the flip.
func (client client) ToggleItem(
	ctx context.Context,
	listID int64,
	itemID int64,
) (*Item, error) {
	endpoint := fmt.Sprintf("%s%d/items/%d/", ListsEndpoint, listID, itemID)

	var item *Item
	err := client.sendRequest(ctx, http.MethodPut, endpoint, struct{}{}, &item)
	if err != nil {
		return nil, err
	}

	return item, nil
}
