package shoppinglist

import (
	"context"
)

type Client interface {
	WithToken(token string) Client
	Register(ctx context.Context, username string, password string) error
	Login(ctx context.Context, username string, password string) (string, error)
	GetAllLists(ctx context.Context) ([]List, error)
	CreateList(ctx context.Context, createListDto CreateListDto) (*List, error)
	DeleteList(ctx context.Context, listID int64) error
	AddItem(
		ctx context.Context,
		listID int64,
		createItemDto CreateItemDto,
	) (*Item, error)
	ToggleItem(ctx context.Context, listID int64, itemID int64) (*Item, error)
}
