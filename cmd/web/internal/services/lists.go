package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"shopping.xdoubleu.com/cmd/web/internal/dtos"
	"shopping.xdoubleu.com/pkg/shoppinglist"
)

// ListService keeps the in-memory shopping list collection per session
// token, the single source of truth for rendering. The collection only
// changes once the server confirms an operation, never speculatively.
type ListService struct {
	logger *slog.Logger
	client shoppinglist.Client

	mu          sync.Mutex
	collections map[string][]shoppinglist.List
}

// Refresh replaces the whole collection with the server's response. A 401
// invalidates the session: the cached state is dropped and ErrSessionExpired
// tells the caller to clear the token and redirect to login. Any other
// failure leaves the collection untouched.
func (service *ListService) Refresh(
	ctx context.Context,
	token string,
) ([]shoppinglist.List, error) {
	lists, err := service.client.WithToken(token).GetAllLists(ctx)
	if err != nil {
		if shoppinglist.IsUnauthorized(err) {
			service.Forget(token)
			return nil, shoppinglist.ErrSessionExpired
		}

		return nil, err
	}

	service.mu.Lock()
	defer service.mu.Unlock()
	service.collections[token] = lists

	return lists, nil
}

// Lists returns the current snapshot without contacting the server.
func (service *ListService) Lists(token string) []shoppinglist.List {
	service.mu.Lock()
	defer service.mu.Unlock()

	return service.collections[token]
}

func (service *ListService) CreateList(
	ctx context.Context,
	token string,
	createListDto *dtos.CreateListDto,
) (*shoppinglist.List, error) {
	list, err := service.client.WithToken(token).CreateList(
		ctx,
		shoppinglist.CreateListDto{
			Name:    createListDto.Name,
			DueDate: createListDto.DueDate,
		},
	)
	if err != nil {
		return nil, err
	}

	service.mu.Lock()
	defer service.mu.Unlock()
	service.collections[token] = append(service.collections[token], *list)

	return list, nil
}

func (service *ListService) AddItem(
	ctx context.Context,
	token string,
	listID int64,
	addItemDto *dtos.AddItemDto,
) (*shoppinglist.Item, error) {
	item, err := service.client.WithToken(token).AddItem(
		ctx,
		listID,
		shoppinglist.CreateItemDto{
			Name:     addItemDto.Name,
			Quantity: addItemDto.Quantity,
			Unit:     addItemDto.Unit,
		},
	)
	if err != nil {
		return nil, err
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	lists := service.collections[token]
	for i := range lists {
		if lists[i].ID == listID {
			lists[i].Items = append(lists[i].Items, *item)
			return item, nil
		}
	}

	// stale local state, the server accepted the item anyway
	service.logger.Debug(
		"added item to a list unknown to the local collection",
		slog.Int64("listID", listID),
	)

	return item, nil
}

// ToggleItem overwrites only the completed flag from the server's response.
// A 401 here does NOT invalidate the session; only Refresh does. That
// asymmetry is deliberate, see DESIGN.md.
func (service *ListService) ToggleItem(
	ctx context.Context,
	token string,
	listID int64,
	itemID int64,
) (*shoppinglist.Item, error) {
	item, err := service.client.WithToken(token).ToggleItem(ctx, listID, itemID)
	if err != nil {
		return nil, err
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	lists := service.collections[token]
	for i := range lists {
		if lists[i].ID != listID {
			continue
		}

		for j := range lists[i].Items {
			if lists[i].Items[j].ID == itemID {
				lists[i].Items[j].Completed = item.Completed
				break
			}
		}
	}

	return item, nil
}

func (service *ListService) DeleteList(
	ctx context.Context,
	token string,
	listID int64,
) error {
	err := service.client.WithToken(token).DeleteList(ctx, listID)
	if err != nil {
		return err
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	lists := service.collections[token]
	for i := range lists {
		if lists[i].ID == listID {
			service.collections[token] = append(lists[:i], lists[i+1:]...)
			break
		}
	}

	return nil
}

// Forget drops the cached collection of a session, used on sign-out and
// session expiry.
func (service *ListService) Forget(token string) {
	service.mu.Lock()
	defer service.mu.Unlock()
	delete(service.collections, token)
}

// RefreshAll resyncs every known session against the server. Sessions whose
// token the server no longer accepts are dropped, the next page load then
// performs the usual clear and redirect.
func (service *ListService) RefreshAll(ctx context.Context) error {
	service.mu.Lock()
	tokens := make([]string, 0, len(service.collections))
	for token := range service.collections {
		tokens = append(tokens, token)
	}
	service.mu.Unlock()

	for _, token := range tokens {
		_, err := service.Refresh(ctx, token)
		if err != nil {
			if errors.Is(err, shoppinglist.ErrSessionExpired) {
				continue
			}

			return err
		}
	}

	return nil
}
