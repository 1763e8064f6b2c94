//nolint:exhaustruct,revive //ignore
package mocks

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"shopping.xdoubleu.com/pkg/shoppinglist"
)

// MockShoppingClient mimics the remote API in memory. Tokens issued by Login
// are the only ones it accepts afterwards.
type MockShoppingClient struct {
	state *mockState
	token string
}

type mockState struct {
	mu     sync.Mutex
	tokens map[string]bool
	lists  []shoppinglist.List
	nextID int64
}

func NewMockShoppingClient() MockShoppingClient {
	return MockShoppingClient{
		state: &mockState{
			tokens: make(map[string]bool),
			lists:  []shoppinglist.List{},
			nextID: 1,
		},
	}
}

func (client MockShoppingClient) WithToken(token string) shoppinglist.Client {
	client.token = token
	return client
}

func (client MockShoppingClient) Login(
	ctx context.Context,
	username string,
	password string,
) (string, error) {
	if password == "wrong" {
		return "", shoppinglist.ErrAuthenticationFailed
	}

	token := uuid.NewString()

	client.state.mu.Lock()
	defer client.state.mu.Unlock()
	client.state.tokens[token] = true

	return token, nil
}

func (client MockShoppingClient) Register(
	ctx context.Context,
	username string,
	password string,
) error {
	if username == "taken" {
		return shoppinglist.ErrRegistrationFailed
	}

	return nil
}

// RevokeTokens makes every previously issued token invalid, simulating
// server-side session expiry.
func (client MockShoppingClient) RevokeTokens() {
	client.state.mu.Lock()
	defer client.state.mu.Unlock()
	client.state.tokens = make(map[string]bool)
}

func (client MockShoppingClient) checkToken() error {
	client.state.mu.Lock()
	defer client.state.mu.Unlock()

	if !client.state.tokens[client.token] {
		return shoppinglist.RequestFailedError{
			StatusCode: http.StatusUnauthorized,
			Detail:     "Invalid token",
		}
	}

	return nil
}

func (client MockShoppingClient) GetAllLists(
	ctx context.Context,
) ([]shoppinglist.List, error) {
	if err := client.checkToken(); err != nil {
		return nil, err
	}

	client.state.mu.Lock()
	defer client.state.mu.Unlock()

	lists := make([]shoppinglist.List, len(client.state.lists))
	copy(lists, client.state.lists)

	return lists, nil
}

func (client MockShoppingClient) CreateList(
	ctx context.Context,
	createListDto shoppinglist.CreateListDto,
) (*shoppinglist.List, error) {
	if err := client.checkToken(); err != nil {
		return nil, err
	}

	client.state.mu.Lock()
	defer client.state.mu.Unlock()

	list := shoppinglist.List{
		ID:      client.state.nextID,
		Name:    createListDto.Name,
		DueDate: createListDto.DueDate,
		Items:   []shoppinglist.Item{},
	}
	client.state.nextID++
	client.state.lists = append(client.state.lists, list)

	return &list, nil
}

func (client MockShoppingClient) DeleteList(
	ctx context.Context,
	listID int64,
) error {
	if err := client.checkToken(); err != nil {
		return err
	}

	client.state.mu.Lock()
	defer client.state.mu.Unlock()

	for i := range client.state.lists {
		if client.state.lists[i].ID == listID {
			client.state.lists = append(
				client.state.lists[:i],
				client.state.lists[i+1:]...,
			)
			return nil
		}
	}

	return shoppinglist.RequestFailedError{
		StatusCode: http.StatusNotFound,
		Detail:     "Shopping list not found",
	}
}

func (client MockShoppingClient) AddItem(
	ctx context.Context,
	listID int64,
	createItemDto shoppinglist.CreateItemDto,
) (*shoppinglist.Item, error) {
	if err := client.checkToken(); err != nil {
		return nil, err
	}

	client.state.mu.Lock()
	defer client.state.mu.Unlock()

	for i := range client.state.lists {
		if client.state.lists[i].ID != listID {
			continue
		}

		item := shoppinglist.Item{
			ID:        client.state.nextID,
			Name:      createItemDto.Name,
			Quantity:  createItemDto.Quantity,
			Unit:      createItemDto.Unit,
			Completed: false,
		}
		client.state.nextID++
		client.state.lists[i].Items = append(client.state.lists[i].Items, item)

		return &item, nil
	}

	return nil, shoppinglist.RequestFailedError{
		StatusCode: http.StatusNotFound,
		Detail:     "Shopping list not found",
	}
}

func (client MockShoppingClient) ToggleItem(
	ctx context.Context,
	listID int64,
	itemID int64,
) (*shoppinglist.Item, error) {
	if err := client.checkToken(); err != nil {
		return nil, err
	}

	client.state.mu.Lock()
	defer client.state.mu.Unlock()

	for i := range client.state.lists {
		if client.state.lists[i].ID != listID {
			continue
		}

		for j := range client.state.lists[i].Items {
			if client.state.lists[i].Items[j].ID == itemID {
				client.state.lists[i].Items[j].Completed =
					!client.state.lists[i].Items[j].Completed
				item := client.state.lists[i].Items[j]
				return &item, nil
			}
		}
	}

	return nil, shoppinglist.RequestFailedError{
		StatusCode: http.StatusNotFound,
		Detail:     "Item not found",
	}
}
