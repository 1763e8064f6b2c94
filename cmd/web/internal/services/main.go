package services

import (
	"log/slog"

	"github.com/xdoubleu/essentia/v2/pkg/threading"

	"shopping.xdoubleu.com/internal/config"
	"shopping.xdoubleu.com/internal/session"
	"shopping.xdoubleu.com/pkg/shoppinglist"
)

type Services struct {
	Auth      *AuthService
	Lists     *ListService
	WebSocket *WebSocketService
}

func New(
	logger *slog.Logger,
	cfg config.Config,
	jobQueue *threading.JobQueue,
	client shoppinglist.Client,
	store session.Store,
) *Services {
	return &Services{
		Auth: &AuthService{
			client: client,
			store:  store,
		},
		Lists: &ListService{
			logger:      logger,
			client:      client,
			collections: make(map[string][]shoppinglist.List),
		},
		WebSocket: NewWebSocketService(
			logger,
			[]string{cfg.WebURL},
			jobQueue,
		),
	}
}
