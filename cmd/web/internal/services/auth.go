package services

import (
	"context"
	"net/http"

	"github.com/getsentry/sentry-go"

	"shopping.xdoubleu.com/cmd/web/internal/dtos"
	"shopping.xdoubleu.com/internal/session"
	"shopping.xdoubleu.com/pkg/shoppinglist"
)

type AuthService struct {
	client shoppinglist.Client
	store  session.Store
}

// SignIn exchanges credentials for an access token. The caller persists the
// token and navigates.
func (service *AuthService) SignIn(
	ctx context.Context,
	signInDto *dtos.SignInDto,
) (string, error) {
	token, err := service.client.Login(ctx, signInDto.Username, signInDto.Password)
	if err != nil {
		return "", err
	}

	return token, nil
}

func (service *AuthService) Register(
	ctx context.Context,
	registerDto *dtos.RegisterDto,
) error {
	return service.client.Register(
		ctx,
		registerDto.Username,
		registerDto.Password,
	)
}

func (service *AuthService) Store() session.Store {
	return service.store
}

// Access gates a route on the presence of a session token. The decision is
// re-evaluated on every request, unauthenticated visitors land on /login
// and the guarded handler never runs.
func (service *AuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !service.store.IsAuthenticated(r) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next(w, r)
	}
}

func (service *AuthService) SetSentryUser(ctx context.Context, username string) {
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		//nolint:exhaustruct //other fields are optional
		hub.Scope().SetUser(sentry.User{
			Username: username,
		})
	}
}
