package shoppinglist

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

const (
	LoginEndpoint    = "login/"
	RegisterEndpoint = "register/"
)

type credentialsDto struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for an access token. Persisting the token and
// navigating afterwards is up to the caller.
func (client client) Login(
	ctx context.Context,
	username string,
	password string,
) (string, error) {
	body := credentialsDto{
		Username: username,
		Password: password,
	}

	var tokenRes tokenResponse
	err := client.sendRequest(ctx, http.MethodPost, LoginEndpoint, body, &tokenRes)
	if err != nil {
		if errors.Is(err, ErrNetworkUnavailable) {
			return "", err
		}

		var requestErr RequestFailedError
		if errors.As(err, &requestErr) && requestErr.Detail != "" {
			return "", fmt.Errorf(
				"%w: %s",
				ErrAuthenticationFailed,
				requestErr.Detail,
			)
		}

		return "", ErrAuthenticationFailed
	}

	return tokenRes.AccessToken, nil
}

// Register creates a new account. The success body carries nothing useful
// and is discarded.
func (client client) Register(
	ctx context.Context,
	username string,
	password string,
) error {
	body := credentialsDto{
		Username: username,
		Password: password,
	}

	err := client.sendRequest(ctx, http.MethodPost, RegisterEndpoint, body, nil)
	if err != nil {
		if errors.Is(err, ErrNetworkUnavailable) {
			return err
		}

		var requestErr RequestFailedError
		if errors.As(err, &requestErr) && requestErr.Detail != "" {
			return fmt.Errorf("%w: %s", ErrRegistrationFailed, requestErr.Detail)
		}

		return ErrRegistrationFailed
	}

	return nil
}
