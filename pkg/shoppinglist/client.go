package shoppinglist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
)

type client struct {
	baseURL     string
	accessToken string
}

func New(baseURL string) Client {
	return client{
		baseURL:     baseURL,
		accessToken: "",
	}
}

func (client client) WithToken(token string) Client {
	client.accessToken = token
	return client
}

// errorResponse matches the error body of the API
// (FastAPI-style {"detail": "..."}).
type errorResponse struct {
	Detail string `json:"detail"`
}

func (client client) sendRequest(
	ctx context.Context,
	method string,
	endpoint string,
	body any,
	dst any,
) error {
	u, err := url.Parse(fmt.Sprintf("%s/%s", client.baseURL, endpoint))
	if err != nil {
		return err
	}

	var req *http.Request
	if body != nil {
		var marshalled []byte
		marshalled, err = json.Marshal(body)
		if err != nil {
			return err
		}

		req, err = http.NewRequestWithContext(
			ctx,
			method,
			u.String(),
			bytes.NewBuffer(marshalled),
		)
		if err != nil {
			return err
		}

		req.Header.Add("Content-Type", "application/json")
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u.String(), nil)
		if err != nil {
			return err
		}
	}

	if client.accessToken != "" {
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", client.accessToken))
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK ||
		res.StatusCode >= http.StatusMultipleChoices {
		var errorRes errorResponse
		//nolint:errcheck //the status code alone is enough
		json.NewDecoder(res.Body).Decode(&errorRes)

		return RequestFailedError{
			StatusCode: res.StatusCode,
			Detail:     errorRes.Detail,
		}
	}

	if dst == nil {
		return nil
	}

	err = httptools.ReadJSON(res.Body, dst)
	if err != nil && err.Error() != "body must not be empty" {
		return err
	}

	return nil
}
