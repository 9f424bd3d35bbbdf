package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/sethvargo/go-retry"
)

// envelope is the common wrapper of every platform response.
type envelope[T any] struct {
	Status  string `json:"status"`
	Result  *T     `json:"result"`
	Comment string `json:"comment"`
}

// fetchJSON performs one logical GET against rawURL and decodes the response
// envelope into T. Transport failures are retried with a constant backoff up
// to the client's configured attempt count; every other failure class
// (BadResponseError, DecodeError, APIError, ErrNoData) is final on the first
// occurrence.
func fetchJSON[T any](ctx context.Context, c *HTTPClient, rawURL string) (*T, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidURL
	}

	var result *T
	backoff := retry.WithMaxRetries(c.retryAttempts, retry.NewConstant(c.retryDelay))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		v, err := fetchOnce[T](ctx, c, rawURL)
		if err != nil {
			var netErr *NetworkError
			if errors.As(err, &netErr) {
				return retry.RetryableError(err)
			}
			return err
		}
		result = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func fetchOnce[T any](ctx context.Context, c *HTTPClient, rawURL string) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, ErrInvalidURL
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &BadResponseError{StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoData
	}

	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &DecodeError{Err: err}
	}

	if env.Status != "OK" {
		return nil, &APIError{Comment: env.Comment}
	}
	if env.Result == nil {
		return nil, ErrNoData
	}
	return env.Result, nil
}
