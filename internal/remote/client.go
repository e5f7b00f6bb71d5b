// Package remote implements the HTTP channel to the progress sync service.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/k-yamanaka/studycards/internal/syncer"
)

// Client talks to the progress sync service over HTTP. It retries transient
// transport failures; permanent failures (authentication, client errors)
// surface immediately.
type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// NewClient creates a Client for the given service base URL.
func NewClient(baseURL, token string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	if token != "" {
		client.SetHeader("Authorization", "Bearer "+token)
	}

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// UploadProgress sends one batch of item progress for a collection.
func (client *Client) UploadProgress(ctx context.Context, collectionID string, batch []syncer.ItemProgress) error {
	payload := progressPayload{Items: make([]progressItem, 0, len(batch))}
	for _, item := range batch {
		payload.Items = append(payload.Items, toWire(item))
	}

	var authErr error
	err := retry.Do(
		func() error {
			response, err := client.httpClient.R().
				SetContext(ctx).
				SetBody(payload).
				Post(client.progressPath(collectionID))
			if err != nil {
				return fmt.Errorf("httpClient.R().Post() > %w", err)
			}
			if response.StatusCode() == http.StatusUnauthorized || response.StatusCode() == http.StatusForbidden {
				authErr = syncer.ErrNotAuthenticated
				return retry.Unrecoverable(syncer.ErrNotAuthenticated)
			}
			if response.IsError() {
				err := fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
				if !isRetryableStatus(response.StatusCode()) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.LastErrorOnly(true),
	)
	if authErr != nil {
		return authErr
	}
	return err
}

// DownloadProgress fetches the service's current progress for a collection.
func (client *Client) DownloadProgress(ctx context.Context, collectionID string) ([]syncer.ItemProgress, error) {
	var payload progressPayload
	var authErr error
	err := retry.Do(
		func() error {
			response, err := client.httpClient.R().
				SetContext(ctx).
				SetResult(&payload).
				Get(client.progressPath(collectionID))
			if err != nil {
				return fmt.Errorf("httpClient.R().Get() > %w", err)
			}
			if response.StatusCode() == http.StatusUnauthorized || response.StatusCode() == http.StatusForbidden {
				authErr = syncer.ErrNotAuthenticated
				return retry.Unrecoverable(syncer.ErrNotAuthenticated)
			}
			if response.IsError() {
				err := fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
				if !isRetryableStatus(response.StatusCode()) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.LastErrorOnly(true),
	)
	if authErr != nil {
		return nil, authErr
	}
	if err != nil {
		return nil, err
	}

	items := make([]syncer.ItemProgress, 0, len(payload.Items))
	for _, wire := range payload.Items {
		items = append(items, wire.toItemProgress())
	}
	return items, nil
}

func (client *Client) progressPath(collectionID string) string {
	return fmt.Sprintf("/v1/collections/%s/progress", url.PathEscape(collectionID))
}

// isRetryableStatus reports whether a response status is worth retrying:
// server errors and rate limiting, never other client errors.
func isRetryableStatus(statusCode int) bool {
	return statusCode >= http.StatusInternalServerError || statusCode == http.StatusTooManyRequests
}
