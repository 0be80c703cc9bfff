// Package api is the REST client for the backend. It owns the wire shapes,
// attaches the bearer token from the token store, and translates HTTP error
// payloads into errors the session layer can reason about.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipeasy/internal/common"
)

// TokenStore is the persistence surface the client needs for the session
// token. tokenstore.FileStore satisfies it; tests substitute an in-memory one.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// authMode states whether a request carries credentials.
type authMode int

const (
	authNone     authMode = iota // never attach a token
	authOptional                 // attach if the store holds one
	authRequired                 // a missing token fails before the network
)

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// APIError is a server-reported failure with its HTTP status and the
// human-readable message from the error payload.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// Unwrap lets callers match 401 responses with
// errors.Is(err, common.ErrUnauthorized) without inspecting the status.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return common.ErrUnauthorized
	}
	return nil
}

// do runs one request against the backend. A 401 response clears the stored
// token before the error is returned, so a stale session never outlives the
// server's rejection of it.
func (c *Client) do(ctx context.Context, method, path string, mode authMode, body, out any) error {

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if mode != authNone {
		token, err := c.tokens.Load()
		switch {
		case err == nil:
			req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
		case errors.Is(err, common.ErrNotFound):
			if mode == authRequired {
				return common.ErrUnauthorized
			}
		default:
			return err
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}

		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil {
			apiErr.Code = payload.Error
			apiErr.Message = payload.Message
		}

		if resp.StatusCode == http.StatusUnauthorized {
			_ = c.tokens.Clear()
		}

		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
