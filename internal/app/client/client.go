// Package client implements the HTTP client application behind the CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"itemkeeper/internal/app/client/config"
	"itemkeeper/internal/domain/item"
	"itemkeeper/internal/domain/user"

	"golang.org/x/exp/slog"
)

const requestTimeout = 30 * time.Second

type App struct {
	cfg   *config.Config
	log   *slog.Logger
	http  *http.Client
	token string
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	a := &App{
		cfg:  cfg,
		log:  log.With("component", "client"),
		http: &http.Client{Timeout: requestTimeout},
	}

	// A missing token file just means the user has not logged in yet.
	if data, err := os.ReadFile(cfg.TokenPath); err == nil {
		a.token = strings.TrimSpace(string(data))
	}

	return a, nil
}

func (a *App) Register(ctx context.Context, email, password string) (user.Summary, error) {
	var summary user.Summary
	err := a.doJSON(ctx, http.MethodPost, "/register",
		map[string]string{"email": email, "password": password}, &summary, false)
	return summary, err
}

// Login authenticates and returns the bearer token. The token is not saved
// here; the caller decides whether to persist it.
func (a *App) Login(ctx context.Context, email, password string) (string, error) {
	var body struct {
		Token string `json:"token"`
	}
	err := a.doJSON(ctx, http.MethodPost, "/login",
		map[string]string{"email": email, "password": password}, &body, false)
	if err != nil {
		return "", err
	}

	a.token = body.Token
	return body.Token, nil
}

// SaveToken persists the bearer token for later invocations.
func (a *App) SaveToken(token string) error {
	dir := filepath.Dir(a.cfg.TokenPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(a.cfg.TokenPath, []byte(token), 0o600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (a *App) HasToken() bool {
	return a.token != ""
}

func (a *App) CreateItem(ctx context.Context, name string, price float64) (item.Item, error) {
	var created item.Item
	err := a.doJSON(ctx, http.MethodPost, "/items",
		map[string]any{"name": name, "price": price}, &created, true)
	return created, err
}

func (a *App) ListItems(ctx context.Context) ([]item.Item, error) {
	var items []item.Item
	err := a.doJSON(ctx, http.MethodGet, "/items", nil, &items, false)
	return items, err
}

func (a *App) GetItem(ctx context.Context, id int) (item.Item, error) {
	var it item.Item
	err := a.doJSON(ctx, http.MethodGet, fmt.Sprintf("/items/%d", id), nil, &it, false)
	return it, err
}

func (a *App) UpdateItems(ctx context.Context, ids []int, patch item.Patch) ([]int, error) {
	var updated []int
	err := a.doJSON(ctx, http.MethodPut, "/updateitems",
		map[string]any{"ids": ids, "item": patch}, &updated, true)
	return updated, err
}

func (a *App) doJSON(ctx context.Context, method, path string, in, out any, authed bool) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.cfg.ServerAddress+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		a.log.Debug("request failed", "method", method, "path", path, "status", resp.StatusCode)
		return fmt.Errorf("server returned %s: %s", resp.Status, serverError(data))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// serverError extracts a human-readable message from an error body, which is
// either huma problem JSON or a plain {"error": ...} object.
func serverError(data []byte) string {
	var body struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Detail != "" {
			return body.Detail
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(data))
}
