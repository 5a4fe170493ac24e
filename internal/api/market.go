package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"callboard/pkg/types"
)

// Listings fetches one marketplace collection (assets, talent, studios or
// tickets). The four share a single backend shape.
func (c *Client) Listings(ctx context.Context, kind types.ListingKind) ([]RawListing, error) {
	var env envelope
	if err := c.get(ctx, "market/"+url.PathEscape(string(kind)), nil, &env); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}

	var listings []RawListing
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &listings); err != nil {
			return nil, fmt.Errorf("list %s: unmarshal data: %w", kind, err)
		}
	}
	return listings, nil
}

func (c *Client) Cart(ctx context.Context) (types.CartSummary, error) {
	var env envelope
	if err := c.get(ctx, "cart", nil, &env); err != nil {
		return types.CartSummary{}, fmt.Errorf("cart: %w", err)
	}

	var cart types.CartSummary
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &cart); err != nil {
			return types.CartSummary{}, fmt.Errorf("cart: unmarshal data: %w", err)
		}
	}
	return cart, nil
}

func (c *Client) UserStats(ctx context.Context, userID string) (types.UserStats, error) {
	var env envelope
	if err := c.get(ctx, "stats/user/"+url.PathEscape(userID), nil, &env); err != nil {
		return types.UserStats{}, fmt.Errorf("user stats: %w", err)
	}

	var stats types.UserStats
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &stats); err != nil {
			return types.UserStats{}, fmt.Errorf("user stats: unmarshal data: %w", err)
		}
	}
	return stats, nil
}

// LoginResult is what the backend auth endpoint returns on success.
type LoginResult struct {
	Token string            `json:"token"`
	User  types.SessionUser `json:"user"`
}

// Login exchanges credentials for a session token. Authentication itself is
// the backend's business; callboard only stores what comes back.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var out struct {
		Success *bool       `json:"success"`
		Data    LoginResult `json:"data"`
		Token   string      `json:"token"`
	}
	if err := c.post(ctx, "auth/login", body, &out); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	result := out.Data
	if result.Token == "" {
		result.Token = out.Token
	}
	if result.Token == "" {
		return nil, fmt.Errorf("login: no token in response")
	}
	return &result, nil
}
