package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"callboard/pkg/types"
)

type ListPostsParams struct {
	Limit  int
	Offset int
	Status string
	Sort   string
}

func (p ListPostsParams) values() url.Values {
	v := url.Values{}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	v.Set("offset", strconv.Itoa(p.Offset))
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort)
	}
	return v
}

type ListGigsParams struct {
	Limit  int
	Offset int
	Status string
}

func (p ListGigsParams) values() url.Values {
	v := url.Values{}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	v.Set("offset", strconv.Itoa(p.Offset))
	return v
}

func (c *Client) CommunityStats(ctx context.Context) (types.CommunityStats, error) {
	var env envelope
	if err := c.get(ctx, "community/posts/stats", nil, &env); err != nil {
		return types.CommunityStats{}, fmt.Errorf("community stats: %w", err)
	}

	var stats types.CommunityStats
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &stats); err != nil {
			return types.CommunityStats{}, fmt.Errorf("community stats: unmarshal data: %w", err)
		}
	}
	return stats, nil
}

func (c *Client) ListPosts(ctx context.Context, params ListPostsParams) ([]RawPost, error) {
	var env envelope
	if err := c.get(ctx, "community/posts", params.values(), &env); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	var posts []RawPost
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &posts); err != nil {
			return nil, fmt.Errorf("list posts: unmarshal data: %w", err)
		}
	}
	return posts, nil
}

func (c *Client) ListGigs(ctx context.Context, params ListGigsParams) ([]RawGig, error) {
	var env envelope
	if err := c.get(ctx, "community/gigs", params.values(), &env); err != nil {
		return nil, fmt.Errorf("list gigs: %w", err)
	}

	var gigs []RawGig
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &gigs); err != nil {
			return nil, fmt.Errorf("list gigs: unmarshal data: %w", err)
		}
	}
	return gigs, nil
}

// ListApplications fetches the signed-in user's gig applications. A 401 means
// "not signed in, so no applications", not a failure.
func (c *Client) ListApplications(ctx context.Context) ([]RawApplication, error) {
	var env envelope
	err := c.get(ctx, "community/gigs/applications", nil, &env)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized {
			return nil, nil
		}
		return nil, fmt.Errorf("list applications: %w", err)
	}

	var apps []RawApplication
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &apps); err != nil {
			return nil, fmt.Errorf("list applications: unmarshal data: %w", err)
		}
	}
	return apps, nil
}

type CreatePostInput struct {
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	Category      string  `json:"category"`
	FeaturedImage *string `json:"featured_image,omitempty"`
	Status        string  `json:"status"`
}

func (c *Client) CreatePost(ctx context.Context, input CreatePostInput) error {
	if err := c.post(ctx, "community/posts", input, nil); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (c *Client) ToggleLike(ctx context.Context, postID string) error {
	if err := c.post(ctx, "community/posts/"+url.PathEscape(postID)+"/like", nil, nil); err != nil {
		return fmt.Errorf("toggle like: %w", err)
	}
	return nil
}

type ApplyInput struct {
	Status   string  `json:"status"`
	RoleID   *string `json:"roleId,omitempty"`
	RoleName *string `json:"roleName,omitempty"`
}

func (c *Client) ApplyToGig(ctx context.Context, gigID string, input ApplyInput) error {
	if err := c.post(ctx, "community/gigs/"+url.PathEscape(gigID)+"/apply", input, nil); err != nil {
		return fmt.Errorf("apply to gig: %w", err)
	}
	return nil
}
