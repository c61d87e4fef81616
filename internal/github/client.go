// Package github proxies public repository listings for profile pages.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"devconnect/internal/cache"
	"devconnect/internal/middleware"
	"devconnect/internal/models"
)

const defaultBaseURL = "https://api.github.com"

// Repo is the subset of the GitHub repository payload the client renders.
type Repo struct {
	Name            string `json:"name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	WatchersCount   int    `json:"watchers_count"`
	ForksCount      int    `json:"forks_count"`
}

// Client fetches a user's most recent public repositories. Responses are
// cached so a hot profile page does not hammer the GitHub API quota.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient builds a client. token may be empty; authenticated requests just
// get a higher rate limit.
func NewClient(token string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

// ListRepos returns up to five of the user's repositories, oldest first,
// matching what the profile page has always shown.
func (c *Client) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	var repos []Repo
	key := cache.GithubKey(username)

	found, err := cache.GetJSON(ctx, key, &repos)
	if err == nil && found {
		middleware.GithubProxyRequests.WithLabelValues("hit").Inc()
		return repos, nil
	}

	repos, err = c.fetchRepos(ctx, username)
	if err != nil {
		middleware.GithubProxyRequests.WithLabelValues("error").Inc()
		return nil, err
	}

	middleware.GithubProxyRequests.WithLabelValues("miss").Inc()
	_ = cache.SetJSON(ctx, key, repos, cache.GithubTTL)
	return repos, nil
}

func (c *Client) fetchRepos(ctx context.Context, username string) ([]Repo, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc",
		c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, models.NewNotFoundError("No Github profile found")
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, models.NewInternalError(
			fmt.Errorf("github responded %d: %s", resp.StatusCode, body))
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, models.NewInternalError(err)
	}
	return repos, nil
}
