package codex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Config holds configuration for the codex client.
type Config struct {
	// BaseURL is the root of the codex JSON mirror.
	BaseURL string `mapstructure:"base_url" default:"https://playorna.com"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// FetchDelayMS is the delay between two entity fetches during a bulk
	// refresh. Zero allows bounded concurrent fetches instead.
	FetchDelayMS int `mapstructure:"fetch_delay_ms" default:"0"`
}

// ListEntry is one row of a codex list page.
type ListEntry struct {
	// Slug of the entity.
	Slug string `json:"slug"`
	// Name of the entity.
	Name string `json:"name"`
	// Tier of the entity.
	Tier int `json:"tier"`
	// URI of the entity's page.
	URI string `json:"uri"`
}

// Client is the capability interface over the remote codex. The HTML
// scraping layer sits behind this boundary; the reconciliation engine only
// ever sees typed records.
type Client interface {
	// List enumerates the entities of a kind.
	List(ctx context.Context, kind Kind) ([]ListEntry, error)
	// FetchItem fetches one item page.
	FetchItem(ctx context.Context, slug string) (*Item, error)
	// FetchMonster fetches one regular monster page.
	FetchMonster(ctx context.Context, slug string) (*Monster, error)
	// FetchBoss fetches one boss page.
	FetchBoss(ctx context.Context, slug string) (*Boss, error)
	// FetchRaid fetches one raid page.
	FetchRaid(ctx context.Context, slug string) (*Raid, error)
	// FetchSkill fetches one skill page.
	FetchSkill(ctx context.Context, slug string) (*Skill, error)
	// FetchFollower fetches one follower page.
	FetchFollower(ctx context.Context, slug string) (*Follower, error)
}

// httpClient talks to a codex mirror that serves the parsed pages as JSON.
type httpClient struct {
	base string
	http *http.Client
}

// NewClient creates a Client backed by the configured codex mirror.
func NewClient(cfg Config) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &httpClient{
		base: cfg.BaseURL,
		http: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

func (c *httpClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build codex request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("codex request %s failed: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("codex request %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode codex response for %s: %w", path, err)
	}
	return nil
}

func (c *httpClient) List(ctx context.Context, kind Kind) ([]ListEntry, error) {
	var entries []ListEntry
	if err := c.get(ctx, fmt.Sprintf("/codex/%s/", string(kind)), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *httpClient) FetchItem(ctx context.Context, slug string) (*Item, error) {
	var item Item
	if err := c.get(ctx, KindItems.URI(slug), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *httpClient) FetchMonster(ctx context.Context, slug string) (*Monster, error) {
	var monster Monster
	if err := c.get(ctx, KindMonsters.URI(slug), &monster); err != nil {
		return nil, err
	}
	return &monster, nil
}

func (c *httpClient) FetchBoss(ctx context.Context, slug string) (*Boss, error) {
	var boss Boss
	if err := c.get(ctx, KindBosses.URI(slug), &boss); err != nil {
		return nil, err
	}
	return &boss, nil
}

func (c *httpClient) FetchRaid(ctx context.Context, slug string) (*Raid, error) {
	var raid Raid
	if err := c.get(ctx, KindRaids.URI(slug), &raid); err != nil {
		return nil, err
	}
	return &raid, nil
}

func (c *httpClient) FetchSkill(ctx context.Context, slug string) (*Skill, error) {
	var skill Skill
	if err := c.get(ctx, KindSkills.URI(slug), &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (c *httpClient) FetchFollower(ctx context.Context, slug string) (*Follower, error) {
	var follower Follower
	if err := c.get(ctx, KindFollowers.URI(slug), &follower); err != nil {
		return nil, err
	}
	return &follower, nil
}
