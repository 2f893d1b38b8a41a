package guide

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FormError is a rejected write: the admin panel refused the payload because
// a field was unexpected, missing or malformed. Nothing was saved.
type FormError struct {
	// Endpoint is the admin path the write was posted to.
	Endpoint string
	// Detail is the panel's own description of the rejected field.
	Detail string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("guide rejected write to %s: %s", e.Endpoint, e.Detail)
}

// httpGuide talks to the admin panel's JSON endpoints with cookie auth.
type httpGuide struct {
	base   string
	cookie string
	http   *http.Client
}

// NewAdminGuide creates an AdminGuide backed by the configured admin panel.
func NewAdminGuide(cfg Config) AdminGuide {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &httpGuide{
		base:   cfg.BaseURL,
		cookie: cfg.SessionCookie,
		http:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

func (g *httpGuide) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode guide payload for %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.base+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build guide request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.cookie != "" {
		req.AddCookie(&http.Cookie{Name: "sessionid", Value: g.cookie})
	}
	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("guide request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusBadRequest && method != http.MethodGet:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &FormError{Endpoint: path, Detail: string(detail)}
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("guide request %s %s returned status %d", method, path, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode guide response for %s: %w", path, err)
		}
	}
	return nil
}

func (g *httpGuide) list(ctx context.Context, kind string) ([]Entry, error) {
	var entries []Entry
	if err := g.do(ctx, http.MethodGet, "/admin/"+kind+"/", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (g *httpGuide) ListItems(ctx context.Context) ([]Entry, error) {
	return g.list(ctx, "items")
}

func (g *httpGuide) FetchItem(ctx context.Context, id uint32) (*Item, error) {
	var item Item
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/admin/items/%d/", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (g *httpGuide) SaveItem(ctx context.Context, item *Item) error {
	return g.do(ctx, http.MethodPost, fmt.Sprintf("/admin/items/%d/", item.ID), item, nil)
}

func (g *httpGuide) AddItem(ctx context.Context, item *Item) error {
	return g.do(ctx, http.MethodPost, "/admin/items/add/", item, nil)
}

func (g *httpGuide) ListMonsters(ctx context.Context) ([]Entry, error) {
	return g.list(ctx, "monsters")
}

func (g *httpGuide) FetchMonster(ctx context.Context, id uint32) (*Monster, error) {
	var monster Monster
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/admin/monsters/%d/", id), nil, &monster); err != nil {
		return nil, err
	}
	return &monster, nil
}

func (g *httpGuide) SaveMonster(ctx context.Context, monster *Monster) error {
	return g.do(ctx, http.MethodPost, fmt.Sprintf("/admin/monsters/%d/", monster.ID), monster, nil)
}

func (g *httpGuide) AddMonster(ctx context.Context, monster *Monster) error {
	return g.do(ctx, http.MethodPost, "/admin/monsters/add/", monster, nil)
}

func (g *httpGuide) ListSkills(ctx context.Context) ([]Entry, error) {
	return g.list(ctx, "skills")
}

func (g *httpGuide) FetchSkill(ctx context.Context, id uint32) (*Skill, error) {
	var skill Skill
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/admin/skills/%d/", id), nil, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (g *httpGuide) SaveSkill(ctx context.Context, skill *Skill) error {
	return g.do(ctx, http.MethodPost, fmt.Sprintf("/admin/skills/%d/", skill.ID), skill, nil)
}

func (g *httpGuide) AddSkill(ctx context.Context, skill *Skill) error {
	return g.do(ctx, http.MethodPost, "/admin/skills/add/", skill, nil)
}

func (g *httpGuide) ListPets(ctx context.Context) ([]Entry, error) {
	return g.list(ctx, "pets")
}

func (g *httpGuide) FetchPet(ctx context.Context, id uint32) (*Pet, error) {
	var pet Pet
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/admin/pets/%d/", id), nil, &pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

func (g *httpGuide) SavePet(ctx context.Context, pet *Pet) error {
	return g.do(ctx, http.MethodPost, fmt.Sprintf("/admin/pets/%d/", pet.ID), pet, nil)
}

func (g *httpGuide) AddPet(ctx context.Context, pet *Pet) error {
	return g.do(ctx, http.MethodPost, "/admin/pets/add/", pet, nil)
}

func (g *httpGuide) FetchStatic(ctx context.Context) (*Static, error) {
	var static Static
	if err := g.do(ctx, http.MethodGet, "/admin/static/", nil, &static); err != nil {
		return nil, err
	}
	return &static, nil
}

func (g *httpGuide) ListStatusEffects(ctx context.Context) ([]NamedID, error) {
	var effects []NamedID
	if err := g.do(ctx, http.MethodGet, "/admin/static/status-effects/", nil, &effects); err != nil {
		return nil, err
	}
	return effects, nil
}

func (g *httpGuide) AddStatusEffect(ctx context.Context, name string) error {
	payload := map[string]string{"name": name}
	return g.do(ctx, http.MethodPost, "/admin/static/status-effects/add/", payload, nil)
}

func (g *httpGuide) ListSpawns(ctx context.Context) ([]NamedID, error) {
	var spawns []NamedID
	if err := g.do(ctx, http.MethodGet, "/admin/static/spawns/", nil, &spawns); err != nil {
		return nil, err
	}
	return spawns, nil
}

func (g *httpGuide) AddSpawn(ctx context.Context, name string) error {
	payload := map[string]string{"name": name}
	return g.do(ctx, http.MethodPost, "/admin/static/spawns/add/", payload, nil)
}
