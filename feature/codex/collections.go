package codex

import (
	"fmt"
	"strings"
)

// NotFoundError is returned by Get* lookups when no entity matches the key.
type NotFoundError struct {
	// Kind of the entity looked up.
	Kind Kind
	// Key is the slug or URI that failed to resolve.
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no codex %s matches %q", string(e.Kind), e.Key)
}

// SlugFromURI extracts the slug from a codex URI of the given kind. The
// second return value is false when the URI does not belong to that kind.
func SlugFromURI(kind Kind, uri string) (string, bool) {
	prefix := fmt.Sprintf("/codex/%s/", string(kind))
	if !strings.HasPrefix(uri, prefix) {
		return "", false
	}
	return strings.TrimSuffix(uri[len(prefix):], "/"), true
}

// Items is the collection of all fetched codex items.
type Items struct {
	Items []Item `json:"items"`
}

// FindBySlug returns the item with the given slug, or nil.
func (c *Items) FindBySlug(slug string) *Item {
	for i := range c.Items {
		if c.Items[i].Slug == slug {
			return &c.Items[i]
		}
	}
	return nil
}

// GetByURI returns the item with the given URI, or a NotFoundError.
func (c *Items) GetByURI(uri string) (*Item, error) {
	if slug, ok := SlugFromURI(KindItems, uri); ok {
		if item := c.FindBySlug(slug); item != nil {
			return item, nil
		}
	}
	return nil, &NotFoundError{Kind: KindItems, Key: uri}
}

// Monsters is the collection of all fetched codex regular monsters.
type Monsters struct {
	Monsters []Monster `json:"monsters"`
}

// FindBySlug returns the monster with the given slug, or nil.
func (c *Monsters) FindBySlug(slug string) *Monster {
	for i := range c.Monsters {
		if c.Monsters[i].Slug == slug {
			return &c.Monsters[i]
		}
	}
	return nil
}

// GetByURI returns the monster with the given URI, or a NotFoundError.
func (c *Monsters) GetByURI(uri string) (*Monster, error) {
	if slug, ok := SlugFromURI(KindMonsters, uri); ok {
		if monster := c.FindBySlug(slug); monster != nil {
			return monster, nil
		}
	}
	return nil, &NotFoundError{Kind: KindMonsters, Key: uri}
}

// Bosses is the collection of all fetched codex bosses.
type Bosses struct {
	Bosses []Boss `json:"bosses"`
}

// FindBySlug returns the boss with the given slug, or nil.
func (c *Bosses) FindBySlug(slug string) *Boss {
	for i := range c.Bosses {
		if c.Bosses[i].Slug == slug {
			return &c.Bosses[i]
		}
	}
	return nil
}

// GetByURI returns the boss with the given URI, or a NotFoundError.
func (c *Bosses) GetByURI(uri string) (*Boss, error) {
	if slug, ok := SlugFromURI(KindBosses, uri); ok {
		if boss := c.FindBySlug(slug); boss != nil {
			return boss, nil
		}
	}
	return nil, &NotFoundError{Kind: KindBosses, Key: uri}
}

// Raids is the collection of all fetched codex raids.
type Raids struct {
	Raids []Raid `json:"raids"`
}

// FindBySlug returns the raid with the given slug, or nil.
func (c *Raids) FindBySlug(slug string) *Raid {
	for i := range c.Raids {
		if c.Raids[i].Slug == slug {
			return &c.Raids[i]
		}
	}
	return nil
}

// GetByURI returns the raid with the given URI, or a NotFoundError.
func (c *Raids) GetByURI(uri string) (*Raid, error) {
	if slug, ok := SlugFromURI(KindRaids, uri); ok {
		if raid := c.FindBySlug(slug); raid != nil {
			return raid, nil
		}
	}
	return nil, &NotFoundError{Kind: KindRaids, Key: uri}
}

// Skills is the collection of all fetched codex skills.
type Skills struct {
	Skills []Skill `json:"skills"`
}

// FindBySlug returns the skill with the given slug, or nil.
func (c *Skills) FindBySlug(slug string) *Skill {
	for i := range c.Skills {
		if c.Skills[i].Slug == slug {
			return &c.Skills[i]
		}
	}
	return nil
}

// GetByURI returns the skill with the given URI, or a NotFoundError.
func (c *Skills) GetByURI(uri string) (*Skill, error) {
	if slug, ok := SlugFromURI(KindSkills, uri); ok {
		if skill := c.FindBySlug(slug); skill != nil {
			return skill, nil
		}
	}
	return nil, &NotFoundError{Kind: KindSkills, Key: uri}
}

// Followers is the collection of all fetched codex followers.
type Followers struct {
	Followers []Follower `json:"followers"`
}

// FindBySlug returns the follower with the given slug, or nil.
func (c *Followers) FindBySlug(slug string) *Follower {
	for i := range c.Followers {
		if c.Followers[i].Slug == slug {
			return &c.Followers[i]
		}
	}
	return nil
}

// GetByURI returns the follower with the given URI, or a NotFoundError.
func (c *Followers) GetByURI(uri string) (*Follower, error) {
	if slug, ok := SlugFromURI(KindFollowers, uri); ok {
		if follower := c.FindBySlug(slug); follower != nil {
			return follower, nil
		}
	}
	return nil, &NotFoundError{Kind: KindFollowers, Key: uri}
}

// Data aggregates every codex collection in one fetch snapshot.
type Data struct {
	Items     Items     `json:"items"`
	Monsters  Monsters  `json:"monsters"`
	Bosses    Bosses    `json:"bosses"`
	Raids     Raids     `json:"raids"`
	Skills    Skills    `json:"skills"`
	Followers Followers `json:"followers"`
}
