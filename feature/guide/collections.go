package guide

import (
	"fmt"
	"strings"
)

// NotFoundError is returned by Get* lookups when no entity matches the key.
type NotFoundError struct {
	// Kind of the entity looked up (items, monsters, skills, pets).
	Kind string
	// Key is the id, slug or URI that failed to resolve.
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no guide %s matches %q", e.Kind, e.Key)
}

// AmbiguousMatchError is returned when a codex key resolves to more than one
// guide entity. The admin panel does not prevent two entries from pointing at
// the same codex page; picking one silently would fix the wrong entity.
type AmbiguousMatchError struct {
	// Kind of the entity looked up.
	Kind string
	// Key is the slug or URI that matched several entities.
	Key string
	// IDs of all matching entities.
	IDs []uint32
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("%d guide %s match %q: ids %v", len(e.IDs), e.Kind, e.Key, e.IDs)
}

func slugOfURI(uri, prefix string) (string, bool) {
	if !strings.HasPrefix(uri, prefix) {
		return "", false
	}
	return strings.TrimSuffix(uri[len(prefix):], "/"), true
}

// Items is the collection of all fetched guide items.
type Items struct {
	Items []Item `json:"items"`
}

// FindByID returns the item with the given id, or nil.
func (c *Items) FindByID(id uint32) *Item {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// GetBySlug returns the item whose codex_uri decodes to the given codex
// slug. Zero matches yield a NotFoundError, several an AmbiguousMatchError.
func (c *Items) GetBySlug(slug string) (*Item, error) {
	var found *Item
	var ids []uint32
	for i := range c.Items {
		if s, ok := slugOfURI(c.Items[i].CodexURI, "/codex/items/"); ok && s == slug {
			found = &c.Items[i]
			ids = append(ids, c.Items[i].ID)
		}
	}
	switch len(ids) {
	case 0:
		return nil, &NotFoundError{Kind: "items", Key: slug}
	case 1:
		return found, nil
	default:
		return nil, &AmbiguousMatchError{Kind: "items", Key: slug, IDs: ids}
	}
}

// GetByURI returns the item whose codex_uri equals the given URI.
func (c *Items) GetByURI(uri string) (*Item, error) {
	slug, ok := slugOfURI(uri, "/codex/items/")
	if !ok {
		return nil, &NotFoundError{Kind: "items", Key: uri}
	}
	return c.GetBySlug(slug)
}

// Monsters is the collection of all fetched guide monsters, raids and bosses
// included.
type Monsters struct {
	Monsters []Monster `json:"monsters"`
}

// FindByID returns the monster with the given id, or nil.
func (c *Monsters) FindByID(id uint32) *Monster {
	for i := range c.Monsters {
		if c.Monsters[i].ID == id {
			return &c.Monsters[i]
		}
	}
	return nil
}

// GetByURI returns the monster whose codex_uri equals the given URI, of any
// monster family.
func (c *Monsters) GetByURI(uri string) (*Monster, error) {
	var found *Monster
	var ids []uint32
	for i := range c.Monsters {
		if c.Monsters[i].CodexURI != "" && c.Monsters[i].CodexURI == uri {
			found = &c.Monsters[i]
			ids = append(ids, c.Monsters[i].ID)
		}
	}
	switch len(ids) {
	case 0:
		return nil, &NotFoundError{Kind: "monsters", Key: uri}
	case 1:
		return found, nil
	default:
		return nil, &AmbiguousMatchError{Kind: "monsters", Key: uri, IDs: ids}
	}
}

// getByKind returns the monster whose codex_uri decodes to slug under the
// given URI prefix and whose family matches the kind predicate.
func (c *Monsters) getByKind(prefix, slug string, matches func(*Monster) bool) (*Monster, error) {
	var found *Monster
	var ids []uint32
	for i := range c.Monsters {
		m := &c.Monsters[i]
		if m.CodexURI == "" || !matches(m) {
			continue
		}
		if s, ok := slugOfURI(m.CodexURI, prefix); ok && s == slug {
			found = m
			ids = append(ids, m.ID)
		}
	}
	switch len(ids) {
	case 0:
		return nil, &NotFoundError{Kind: "monsters", Key: slug}
	case 1:
		return found, nil
	default:
		return nil, &AmbiguousMatchError{Kind: "monsters", Key: slug, IDs: ids}
	}
}

// GetByMonsterSlug returns the regular monster matching a codex monster slug.
func (c *Monsters) GetByMonsterSlug(slug string) (*Monster, error) {
	return c.getByKind("/codex/monsters/", slug, (*Monster).IsRegularMonster)
}

// GetByBossSlug returns the boss matching a codex boss slug.
func (c *Monsters) GetByBossSlug(slug string, spawns []NamedID) (*Monster, error) {
	return c.getByKind("/codex/bosses/", slug, func(m *Monster) bool { return m.IsBoss(spawns) })
}

// GetByRaidSlug returns the raid matching a codex raid slug.
func (c *Monsters) GetByRaidSlug(slug string, spawns []NamedID) (*Monster, error) {
	return c.getByKind("/codex/raids/", slug, func(m *Monster) bool { return m.IsRaid(spawns) })
}

// Skills is the collection of all fetched guide skills.
type Skills struct {
	Skills []Skill `json:"skills"`
}

// FindByID returns the skill with the given id, or nil.
func (c *Skills) FindByID(id uint32) *Skill {
	for i := range c.Skills {
		if c.Skills[i].ID == id {
			return &c.Skills[i]
		}
	}
	return nil
}

// GetBySlug returns the skill whose codex_uri decodes to the given codex slug.
func (c *Skills) GetBySlug(slug string) (*Skill, error) {
	var found *Skill
	var ids []uint32
	for i := range c.Skills {
		if s, ok := slugOfURI(c.Skills[i].CodexURI, "/codex/spells/"); ok && s == slug {
			found = &c.Skills[i]
			ids = append(ids, c.Skills[i].ID)
		}
	}
	switch len(ids) {
	case 0:
		return nil, &NotFoundError{Kind: "skills", Key: slug}
	case 1:
		return found, nil
	default:
		return nil, &AmbiguousMatchError{Kind: "skills", Key: slug, IDs: ids}
	}
}

// GetByURI returns the skill whose codex_uri equals the given URI.
func (c *Skills) GetByURI(uri string) (*Skill, error) {
	slug, ok := slugOfURI(uri, "/codex/spells/")
	if !ok {
		return nil, &NotFoundError{Kind: "skills", Key: uri}
	}
	return c.GetBySlug(slug)
}

// GetOffhandByName returns the off-hand skill with the given name. Off-hand
// entries are suffixed "[off-hand]" on the guide; the comparison ignores the
// suffix. Zero matches yield a NotFoundError, several an AmbiguousMatchError.
func (c *Skills) GetOffhandByName(name string) (*Skill, error) {
	var found *Skill
	var ids []uint32
	for i := range c.Skills {
		if c.Skills[i].Offhand && sanitizeName(c.Skills[i].Name) == name {
			found = &c.Skills[i]
			ids = append(ids, c.Skills[i].ID)
		}
	}
	switch len(ids) {
	case 0:
		return nil, &NotFoundError{Kind: "skills", Key: name}
	case 1:
		return found, nil
	default:
		return nil, &AmbiguousMatchError{Kind: "skills", Key: name, IDs: ids}
	}
}

// sanitizeName strips bracketed suffixes ("Firebolt [off-hand]" -> "Firebolt").
func sanitizeName(name string) string {
	if pos := strings.Index(name, "["); pos > 0 {
		return strings.TrimSpace(name[:pos])
	}
	return name
}

// SanitizeName strips guide-side bracketed suffixes from an entity name.
func SanitizeName(name string) string { return sanitizeName(name) }

// Pets is the collection of all fetched guide pets.
type Pets struct {
	Pets []Pet `json:"pets"`
}

// FindByID returns the pet with the given id, or nil.
func (c *Pets) FindByID(id uint32) *Pet {
	for i := range c.Pets {
		if c.Pets[i].ID == id {
			return &c.Pets[i]
		}
	}
	return nil
}

// GetBySlug returns the pet whose codex_uri decodes to the given codex
// follower slug.
func (c *Pets) GetBySlug(slug string) (*Pet, error) {
	var found *Pet
	var ids []uint32
	for i := range c.Pets {
		if s, ok := slugOfURI(c.Pets[i].CodexURI, "/codex/followers/"); ok && s == slug {
			found = &c.Pets[i]
			ids = append(ids, c.Pets[i].ID)
		}
	}
	switch len(ids) {
	case 0:
		return nil, &NotFoundError{Kind: "pets", Key: slug}
	case 1:
		return found, nil
	default:
		return nil, &AmbiguousMatchError{Kind: "pets", Key: slug, IDs: ids}
	}
}

// GetByURI returns the pet whose codex_uri equals the given URI.
func (c *Pets) GetByURI(uri string) (*Pet, error) {
	slug, ok := slugOfURI(uri, "/codex/followers/")
	if !ok {
		return nil, &NotFoundError{Kind: "pets", Key: uri}
	}
	return c.GetBySlug(slug)
}

// Data aggregates every guide collection in one fetch snapshot.
type Data struct {
	Items    Items    `json:"items"`
	Monsters Monsters `json:"monsters"`
	Skills   Skills   `json:"skills"`
	Pets     Pets     `json:"pets"`
	Static   Static   `json:"static"`
}
