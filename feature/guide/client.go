package guide

import "context"

// Config holds configuration for the admin guide client.
type Config struct {
	// BaseURL is the root of the admin guide.
	BaseURL string `mapstructure:"base_url" default:"https://orna.guide"`
	// SessionCookie is the admin session cookie value used for auth.
	SessionCookie string `mapstructure:"session_cookie" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// FetchDelayMS is the delay between two entity fetches during a bulk
	// refresh. Zero allows bounded concurrent fetches instead.
	FetchDelayMS int `mapstructure:"fetch_delay_ms" default:"0"`
	// FetchWorkers bounds concurrent fetches when no delay is configured.
	FetchWorkers int `mapstructure:"fetch_workers" default:"4"`
}

// Entry is one row of an admin list page.
type Entry struct {
	// ID of the entity on the guide.
	ID uint32 `json:"id"`
	// Name of the entity.
	Name string `json:"name"`
}

// AdminGuide is the capability interface over the admin panel. Fetch methods
// are idempotent and safe to retry; Save and Add are not and must be called
// at most once per decision.
//
// Add operations do not return the new entity: the guide assigns the id, so
// callers must re-list to learn it.
type AdminGuide interface {
	// ListItems enumerates guide items.
	ListItems(ctx context.Context) ([]Entry, error)
	// FetchItem fetches one item by id.
	FetchItem(ctx context.Context, id uint32) (*Item, error)
	// SaveItem overwrites the stored form of an existing item.
	SaveItem(ctx context.Context, item *Item) error
	// AddItem creates a new item; the guide assigns its id.
	AddItem(ctx context.Context, item *Item) error

	// ListMonsters enumerates guide monsters.
	ListMonsters(ctx context.Context) ([]Entry, error)
	// FetchMonster fetches one monster by id.
	FetchMonster(ctx context.Context, id uint32) (*Monster, error)
	// SaveMonster overwrites the stored form of an existing monster.
	SaveMonster(ctx context.Context, monster *Monster) error
	// AddMonster creates a new monster; the guide assigns its id.
	AddMonster(ctx context.Context, monster *Monster) error

	// ListSkills enumerates guide skills.
	ListSkills(ctx context.Context) ([]Entry, error)
	// FetchSkill fetches one skill by id.
	FetchSkill(ctx context.Context, id uint32) (*Skill, error)
	// SaveSkill overwrites the stored form of an existing skill.
	SaveSkill(ctx context.Context, skill *Skill) error
	// AddSkill creates a new skill; the guide assigns its id.
	AddSkill(ctx context.Context, skill *Skill) error

	// ListPets enumerates guide pets.
	ListPets(ctx context.Context) ([]Entry, error)
	// FetchPet fetches one pet by id.
	FetchPet(ctx context.Context, id uint32) (*Pet, error)
	// SavePet overwrites the stored form of an existing pet.
	SavePet(ctx context.Context, pet *Pet) error
	// AddPet creates a new pet; the guide assigns its id.
	AddPet(ctx context.Context, pet *Pet) error

	// FetchStatic fetches every static resource list.
	FetchStatic(ctx context.Context) (*Static, error)
	// ListStatusEffects re-fetches just the status effect list.
	ListStatusEffects(ctx context.Context) ([]NamedID, error)
	// AddStatusEffect creates a new status effect; the guide assigns its id.
	AddStatusEffect(ctx context.Context, name string) error
	// ListSpawns re-fetches just the spawn list.
	ListSpawns(ctx context.Context) ([]NamedID, error)
	// AddSpawn creates a new spawn; the guide assigns its id.
	AddSpawn(ctx context.Context, name string) error
}
