package report

import "time"

// Run is one invocation of the matching engine.
type Run struct {
	// ID is a UUID assigned when the run is stored.
	ID string `gorm:"primaryKey" json:"id"`
	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`
	// FinishedAt is when the run completed.
	FinishedAt time.Time `json:"finished_at"`
	// Fix records whether the run was allowed to write.
	Fix bool `json:"fix"`
	// Targets is the comma-joined list of entity kinds matched.
	Targets string `json:"targets"`

	Mismatches []MismatchRecord `gorm:"foreignKey:RunID" json:"mismatches"`
	Missings   []MissingRecord  `gorm:"foreignKey:RunID" json:"missings"`
}

// MismatchRecord is one persisted field discrepancy.
type MismatchRecord struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	RunID    string `gorm:"index" json:"-"`
	Kind     string `json:"kind"`
	Entity   string `json:"entity"`
	EntityID uint32 `json:"entity_id"`
	Field    string `json:"field"`
	Guide    string `json:"guide"`
	Codex    string `json:"codex"`
	Fixed    bool   `json:"fixed"`
}

// MissingRecord is one persisted entity present on a single side.
type MissingRecord struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	RunID   string `gorm:"index" json:"-"`
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Key     string `json:"key"`
	OnGuide bool   `json:"on_guide"`
}
